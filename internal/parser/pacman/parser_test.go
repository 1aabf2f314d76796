package pacman

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ralt/pkginfo/internal/models"
	"github.com/ralt/pkginfo/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackagesTwoBlocks(t *testing.T) {
	records, err := ParsePackages(twoPackages)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "pkg", first.Name)
	assert.Equal(t, []string{"Apache", "MIT"}, first.Licenses)
	assert.Nil(t, first.OptionalDeps)
	assert.Nil(t, first.Groups)

	second := records[1]
	assert.Equal(t, "pkg2", second.Name)
	assert.Equal(t, []string{"GPL"}, second.Licenses)
	assert.Equal(t, []models.OptionalDependency{
		{Name: "somedep1", Description: strPtr("somedep1 description"), Installed: true},
		{Name: "somedep2", Description: strPtr("somedep2 description")},
	}, second.OptionalDeps)
	assert.Equal(t, "Explicitly installed", second.InstallReason)
}

func TestParsePackagesEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n"} {
		records, err := ParsePackages(input)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	}
}

func TestParsePackagesCRLF(t *testing.T) {
	lf, err := ParsePackages(twoPackages)
	require.NoError(t, err)

	crlf, err := ParsePackages(strings.ReplaceAll(twoPackages, "\n", "\r\n"))
	require.NoError(t, err)
	assert.Equal(t, lf, crlf)
}

func TestParsePackagesExtraBlankLines(t *testing.T) {
	input := "\n\n" + strings.Replace(twoPackages, "\n\n", "\n\n\n\n", 1) + "\n\n"
	records, err := ParsePackages(input)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "pkg", records[0].Name)
	assert.Equal(t, "pkg2", records[1].Name)
}

func TestParsePackagesPreservesOrder(t *testing.T) {
	var blocks []string
	names := []string{"zlib", "acl", "glibc", "acl"}
	for _, name := range names {
		blocks = append(blocks, strings.Replace(fullPackage, "Name            : pkg", "Name            : "+name, 1))
	}

	records, err := ParsePackages(strings.Join(blocks, "\n\n"))
	require.NoError(t, err)
	require.Len(t, records, len(names))
	for i, name := range names {
		assert.Equal(t, name, records[i].Name)
	}
}

func brokenInput() string {
	missingName := strings.Replace(fullPackage, "Name            : pkg\n", "", 1)
	return strings.Join([]string{fullPackage, missingName, fullPackage, "Name pkg"}, "\n\n")
}

func TestParsePackagesLenientReportsBlocks(t *testing.T) {
	records, err := NewParser().ParsePackages(brokenInput())
	require.Error(t, err)
	assert.Len(t, records, 2)

	failed := models.ParseErrors(err)
	require.Len(t, failed, 2)

	assert.Equal(t, models.ErrMissingField, failed[0].Type)
	assert.Equal(t, 1, failed[0].Block)
	assert.Equal(t, "Name", failed[0].Field)

	assert.Equal(t, models.ErrGrammar, failed[1].Type)
	assert.Equal(t, 3, failed[1].Block)
	assert.Equal(t, 1, failed[1].Line)

	assert.True(t, errors.Is(err, models.ErrMissingMandatory))
	assert.True(t, errors.Is(err, models.ErrMalformedLine))
}

func TestParsePackagesStrict(t *testing.T) {
	records, err := NewParser(WithStrict(true)).ParsePackages(brokenInput())
	assert.Nil(t, records)

	var pe *models.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Block)
	assert.Equal(t, models.ErrMissingField, pe.Type)
	assert.Contains(t, err.Error(), `block 1`)
	assert.Contains(t, err.Error(), `"Name"`)
}

func TestParsePackage(t *testing.T) {
	rec, err := ParsePackage(fullPackage)
	require.NoError(t, err)
	assert.Equal(t, "pkg", rec.Name)
	assert.Len(t, rec.OptionalDeps, 2)

	_, err = ParsePackage(twoPackages)
	assert.ErrorIs(t, err, models.ErrMalformedLine)

	_, err = ParsePackage("")
	assert.ErrorIs(t, err, models.ErrMalformedLine)
}

// Mandatory fields re-serialized in pacman's layout parse back unchanged
func TestParsePackageMandatoryRoundTrip(t *testing.T) {
	rec, err := ParsePackage(fullPackage)
	require.NoError(t, err)

	values := map[FieldKind]string{
		FieldName:          rec.Name,
		FieldVersion:       rec.Version,
		FieldDescription:   rec.Description,
		FieldArchitecture:  rec.Architecture,
		FieldInstalledSize: rec.InstalledSize,
		FieldPackager:      rec.Packager,
		FieldBuildDate:     rec.BuildDate,
		FieldInstallDate:   rec.InstallDate,
		FieldInstallReason: rec.InstallReason,
		FieldInstallScript: rec.InstallScript,
	}

	var b strings.Builder
	for _, kind := range mandatoryFields {
		b.WriteString(kind.String())
		b.WriteString(strings.Repeat(" ", 16-len(kind.String())))
		b.WriteString(": ")
		b.WriteString(values[kind])
		b.WriteString("\n")
	}

	again, err := ParsePackage(b.String())
	require.NoError(t, err)
	assert.Equal(t, rec.Name, again.Name)
	assert.Equal(t, rec.Version, again.Version)
	assert.Equal(t, rec.Description, again.Description)
	assert.Equal(t, rec.Architecture, again.Architecture)
	assert.Equal(t, rec.InstalledSize, again.InstalledSize)
	assert.Equal(t, rec.Packager, again.Packager)
	assert.Equal(t, rec.BuildDate, again.BuildDate)
	assert.Equal(t, rec.InstallDate, again.InstallDate)
	assert.Equal(t, rec.InstallReason, again.InstallReason)
	assert.Equal(t, rec.InstallScript, again.InstallScript)
}

func TestSplitBlocks(t *testing.T) {
	assert.Empty(t, SplitBlocks(""))
	assert.Equal(t, []string{"a : b"}, SplitBlocks("a : b"))
	assert.Equal(t, []string{"A : 1\nB : 2", "C : 3"}, SplitBlocks("A : 1\nB : 2\n\nC : 3\n"))
	assert.Equal(t, []string{"A : 1", "C : 3"}, SplitBlocks("A : 1\r\n  \r\nC : 3"))
}

func TestParserConcurrentUse(t *testing.T) {
	p := NewParser()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := p.ParsePackages(twoPackages)
			assert.NoError(t, err)
			assert.Len(t, records, 2)
		}()
	}
	wg.Wait()
}

func TestParserInterface(t *testing.T) {
	var p parser.Parser = New()
	assert.Equal(t, parser.ToolPacman, p.SupportedTool())
}
