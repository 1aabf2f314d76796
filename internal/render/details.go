package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ralt/pkginfo/internal/models"
)

// Details renders every field of a single record
func Details(w io.Writer, format Format, rec models.PackageRecord) error {
	switch format {
	case FormatJSON, FormatYAML:
		return Write(w, format, []models.PackageRecord{rec})
	}

	t := newTable().StyleFunc(func(row, col int) lipgloss.Style {
		if col == 0 {
			return cellStyle.Inherit(headerStyle)
		}
		return cellStyle
	})
	line := func(label, value string) {
		t.Row(label, value)
	}

	line("Name", nameStyle.Render(rec.Name))
	line("Version", rec.Version)
	line("Description", rec.Description)
	line("Architecture", rec.Architecture)
	line("URL", models.Deref(rec.URL))
	line("Licenses", licenseStyle.Render(strings.Join(rec.Licenses, ", ")))
	line("Groups", models.Deref(rec.Groups))
	line("Provides", models.Deref(rec.Provides))
	line("Depends On", models.Deref(rec.DependsOn))
	if len(rec.OptionalDeps) == 0 {
		line("Optional Deps", "")
	}
	for i, dep := range rec.OptionalDeps {
		label := ""
		if i == 0 {
			label = "Optional Deps"
		}
		line(label, formatOptionalDep(dep))
	}
	line("Required By", models.Deref(rec.RequiredBy))
	line("Optional For", models.Deref(rec.OptionalFor))
	line("Conflicts With", models.Deref(rec.ConflictsWith))
	line("Replaces", models.Deref(rec.Replaces))
	line("Installed Size", rec.InstalledSize)
	line("Packager", rec.Packager)
	line("Build Date", rec.BuildDate)
	line("Install Date", rec.InstallDate)
	line("Install Reason", rec.InstallReason)
	line("Install Script", rec.InstallScript)
	line("Validated By", models.Deref(rec.ValidatedBy))

	keys := make([]string, 0, len(rec.Unrecognized))
	for k := range rec.Unrecognized {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line(k, rec.Unrecognized[k])
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func formatOptionalDep(dep models.OptionalDependency) string {
	s := dep.Name
	if dep.Description != nil {
		s += ": " + *dep.Description
	}
	if dep.Installed {
		s += " [installed]"
	}
	return s
}
