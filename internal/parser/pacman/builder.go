package pacman

import (
	"fmt"
	"strings"

	"github.com/ralt/pkginfo/internal/models"
	"github.com/sirupsen/logrus"
)

// noneValue is what pacman prints for an empty optional field
const noneValue = "None"

// FieldKind enumerates the fields pacman prints in its info output
type FieldKind int

const (
	FieldUnrecognized FieldKind = iota
	FieldName
	FieldVersion
	FieldDescription
	FieldArchitecture
	FieldURL
	FieldLicenses
	FieldGroups
	FieldProvides
	FieldDependsOn
	FieldOptionalDeps
	FieldRequiredBy
	FieldOptionalFor
	FieldConflictsWith
	FieldReplaces
	FieldInstalledSize
	FieldPackager
	FieldBuildDate
	FieldInstallDate
	FieldInstallReason
	FieldInstallScript
	FieldValidatedBy
)

var fieldNames = [...]string{
	FieldUnrecognized:  "",
	FieldName:          "Name",
	FieldVersion:       "Version",
	FieldDescription:   "Description",
	FieldArchitecture:  "Architecture",
	FieldURL:           "URL",
	FieldLicenses:      "Licenses",
	FieldGroups:        "Groups",
	FieldProvides:      "Provides",
	FieldDependsOn:     "Depends On",
	FieldOptionalDeps:  "Optional Deps",
	FieldRequiredBy:    "Required By",
	FieldOptionalFor:   "Optional For",
	FieldConflictsWith: "Conflicts With",
	FieldReplaces:      "Replaces",
	FieldInstalledSize: "Installed Size",
	FieldPackager:      "Packager",
	FieldBuildDate:     "Build Date",
	FieldInstallDate:   "Install Date",
	FieldInstallReason: "Install Reason",
	FieldInstallScript: "Install Script",
	FieldValidatedBy:   "Validated By",
}

var fieldKinds = func() map[string]FieldKind {
	m := make(map[string]FieldKind, len(fieldNames))
	for kind, name := range fieldNames {
		if name != "" {
			m[name] = FieldKind(kind)
		}
	}
	return m
}()

// mandatoryFields in the order they are reported when missing
var mandatoryFields = []FieldKind{
	FieldName,
	FieldVersion,
	FieldDescription,
	FieldArchitecture,
	FieldInstalledSize,
	FieldPackager,
	FieldBuildDate,
	FieldInstallDate,
	FieldInstallReason,
	FieldInstallScript,
}

// KindOf returns the FieldKind for a field name
func KindOf(name string) FieldKind {
	return fieldKinds[name]
}

// String returns the field name as pacman prints it
func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(fieldNames) || k == FieldUnrecognized {
		return "Unrecognized"
	}
	return fieldNames[k]
}

// Mandatory reports whether every block must contain the field
func (k FieldKind) Mandatory() bool {
	for _, m := range mandatoryFields {
		if m == k {
			return true
		}
	}
	return false
}

// Builder assembles one PackageRecord from the lines of a block
type Builder struct {
	block  int
	record models.PackageRecord
	seen   map[FieldKind]bool
	logger *logrus.Entry

	// building is the field opened by the last field line; continuation
	// lines are only accepted while it is an open Optional Deps list.
	building    *FieldKind
	optDepsOpen bool

	warnings []*models.ParseError
}

// NewBuilder creates a builder for the block at the given index
func NewBuilder(block int, logger *logrus.Entry) *Builder {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Builder{
		block:  block,
		seen:   make(map[FieldKind]bool),
		logger: logger.WithField("block", block),
	}
}

// AddLine classifies a raw line and feeds it to the builder. lineNo is the
// 1-based line number within the block.
func (b *Builder) AddLine(lineNo int, raw string) error {
	line := ClassifyLine(raw)

	switch line.Kind {
	case LineBlank:
		return nil
	case LineField:
		return b.AddField(lineNo, line.Field)
	case LineContinuation:
		return b.AddContinuation(lineNo, line.Text)
	default:
		return &models.ParseError{
			Type:  models.ErrGrammar,
			Block: b.block,
			Line:  lineNo,
			Err:   fmt.Errorf("%w: %q is neither a field nor a continuation", models.ErrMalformedLine, strings.TrimSpace(raw)),
		}
	}
}

// AddField applies one field line to the record. A mandatory field without
// a usable value and a malformed first Optional Deps entry both fail.
func (b *Builder) AddField(lineNo int, f Field) error {
	kind := KindOf(f.Name)
	b.building = &kind
	b.optDepsOpen = false

	value := ""
	if f.Value != nil {
		value = *f.Value
	}

	if kind.Mandatory() && (value == "" || value == noneValue) {
		return &models.ParseError{
			Type:  models.ErrMissingField,
			Block: b.block,
			Line:  lineNo,
			Field: kind.String(),
			Err:   fmt.Errorf("%w: no value in %q", models.ErrMissingMandatory, value),
		}
	}

	if b.seen[kind] && kind != FieldUnrecognized && kind != FieldOptionalDeps {
		b.logger.Debugf("Field %q repeated on line %d, keeping the last value", f.Name, lineNo)
	}
	b.seen[kind] = true

	rec := &b.record
	switch kind {
	case FieldName:
		rec.Name = value
	case FieldVersion:
		rec.Version = value
	case FieldDescription:
		rec.Description = value
	case FieldArchitecture:
		rec.Architecture = value
	case FieldURL:
		rec.URL = optional(value)
	case FieldLicenses:
		rec.Licenses = splitLicenses(value)
	case FieldGroups:
		rec.Groups = optional(value)
	case FieldProvides:
		rec.Provides = optional(value)
	case FieldDependsOn:
		rec.DependsOn = optional(value)
	case FieldOptionalDeps:
		return b.openOptionalDeps(lineNo, value)
	case FieldRequiredBy:
		rec.RequiredBy = optional(value)
	case FieldOptionalFor:
		rec.OptionalFor = optional(value)
	case FieldConflictsWith:
		rec.ConflictsWith = optional(value)
	case FieldReplaces:
		rec.Replaces = optional(value)
	case FieldInstalledSize:
		rec.InstalledSize = value
	case FieldPackager:
		rec.Packager = value
	case FieldBuildDate:
		rec.BuildDate = value
	case FieldInstallDate:
		rec.InstallDate = value
	case FieldInstallReason:
		rec.InstallReason = value
	case FieldInstallScript:
		rec.InstallScript = value
	case FieldValidatedBy:
		rec.ValidatedBy = optional(value)
	default:
		b.addUnrecognized(lineNo, f.Name, value)
	}
	return nil
}

// openOptionalDeps handles the "Optional Deps" field line itself
func (b *Builder) openOptionalDeps(lineNo int, value string) error {
	if value == noneValue {
		return nil
	}
	b.optDepsOpen = true
	if value == "" {
		return nil
	}
	// The first entry shares the line with the field name
	return b.appendOptionalDep(lineNo, value)
}

// AddContinuation appends an entry to the open Optional Deps list
func (b *Builder) AddContinuation(lineNo int, text string) error {
	if b.building == nil || *b.building != FieldOptionalDeps || !b.optDepsOpen {
		return &models.ParseError{
			Type:  models.ErrGrammar,
			Block: b.block,
			Line:  lineNo,
			Err:   fmt.Errorf("%w: continuation line %q does not follow an Optional Deps entry", models.ErrMalformedLine, text),
		}
	}
	return b.appendOptionalDep(lineNo, text)
}

func (b *Builder) appendOptionalDep(lineNo int, text string) error {
	dep, err := ParseOptionalDependency(text)
	if err != nil {
		return &models.ParseError{
			Type:  models.ErrGrammar,
			Block: b.block,
			Line:  lineNo,
			Field: FieldOptionalDeps.String(),
			Err:   err,
		}
	}
	b.record.OptionalDeps = append(b.record.OptionalDeps, dep)
	return nil
}

func (b *Builder) addUnrecognized(lineNo int, name, value string) {
	if b.record.Unrecognized == nil {
		b.record.Unrecognized = make(map[string]string)
	}
	b.record.Unrecognized[name] = value

	b.warnings = append(b.warnings, &models.ParseError{
		Type:  models.ErrUnknownField,
		Block: b.block,
		Line:  lineNo,
		Field: name,
		Err:   models.ErrUnrecognized,
	})
	b.logger.WithFields(logrus.Fields{
		"line":  lineNo,
		"field": name,
	}).Warn("Ignoring unrecognized field")
}

// Warnings returns the non-fatal diagnostics collected so far
func (b *Builder) Warnings() []*models.ParseError {
	return b.warnings
}

// Finish validates the mandatory fields and returns the record
func (b *Builder) Finish() (*models.PackageRecord, error) {
	for _, kind := range mandatoryFields {
		if !b.seen[kind] {
			return nil, &models.ParseError{
				Type:  models.ErrMissingField,
				Block: b.block,
				Field: kind.String(),
				Err:   models.ErrMissingMandatory,
			}
		}
	}

	rec := b.record
	if rec.Licenses == nil {
		rec.Licenses = []string{}
	}
	return &rec, nil
}

func optional(value string) *string {
	if value == noneValue {
		return nil
	}
	return &value
}

// splitLicenses splits the license list, pacman prints "None" when empty
func splitLicenses(value string) []string {
	if value == noneValue {
		return []string{}
	}
	return strings.Fields(value)
}
