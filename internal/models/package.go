package models

import "strings"

// PackageRecord represents one installed package as reported by the query tool
type PackageRecord struct {
	// Core metadata
	Name         string `json:"name" yaml:"name"`
	Version      string `json:"version" yaml:"version"`
	Description  string `json:"description" yaml:"description"`
	Architecture string `json:"architecture" yaml:"architecture"`

	URL      *string  `json:"url" yaml:"url"`
	Licenses []string `json:"licenses" yaml:"licenses"`

	// Relations (kept as the raw space separated text)
	Groups        *string              `json:"groups" yaml:"groups"`
	Provides      *string              `json:"provides" yaml:"provides"`
	DependsOn     *string              `json:"depends_on" yaml:"depends_on"`
	OptionalDeps  []OptionalDependency `json:"optional_dependencies" yaml:"optional_dependencies"`
	RequiredBy    *string              `json:"required_by" yaml:"required_by"`
	OptionalFor   *string              `json:"optional_for" yaml:"optional_for"`
	ConflictsWith *string              `json:"conflicts_with" yaml:"conflicts_with"`
	Replaces      *string              `json:"replaces" yaml:"replaces"`

	// Installation information
	InstalledSize string  `json:"installed_size" yaml:"installed_size"`
	Packager      string  `json:"packager" yaml:"packager"`
	BuildDate     string  `json:"build_date" yaml:"build_date"`
	InstallDate   string  `json:"install_date" yaml:"install_date"`
	InstallReason string  `json:"install_reason" yaml:"install_reason"`
	InstallScript string  `json:"install_script" yaml:"install_script"`
	ValidatedBy   *string `json:"validated_by" yaml:"validated_by"`

	// Fields the parser did not recognize, keyed by field name
	Unrecognized map[string]string `json:"unrecognized,omitempty" yaml:"unrecognized,omitempty"`
}

// OptionalDependency is one entry of the "Optional Deps" field
type OptionalDependency struct {
	Name        string  `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
	Installed   bool    `json:"is_installed" yaml:"is_installed"`
}

// ExplicitlyInstalled reports whether the package was installed on request
// rather than pulled in as a dependency.
func (p *PackageRecord) ExplicitlyInstalled() bool {
	return strings.HasPrefix(p.InstallReason, "Explicitly")
}

// Deref returns the value of an optional field, or "" when it is absent
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
