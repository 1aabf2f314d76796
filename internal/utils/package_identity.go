package utils

import (
	"fmt"

	"github.com/ralt/pkginfo/internal/models"
)

// PackageIdentity returns a unique identifier for a parsed package
func PackageIdentity(pkg models.PackageRecord) string {
	if pkg.Architecture == "" {
		return fmt.Sprintf("%s:%s", pkg.Name, pkg.Version)
	}
	return fmt.Sprintf("%s:%s:%s", pkg.Name, pkg.Version, pkg.Architecture)
}

// DetectDuplicates returns the packages whose identity already appeared
// earlier in the list
func DetectDuplicates(packages []models.PackageRecord) []models.PackageRecord {
	seen := make(map[string]bool)

	var duplicates []models.PackageRecord
	for _, pkg := range packages {
		id := PackageIdentity(pkg)
		if seen[id] {
			duplicates = append(duplicates, pkg)
			continue
		}
		seen[id] = true
	}
	return duplicates
}

// FindPackage returns the first package with the given name
func FindPackage(packages []models.PackageRecord, name string) (*models.PackageRecord, bool) {
	for i := range packages {
		if packages[i].Name == name {
			return &packages[i], true
		}
	}
	return nil, false
}
