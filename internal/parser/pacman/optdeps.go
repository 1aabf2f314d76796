package pacman

import (
	"fmt"
	"strings"

	"github.com/ralt/pkginfo/internal/models"
)

// installedMarker flags an optional dependency that is already installed
const installedMarker = " [installed]"

// ParseOptionalDependency parses one optional dependency entry:
//
//	<name>[: <description>][ [installed]]
//
// The marker is only recognized as an exact suffix preceded by a space.
func ParseOptionalDependency(text string) (models.OptionalDependency, error) {
	text = strings.TrimSpace(text)

	n := depNamePrefix(text)
	if n == 0 {
		return models.OptionalDependency{}, fmt.Errorf("%w: invalid optional dependency %q", models.ErrMalformedLine, text)
	}

	dep := models.OptionalDependency{Name: text[:n]}
	rest := text[n:]

	switch {
	case rest == "":
	case strings.HasPrefix(rest, ":"):
		rest = rest[1:]
		if strings.HasSuffix(rest, installedMarker) {
			dep.Installed = true
			rest = strings.TrimSuffix(rest, installedMarker)
		}
		if desc := strings.TrimSpace(rest); desc != "" {
			dep.Description = &desc
		}
	case strings.TrimSpace(rest) == strings.TrimSpace(installedMarker) && rest[0] == ' ':
		dep.Installed = true
	default:
		return models.OptionalDependency{}, fmt.Errorf("%w: unexpected %q after optional dependency %q", models.ErrMalformedLine, rest, dep.Name)
	}

	return dep, nil
}

func depNamePrefix(s string) int {
	i := 0
	for i < len(s) && isDepNameChar(s[i]) {
		i++
	}
	return i
}

func isDepNameChar(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}
