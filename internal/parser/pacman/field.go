package pacman

import (
	"fmt"
	"strings"

	"github.com/ralt/pkginfo/internal/models"
)

// Field is one "Name : value" line. Installed is only ever set for
// optional dependencies, never by ParseField.
type Field struct {
	Name      string
	Value     *string
	Installed bool
}

// ParseField parses a field line: a name of one or two alphabetic words
// separated by a single space, optional spaces, a colon, then the value.
func ParseField(line string) (Field, error) {
	name, rest, ok := splitFieldName(line)
	if !ok {
		return Field{}, fmt.Errorf("%w: no field name before ':' in %q", models.ErrMalformedLine, line)
	}

	value := strings.TrimSpace(rest)
	return Field{Name: name, Value: &value}, nil
}

// splitFieldName consumes the field name and the colon following it
func splitFieldName(line string) (name, rest string, ok bool) {
	n := alphaPrefix(line)
	if n == 0 {
		return "", "", false
	}
	name, rest = line[:n], line[n:]

	if strings.HasPrefix(rest, " ") {
		if m := alphaPrefix(rest[1:]); m > 0 {
			name = name + " " + rest[1:1+m]
			rest = rest[1+m:]
		}
	}

	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, ":") {
		return "", "", false
	}
	return name, rest[1:], true
}

func alphaPrefix(s string) int {
	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	return i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
