package pacman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		kind LineKind
		name string
		text string
	}{
		{"", LineBlank, "", ""},
		{"   \t", LineBlank, "", ""},
		{"Name            : pkg", LineField, "Name", ""},
		{"Build Date      : Mon 01 Jan 1970", LineField, "Build Date", ""},
		{"Frobnicate      : x", LineField, "Frobnicate", ""},
		{"                  : dep2: my other description", LineContinuation, "", "dep2: my other description"},
		{"                  somedep2: somedep2 description", LineContinuation, "", "somedep2: somedep2 description"},
		{"\tdep [installed]", LineContinuation, "", "dep [installed]"},
		{"somedep: lowercase at column zero", LineContinuation, "", "somedep: lowercase at column zero"},
		{"dep2", LineContinuation, "", "dep2"},
		{"                  :", LineMalformed, "", ""},
		{"Name pkg", LineMalformed, "", ""},
		{"Some Long Field Name : x", LineMalformed, "", ""},
		{"#comment", LineMalformed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ClassifyLine(tt.line)
			assert.Equal(t, tt.kind, got.Kind, "kind is %s", got.Kind)
			if tt.kind == LineField {
				assert.Equal(t, tt.name, got.Field.Name)
			}
			if tt.kind == LineContinuation {
				assert.Equal(t, tt.text, got.Text)
			}
		})
	}
}
