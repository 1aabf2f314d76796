package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ralt/pkginfo/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects how records are written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %q", name)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Faint(true)
	licenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
)

var tableColumns = []string{"Name", "Version", "Description", "Licenses", "URL", "Installed Size", "Install Date"}

// Write renders the records in the given format
func Write(w io.Writer, format Format, records []models.PackageRecord) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		return writeYAML(w, records)
	case FormatTable, "":
		return writeTable(w, records)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

// Row flattens a record into the table columns
func Row(rec models.PackageRecord) []string {
	return []string{
		rec.Name,
		rec.Version,
		rec.Description,
		strings.Join(rec.Licenses, ", "),
		models.Deref(rec.URL),
		rec.InstalledSize,
		rec.InstallDate,
	}
}

// Columns of the list table that get their own style
const (
	nameColumn    = 0
	licenseColumn = 3
)

// newTable returns a table without borders, columns separated by padding
func newTable() *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false)
}

func writeTable(w io.Writer, records []models.PackageRecord) error {
	t := newTable().
		Headers(tableColumns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			switch {
			case row == table.HeaderRow:
				style = style.Inherit(headerStyle)
			case col == nameColumn:
				style = style.Inherit(nameStyle)
			case col == licenseColumn:
				style = style.Inherit(licenseStyle)
			}
			return style
		})

	for _, rec := range records {
		t.Row(Row(rec)...)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
