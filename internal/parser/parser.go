package parser

import (
	"fmt"
	"strings"

	"github.com/ralt/pkginfo/internal/models"
)

// QueryTool identifies the package query tool that produced a capture
type QueryTool int

const (
	ToolUnknown QueryTool = iota
	ToolPacman
)

// String returns the string representation of QueryTool
func (t QueryTool) String() string {
	switch t {
	case ToolPacman:
		return "pacman"
	default:
		return "unknown"
	}
}

// ParseQueryTool maps a tool name to its QueryTool
func ParseQueryTool(name string) (QueryTool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pacman", "":
		return ToolPacman, nil
	default:
		return ToolUnknown, fmt.Errorf("unsupported query tool: %q", name)
	}
}

// Parser interface for query output parsers
type Parser interface {
	// ParsePackages parses a full query output into one record per block
	ParsePackages(input string) ([]models.PackageRecord, error)

	// ParsePackage parses the text of a single block
	ParsePackage(block string) (*models.PackageRecord, error)

	// SupportedTool returns the query tool this parser understands
	SupportedTool() QueryTool
}
