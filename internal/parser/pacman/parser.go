package pacman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ralt/pkginfo/internal/models"
	"github.com/ralt/pkginfo/internal/parser"
	"github.com/ralt/pkginfo/internal/utils"
	"github.com/sirupsen/logrus"
)

// Parser implements the parser.Parser interface for `pacman -Qi` output.
// It holds no per-call state and may be shared between goroutines.
type Parser struct {
	logger *logrus.Entry
	strict bool
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *logrus.Entry) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithStrict makes ParsePackages stop at the first failing block
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a new pacman parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return p
}

// New returns the pacman parser behind the generic interface
func New(opts ...Option) parser.Parser {
	return NewParser(opts...)
}

// SupportedTool returns the query tool this parser understands
func (p *Parser) SupportedTool() parser.QueryTool {
	return parser.ToolPacman
}

// ParsePackages parses the whole query output, one record per block, in
// input order. Failed blocks are reported with their index: in strict mode
// the first failure is returned alone, otherwise the records of the good
// blocks are returned together with the joined block errors.
func (p *Parser) ParsePackages(input string) ([]models.PackageRecord, error) {
	blocks := SplitBlocks(input)
	records := make([]models.PackageRecord, 0, len(blocks))

	var errs []error
	for i, block := range blocks {
		rec, err := p.parseBlock(i, block)
		if err != nil {
			if p.strict {
				return nil, err
			}
			p.logger.WithField("block", i).Warnf("Skipping package: %v", err)
			errs = append(errs, err)
			continue
		}
		records = append(records, *rec)
	}

	p.logger.Debugf("Parsed %d of %d packages", len(records), len(blocks))
	return records, errors.Join(errs...)
}

// ParsePackage parses the text of exactly one block
func (p *Parser) ParsePackage(block string) (*models.PackageRecord, error) {
	blocks := SplitBlocks(block)
	if len(blocks) != 1 {
		return nil, &models.ParseError{
			Type:  models.ErrGrammar,
			Block: -1,
			Err:   fmt.Errorf("%w: expected one package block, found %d", models.ErrMalformedLine, len(blocks)),
		}
	}
	return p.parseBlock(0, blocks[0])
}

func (p *Parser) parseBlock(index int, block string) (*models.PackageRecord, error) {
	b := NewBuilder(index, p.logger)
	for i, line := range strings.Split(block, "\n") {
		if err := b.AddLine(i+1, line); err != nil {
			return nil, err
		}
	}

	rec, err := b.Finish()
	if err != nil {
		return nil, err
	}

	p.logger.WithField("block", index).Debugf("Parsed package %s", utils.PackageIdentity(*rec))
	return rec, nil
}

// SplitBlocks splits query output into package blocks on blank lines.
// Runs of blank lines separate blocks without producing empty ones.
func SplitBlocks(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// ParsePackages parses query output with a default lenient parser
func ParsePackages(input string) ([]models.PackageRecord, error) {
	return NewParser().ParsePackages(input)
}

// ParsePackage parses a single block with a default parser
func ParsePackage(block string) (*models.PackageRecord, error) {
	return NewParser().ParsePackage(block)
}
