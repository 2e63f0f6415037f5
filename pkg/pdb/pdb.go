// Package pdb provides a high-level API for parsing Protein Data Bank
// structure files into typed records.
//
// This package wraps the pdbstruct engine with the surrounding concerns a
// program actually needs: reading plain or gzip-compressed files, Latin-1
// transcoding, record filtering, and JSON output.
//
// Basic usage:
//
//	// Parse a file (plain or .gz) into records
//	records, err := pdb.ParseFile(context.Background(), "1ubq.pdb.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Keep only backbone nitrogen atoms
//	atoms, err := pdb.Filter(records, `kind == "ATOM" && record.Name == "N"`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Serialize to JSON
//	out, err := pdb.ToJSON(atoms)
package pdb

import (
	"bytes"
	"context"
	"log/slog"
	"sync"

	"github.com/twinfer/pdb-plugin/internal/pdbio"
	"github.com/twinfer/pdb-plugin/pkg/pdbstruct"
)

// Parser wraps the record engine with input handling and configuration.
type Parser struct {
	options options
}

// options holds configuration for the parser.
type options struct {
	workers int
	logger  *slog.Logger
	filter  string
}

// Option is a function that configures parser options.
type Option func(*options)

// WithWorkers sets the number of decode workers (defaults to 1, i.e.
// sequential decoding).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFilter keeps only records matching the given predicate expression,
// evaluated per record with `kind` and `record` in scope.
func WithFilter(expression string) Option {
	return func(o *options) {
		o.filter = expression
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		workers: 1,
		logger:  slog.Default(),
	}
}

// Global parser instance for convenience functions.
var (
	globalParser     *Parser
	globalParserOnce sync.Once
)

func getGlobalParser() *Parser {
	globalParserOnce.Do(func() {
		globalParser = NewParser()
	})
	return globalParser
}

// NewParser creates a new parser instance with the given options.
func NewParser(opts ...Option) *Parser {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Parser{options: options}
}

// ParseString parses PDB text into records.
func ParseString(ctx context.Context, contents string, opts ...Option) ([]pdbstruct.Record, error) {
	return getGlobalParser().ParseString(ctx, contents, opts...)
}

// ParseBytes parses raw file bytes, transparently decompressing gzip input
// and transcoding Latin-1 text.
func ParseBytes(ctx context.Context, data []byte, opts ...Option) ([]pdbstruct.Record, error) {
	return getGlobalParser().ParseBytes(ctx, data, opts...)
}

// ParseFile reads and parses a PDB file, plain or gzip-compressed.
func ParseFile(ctx context.Context, path string, opts ...Option) ([]pdbstruct.Record, error) {
	return getGlobalParser().ParseFile(ctx, path, opts...)
}

// ParseString parses PDB text into records.
func (p *Parser) ParseString(ctx context.Context, contents string, opts ...Option) ([]pdbstruct.Record, error) {
	options := p.options
	for _, opt := range opts {
		opt(&options)
	}
	core := pdbstruct.NewParser(
		pdbstruct.WithWorkers(options.workers),
		pdbstruct.WithLogger(options.logger),
	)
	records, err := core.Parse(ctx, contents)
	if err != nil {
		return nil, err
	}
	if options.filter != "" {
		return Filter(records, options.filter)
	}
	return records, nil
}

// ParseBytes parses raw file bytes, transparently decompressing gzip input
// and transcoding Latin-1 text.
func (p *Parser) ParseBytes(ctx context.Context, data []byte, opts ...Option) ([]pdbstruct.Record, error) {
	contents, err := pdbio.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return p.ParseString(ctx, contents, opts...)
}

// ParseFile reads and parses a PDB file, plain or gzip-compressed.
func (p *Parser) ParseFile(ctx context.Context, path string, opts ...Option) ([]pdbstruct.Record, error) {
	contents, err := pdbio.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseString(ctx, contents, opts...)
}
