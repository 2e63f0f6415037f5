package pdbstruct

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Parser turns whole-file PDB text into the ordered sequence of its
// records. A Parser is stateless between calls: Parse may be invoked
// concurrently on different inputs.
type Parser struct {
	workers int
	logger  *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithWorkers sets the number of decode workers. Values below 2 select the
// single-threaded pipeline.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		p.workers = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser. The default is single-threaded decoding with
// the default slog logger.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		workers: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes every line of contents into exactly one Record, in file
// order. Dispatch is per line and independent of all other lines, so with
// more than one worker the line set is partitioned across goroutines, each
// writing into its own slots of the result; output order matches input
// order for every worker count.
//
// The parse is fail-fast: the first line whose required fields cannot be
// decoded fails the whole call with a *DecodeError. With concurrent
// workers the reported error is one of the failing lines, not necessarily
// the earliest.
func (p *Parser) Parse(ctx context.Context, contents string) ([]Record, error) {
	lines := splitLines(contents)
	p.logger.Debug("parsing pdb content", "lines", len(lines), "workers", p.workers)

	var records []Record
	var err error
	if p.workers > 1 && len(lines) > 1 {
		records, err = p.parseConcurrent(ctx, lines)
	} else {
		records, err = parseSequential(lines)
	}
	if err != nil {
		return nil, err
	}
	assignAtomSerials(records)
	return records, nil
}

// Parse decodes contents on a single thread. It is the package-level
// convenience for the default Parser.
func Parse(contents string) ([]Record, error) {
	return NewParser().Parse(context.Background(), contents)
}

// ParseParallel decodes contents with one worker per available CPU.
func ParseParallel(ctx context.Context, contents string) ([]Record, error) {
	return NewParser(WithWorkers(runtime.GOMAXPROCS(0))).Parse(ctx, contents)
}

// splitLines splits on newlines, keeping a final line that lacks the
// trailing newline and stripping carriage returns from CRLF input.
func splitLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseSequential(lines []string) ([]Record, error) {
	records := make([]Record, len(lines))
	for i, line := range lines {
		rec, err := DecodeLine(line, i+1)
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// parseConcurrent partitions the lines into contiguous chunks, one per
// worker. Every worker writes only its own slots of records, so the slice
// needs no synchronization beyond the errgroup join.
func (p *Parser) parseConcurrent(ctx context.Context, lines []string) ([]Record, error) {
	workers := p.workers
	if workers > len(lines) {
		workers = len(lines)
	}
	records := make([]Record, len(lines))
	chunk := (len(lines) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(lines))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := DecodeLine(lines[i], i+1)
				if err != nil {
					return err
				}
				records[i] = rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// assignAtomSerials backfills serial numbers for coordinate lines whose
// serial column was blank. Entries with more than 99999 atoms leave the
// column blank (or switch to hex); the numbering continues from the last
// explicit serial in file order.
func assignAtomSerials(records []Record) {
	last := 0
	for _, rec := range records {
		atom, ok := rec.(*AtomRecord)
		if !ok {
			continue
		}
		if atom.Serial == 0 {
			last++
			atom.Serial = last
		} else {
			last = atom.Serial
		}
	}
}
