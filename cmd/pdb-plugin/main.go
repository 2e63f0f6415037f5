package main

import (
	"context"
	"fmt"

	"github.com/redpanda-data/benthos/v4/public/service"

	"github.com/twinfer/pdb-plugin/pkg/pdb"
	"github.com/twinfer/pdb-plugin/pkg/pdbstruct"
)

// PDBProcessor is a Benthos processor that parses Protein Data Bank
// structure files into structured records. Each input message carries one
// whole PDB file (plain or gzip-compressed); the output message is the
// ordered array of kind-tagged records.
type PDBProcessor struct {
	config    PDBConfig
	filter    *pdb.RecordFilter
	logger    *service.Logger
	mFiles    *service.MetricCounter
	mRecords  *service.MetricCounter
	mFiltered *service.MetricCounter
	mErrors   *service.MetricCounter
}

// PDBConfig contains configuration parameters for the PDB processor.
type PDBConfig struct {
	Workers       int    `json:"workers" yaml:"workers"`
	Filter        string `json:"filter" yaml:"filter"`
	SkipUnmodeled bool   `json:"skip_unmodeled" yaml:"skip_unmodeled"`
}

func init() {
	// Register the processor with Benthos
	err := service.RegisterProcessor(
		"pdb",
		pdbProcessorConfig(),
		func(conf *service.ParsedConfig, mgr *service.Resources) (service.Processor, error) {
			return newPDBProcessorFromConfig(conf, mgr)
		},
	)
	if err != nil {
		panic(err)
	}
}

// pdbProcessorConfig returns a config spec for a pdb processor.
func pdbProcessorConfig() *service.ConfigSpec {
	return service.NewConfigSpec().
		Summary("Parses Protein Data Bank (PDB) structure files into structured records.").
		Description("This processor decodes the fixed-column PDB text format into an ordered array of typed records, one per input line. Gzip-compressed payloads are decompressed transparently.").
		Field(service.NewIntField("workers").
			Description("Number of decode workers per file. Values below 2 decode sequentially.").
			Default(1)).
		Field(service.NewStringField("filter").
			Description("Optional predicate expression applied per record, with `kind` and `record` in scope. Records failing the predicate are dropped.").
			Example(`kind == "ATOM" && record.ResName == "MET"`).
			Default("")).
		Field(service.NewBoolField("skip_unmodeled").
			Description("Whether to drop lines whose keyword is not modeled (HEADER, TITLE, REMARK, ...).").
			Default(false)).
		Version("0.1.0")
}

// newPDBProcessorFromConfig creates a new PDBProcessor from a parsed config.
func newPDBProcessorFromConfig(conf *service.ParsedConfig, mgr *service.Resources) (*PDBProcessor, error) {
	workers, err := conf.FieldInt("workers")
	if err != nil {
		return nil, err
	}

	filterExpr, err := conf.FieldString("filter")
	if err != nil {
		return nil, err
	}

	skipUnmodeled, err := conf.FieldBool("skip_unmodeled")
	if err != nil {
		return nil, err
	}

	config := PDBConfig{
		Workers:       workers,
		Filter:        filterExpr,
		SkipUnmodeled: skipUnmodeled,
	}

	var filter *pdb.RecordFilter
	if filterExpr != "" {
		filter, err = pdb.CompileFilter(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	metrics := mgr.Metrics()

	return &PDBProcessor{
		config:    config,
		filter:    filter,
		logger:    mgr.Logger(),
		mFiles:    metrics.NewCounter("pdb_parsed_files"),
		mRecords:  metrics.NewCounter("pdb_parsed_records"),
		mFiltered: metrics.NewCounter("pdb_filtered_records"),
		mErrors:   metrics.NewCounter("pdb_processing_errors"),
	}, nil
}

// Process parses one PDB file message into its structured records.
func (p *PDBProcessor) Process(ctx context.Context, msg *service.Message) (service.MessageBatch, error) {
	data, err := msg.AsBytes()
	if err != nil {
		p.logger.Errorf("Failed to get file data from message: %v", err)
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("failed to get file data from message: %w", err))
		return service.MessageBatch{msg}, nil
	}

	if len(data) == 0 {
		p.logger.Warn("Empty PDB payload provided")
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("empty PDB payload provided"))
		return service.MessageBatch{msg}, nil
	}

	records, err := pdb.ParseBytes(ctx, data, pdb.WithWorkers(p.config.Workers))
	if err != nil {
		p.logger.Errorf("Failed to parse PDB payload of %d bytes: %v", len(data), err)
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("failed to parse PDB payload: %w", err))
		return service.MessageBatch{msg}, nil
	}
	p.mFiles.Incr(1)
	p.mRecords.Incr(int64(len(records)))

	records, err = p.narrow(records)
	if err != nil {
		p.logger.Errorf("Failed to filter records: %v", err)
		p.mErrors.Incr(1)
		msg.SetError(fmt.Errorf("failed to filter records: %w", err))
		return service.MessageBatch{msg}, nil
	}

	p.logger.Debugf("Parsed %d records from %d bytes", len(records), len(data))

	newMsg := service.NewMessage(nil)
	newMsg.SetStructured(pdb.Tagged(records))

	// Copy metadata from original message
	msg.MetaWalk(func(key, value string) error {
		newMsg.MetaSet(key, value)
		return nil
	})

	return service.MessageBatch{newMsg}, nil
}

// narrow applies the configured record filters, preserving order.
func (p *PDBProcessor) narrow(records []pdbstruct.Record) ([]pdbstruct.Record, error) {
	if p.config.SkipUnmodeled {
		kept := make([]pdbstruct.Record, 0, len(records))
		for _, rec := range records {
			if rec.Kind() != pdbstruct.KindUnmodeled {
				kept = append(kept, rec)
			}
		}
		records = kept
	}
	if p.filter == nil {
		return records, nil
	}
	before := len(records)
	records, err := p.filter.Apply(records)
	if err != nil {
		return nil, err
	}
	p.mFiltered.Incr(int64(before - len(records)))
	return records, nil
}

// Close the processor resources.
func (p *PDBProcessor) Close(ctx context.Context) error {
	return nil
}

func main() {
	service.RunCLI(context.Background())
}
