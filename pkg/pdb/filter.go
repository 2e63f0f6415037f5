package pdb

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/twinfer/pdb-plugin/pkg/pdbstruct"
)

// RecordFilter evaluates a compiled predicate expression against records.
//
// Expressions see two variables per record: `kind`, the record keyword as a
// string ("ATOM", "HETATM", "UNMODELED", ...), and `record`, the typed
// payload whose fields are addressed by their Go names, e.g.
//
//	kind == "ATOM" && record.Serial <= 100
//	kind in ["HET", "HETNAM"]
type RecordFilter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles a predicate expression. The expression must
// evaluate to a boolean.
func CompileFilter(expression string) (*RecordFilter, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", expression, err)
	}
	return &RecordFilter{source: expression, program: program}, nil
}

// Match reports whether the record satisfies the predicate.
func (f *RecordFilter) Match(rec pdbstruct.Record) (bool, error) {
	env := map[string]any{
		"kind":   string(rec.Kind()),
		"record": pdbstruct.Payload(rec),
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.source, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter %q: result is %T, not bool", f.source, out)
	}
	return ok, nil
}

// Apply returns the records satisfying the predicate, preserving order.
func (f *RecordFilter) Apply(records []pdbstruct.Record) ([]pdbstruct.Record, error) {
	kept := make([]pdbstruct.Record, 0, len(records))
	for _, rec := range records {
		ok, err := f.Match(rec)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}

// Filter compiles expression and returns the matching records in order.
func Filter(records []pdbstruct.Record, expression string) ([]pdbstruct.Record, error) {
	f, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return f.Apply(records)
}
