package pdb

import (
	"encoding/json"
	"fmt"

	"github.com/twinfer/pdb-plugin/pkg/pdbstruct"
)

// TaggedRecord is the interchange form of a record: the kind discriminant
// plus the active payload. Unmodeled and ENDMDL lines have a null payload.
type TaggedRecord struct {
	Kind   string `json:"kind"`
	Record any    `json:"record,omitempty"`
}

// Tagged converts records into their kind-tagged interchange form,
// preserving order.
func Tagged(records []pdbstruct.Record) []TaggedRecord {
	tagged := make([]TaggedRecord, len(records))
	for i, rec := range records {
		tagged[i] = TaggedRecord{
			Kind:   string(rec.Kind()),
			Record: pdbstruct.Payload(rec),
		}
	}
	return tagged
}

// ToJSON serializes records as an indented JSON array of tagged records.
func ToJSON(records []pdbstruct.Record) ([]byte, error) {
	data, err := json.MarshalIndent(Tagged(records), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling records: %w", err)
	}
	return data, nil
}
