// Package testutil holds helpers shared by the record and pipeline tests.
package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// coordTolerance absorbs float formatting noise when comparing decoded
// coordinate values against literals.
const coordTolerance = 1e-9

// RecordDiff reports a human-readable diff between expected and decoded
// record values; "" means equal. Floating-point fields compare with a
// small absolute tolerance.
func RecordDiff(want, got any) string {
	return cmp.Diff(want, got, cmpopts.EquateApprox(0, coordTolerance))
}

// RecordsEqual reports whether two record values are equal under the same
// rules as RecordDiff.
func RecordsEqual(want, got any) bool {
	return RecordDiff(want, got) == ""
}
