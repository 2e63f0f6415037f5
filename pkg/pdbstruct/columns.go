package pdbstruct

import (
	"strconv"
	"strings"
)

// lineScanner extracts fixed-column fields from a single PDB line. Column
// ranges are 1-based and inclusive, matching the PDB format specification.
// Ranges beyond the end of the line read as blank, since real files are
// frequently right-trimmed short of column 80.
//
// The first field that fails to decode is latched; later accessors still
// return zero values so record construction can stay declarative, and the
// caller checks Err once at the end.
type lineScanner struct {
	kind Kind
	line string
	num  int
	err  *DecodeError
}

func newLineScanner(kind Kind, line string, num int) *lineScanner {
	return &lineScanner{kind: kind, line: line, num: num}
}

func (s *lineScanner) fail(field, raw string) {
	if s.err == nil {
		s.err = fieldError(s.kind, s.num, field, raw)
	}
}

// Err returns the first field decode failure, or nil.
func (s *lineScanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return nil
}

// cols returns the raw substring for the inclusive column range, clamped to
// the line length.
func (s *lineScanner) cols(start, end int) string {
	lo, hi := start-1, end
	if lo < 0 || lo >= len(s.line) {
		return ""
	}
	if hi > len(s.line) {
		hi = len(s.line)
	}
	return s.line[lo:hi]
}

// str returns the trimmed content of a column range; blank reads as "".
func (s *lineScanner) str(start, end int) string {
	return strings.TrimSpace(s.cols(start, end))
}

// tail returns the trimmed content from column start to the end of the line.
func (s *lineScanner) tail(start int) string {
	if start-1 >= len(s.line) {
		return ""
	}
	return strings.TrimSpace(s.line[start-1:])
}

// char reads a single-column field; blank means absent.
func (s *lineScanner) char(col int) string {
	return s.str(col, col)
}

// intField decodes a required integer column; blank or malformed content is
// a decode failure.
func (s *lineScanner) intField(field string, start, end int) int {
	raw := s.str(start, end)
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(field, raw)
		return 0
	}
	return v
}

// intOrZero decodes an integer column where a blank range reads as zero.
// Non-blank malformed content still fails.
func (s *lineScanner) intOrZero(field string, start, end int) int {
	raw := s.str(start, end)
	if raw == "" {
		return 0
	}
	return s.parsedInt(field, raw)
}

// optInt decodes an optional integer column; blank means absent.
func (s *lineScanner) optInt(field string, start, end int) *int {
	raw := s.str(start, end)
	if raw == "" {
		return nil
	}
	v := s.parsedInt(field, raw)
	return &v
}

func (s *lineScanner) parsedInt(field, raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(field, raw)
		return 0
	}
	return v
}

// floatField decodes a required floating-point column.
func (s *lineScanner) floatField(field string, start, end int) float64 {
	raw := s.str(start, end)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.fail(field, raw)
		return 0
	}
	return v
}

// floatOrZero decodes a floating-point column where blank reads as zero.
func (s *lineScanner) floatOrZero(field string, start, end int) float64 {
	raw := s.str(start, end)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.fail(field, raw)
		return 0
	}
	return v
}

// serial decodes an atom serial number. Serials containing letters are read
// as base 16: entries with more than 99999 atoms continue the numbering in
// hex. A blank serial reads as zero and is assigned by the pipeline.
func (s *lineScanner) serial(field string, start, end int) int {
	raw := s.str(start, end)
	if raw == "" {
		return 0
	}
	base := 10
	if strings.ContainsFunc(raw, isASCIILetter) {
		base = 16
	}
	v, err := strconv.ParseInt(raw, base, 64)
	if err != nil {
		s.fail(field, raw)
		return 0
	}
	return int(v)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// requireKeyword checks the 6-column keyword field against the literals the
// decoder handles. The dispatcher already routed on it; a mismatch means the
// decoder was invoked on the wrong line.
func (s *lineScanner) requireKeyword(literals ...string) {
	kw := keywordOf(s.line)
	for _, want := range literals {
		if kw == want {
			return
		}
	}
	s.fail("keyword", strings.TrimSpace(kw))
}

// keywordOf returns the space-padded 6-column record keyword.
func keywordOf(line string) string {
	if len(line) >= keywordWidth {
		return line[:keywordWidth]
	}
	return line + strings.Repeat(" ", keywordWidth-len(line))
}

const keywordWidth = 6
