package pdbstruct

// The ORIGXn, SCALEn and MTRIXn families share a layout template: the
// trailing digit of the keyword selects which row n of a 3x3 transform the
// line carries. Rows outside {1,2,3} are a structural decode failure.

// OrigxnRecord holds row n of the ORIGXn transformation back to the
// submitted coordinates, plus its translation component.
type OrigxnRecord struct {
	N   int        `json:"n"`
	Row [3]float64 `json:"row"`
	T   float64    `json:"t"`
}

func (*OrigxnRecord) Kind() Kind { return KindOrigxn }
func (*OrigxnRecord) isRecord()  {}

// ScalenRecord holds row n of the SCALEn transformation to fractional
// crystallographic coordinates, plus its translation component.
type ScalenRecord struct {
	N   int        `json:"n"`
	Row [3]float64 `json:"row"`
	U   float64    `json:"u"`
}

func (*ScalenRecord) Kind() Kind { return KindScalen }
func (*ScalenRecord) isRecord()  {}

// MtrixnRecord holds row n of a non-crystallographic symmetry transform.
// Given reports the iGiven flag: the transformed coordinates are already
// present in the entry.
type MtrixnRecord struct {
	N      int        `json:"n"`
	Serial int        `json:"serial"`
	Row    [3]float64 `json:"row"`
	V      float64    `json:"v"`
	Given  bool       `json:"given"`
}

func (*MtrixnRecord) Kind() Kind { return KindMtrixn }
func (*MtrixnRecord) isRecord()  {}

// matrixFamily matches a 6-column keyword against the n-suffixed families.
// It reports the family kind and the raw suffix digit; suffix range checks
// belong to the decoder so that MTRIX4 fails decoding instead of falling
// through to Unmodeled.
func matrixFamily(kw string) (Kind, int, bool) {
	digit := kw[keywordWidth-1]
	if digit < '0' || digit > '9' {
		return "", 0, false
	}
	switch kw[:keywordWidth-1] {
	case "ORIGX":
		return KindOrigxn, int(digit - '0'), true
	case "SCALE":
		return KindScalen, int(digit - '0'), true
	case "MTRIX":
		return KindMtrixn, int(digit - '0'), true
	}
	return "", 0, false
}

func decodeMatrixLine(family Kind, n int, line string, num int) (Record, error) {
	s := newLineScanner(family, line, num)
	if n < 1 || n > 3 {
		s.fail("n", string(keywordOf(line)[keywordWidth-1]))
		return nil, s.Err()
	}
	row := [3]float64{
		s.floatOrZero("row1", 11, 20),
		s.floatOrZero("row2", 21, 30),
		s.floatOrZero("row3", 31, 40),
	}
	var rec Record
	switch family {
	case KindOrigxn:
		rec = &OrigxnRecord{N: n, Row: row, T: s.floatOrZero("t", 46, 55)}
	case KindScalen:
		rec = &ScalenRecord{N: n, Row: row, U: s.floatOrZero("u", 46, 55)}
	case KindMtrixn:
		rec = &MtrixnRecord{
			N:      n,
			Serial: s.intField("serial", 8, 10),
			Row:    row,
			V:      s.floatField("v", 46, 55),
			Given:  s.char(60) == "1",
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
