// Package pdbstruct decodes the fixed-column text records of the Protein
// Data Bank (PDB) structure-file format.
//
// Each physical line of a PDB file maps to exactly one Record value. Lines
// whose keyword is in the supported catalog decode into a typed record;
// every other line (headers, titles, remarks, blanks) becomes an
// UnmodeledRecord. Decoding a line never depends on any other line, so a
// whole file can be parsed sequentially or across workers with identical,
// order-preserved results. See Parser.
package pdbstruct

// Kind discriminates the active variant of a Record.
type Kind string

const (
	KindAtom        Kind = "ATOM"
	KindHetatm      Kind = "HETATM"
	KindAnisotropic Kind = "ANISOU"
	KindConnect     Kind = "CONECT"
	KindCrystal     Kind = "CRYST1"
	KindDBRef       Kind = "DBREF"
	KindHet         Kind = "HET"
	KindHetnam      Kind = "HETNAM"
	KindModel       Kind = "MODEL"
	KindModres      Kind = "MODRES"
	KindMtrixn      Kind = "MTRIXn"
	KindNummdl      Kind = "NUMMDL"
	KindOrigxn      Kind = "ORIGXn"
	KindScalen      Kind = "SCALEn"
	KindSeqAdv      Kind = "SEQADV"
	KindSeqres      Kind = "SEQRES"
	KindTerm        Kind = "TER"
	KindEndModel    Kind = "ENDMDL"
	KindUnmodeled   Kind = "UNMODELED"
)

// Record is the closed union over all supported PDB record variants.
// Values are immutable once returned by the decoder.
type Record interface {
	Kind() Kind
	isRecord()
}

// UnmodeledRecord marks a line whose keyword is outside the supported
// catalog. This is designed behavior, not an error: metadata lines such as
// HEADER, TITLE and REMARK are recognized but intentionally not modeled.
type UnmodeledRecord struct {
	Keyword string `json:"keyword,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

func (*UnmodeledRecord) Kind() Kind { return KindUnmodeled }
func (*UnmodeledRecord) isRecord()  {}

// EndModelRecord marks the ENDMDL line closing a MODEL block. It carries no
// payload.
type EndModelRecord struct{}

func (*EndModelRecord) Kind() Kind { return KindEndModel }
func (*EndModelRecord) isRecord()  {}

// Payload exposes the active variant for binding layers that have no native
// tagged unions. Unmodeled and ENDMDL lines carry no payload and map to nil.
func Payload(r Record) any {
	switch r.(type) {
	case *UnmodeledRecord, *EndModelRecord, nil:
		return nil
	}
	return r
}

// DecodeLine classifies one PDB line by its 6-column keyword and decodes it
// into the matching Record variant. lineNum is the 1-based line number used
// in decode failures. Unknown keywords yield an UnmodeledRecord and a nil
// error.
func DecodeLine(line string, lineNum int) (Record, error) {
	kw := keywordOf(line)
	switch kw {
	case "ATOM  ":
		return decodeAtom(line, lineNum, false)
	case "HETATM":
		return decodeAtom(line, lineNum, true)
	case "ANISOU":
		return decodeAnisotropic(line, lineNum)
	case "CONECT":
		return decodeConnect(line, lineNum)
	case "CRYST1":
		return decodeCrystal(line, lineNum)
	case "DBREF ":
		return decodeDBRef(line, lineNum)
	case "ENDMDL":
		return &EndModelRecord{}, nil
	case "HET   ":
		return decodeHet(line, lineNum)
	case "HETNAM":
		return decodeHetnam(line, lineNum)
	case "MODEL ":
		return decodeModel(line, lineNum)
	case "MODRES":
		return decodeModres(line, lineNum)
	case "NUMMDL":
		return decodeNummdl(line, lineNum)
	case "SEQADV":
		return decodeSeqAdv(line, lineNum)
	case "SEQRES":
		return decodeSeqres(line, lineNum)
	case "TER   ":
		return decodeTerm(line, lineNum)
	}
	// The matrix families share a layout template selected by the digit
	// suffix of the keyword itself: MTRIX1/2/3, ORIGX1/2/3, SCALE1/2/3.
	if family, n, ok := matrixFamily(kw); ok {
		return decodeMatrixLine(family, n, line, lineNum)
	}
	return &UnmodeledRecord{Keyword: trimKeyword(kw), Raw: line}, nil
}

func trimKeyword(kw string) string {
	end := len(kw)
	for end > 0 && kw[end-1] == ' ' {
		end--
	}
	return kw[:end]
}
