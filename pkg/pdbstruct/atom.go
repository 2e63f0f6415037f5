package pdbstruct

// AtomRecord holds one ATOM or HETATM coordinate line. The two keywords
// share a column layout; Hetatm tells them apart. Optional text fields read
// as "" when their columns are blank.
//
// A zero Serial means the serial column was blank; the pipeline assigns
// those sequentially after decoding, which is how entries with more than
// 99999 atoms keep their numbering.
type AtomRecord struct {
	Serial     int     `json:"serial"`
	Name       string  `json:"name"`
	AltLoc     string  `json:"alt_loc,omitempty"`
	ResName    string  `json:"res_name"`
	ChainID    string  `json:"chain_id,omitempty"`
	ResSeq     int     `json:"res_seq"`
	ICode      string  `json:"i_code,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Occupancy  float64 `json:"occupancy"`
	TempFactor float64 `json:"temp_factor"`
	Element    string  `json:"element,omitempty"`
	Charge     string  `json:"charge,omitempty"`
	Entry      string  `json:"entry,omitempty"`
	Hetatm     bool    `json:"-"`
}

func (a *AtomRecord) Kind() Kind {
	if a.Hetatm {
		return KindHetatm
	}
	return KindAtom
}
func (*AtomRecord) isRecord() {}

func decodeAtom(line string, num int, hetatm bool) (Record, error) {
	kind := KindAtom
	kw := "ATOM  "
	if hetatm {
		kind = KindHetatm
		kw = "HETATM"
	}
	s := newLineScanner(kind, line, num)
	s.requireKeyword(kw)
	rec := &AtomRecord{
		Serial:     s.serial("serial", 7, 11),
		Name:       s.str(13, 16),
		AltLoc:     s.char(17),
		ResName:    s.str(18, 20),
		ChainID:    s.char(22),
		ResSeq:     s.intField("res_seq", 23, 26),
		ICode:      s.char(27),
		X:          s.floatField("x", 31, 38),
		Y:          s.floatField("y", 39, 46),
		Z:          s.floatField("z", 47, 54),
		Occupancy:  s.floatField("occupancy", 55, 60),
		TempFactor: s.floatField("temp_factor", 61, 66),
		Entry:      s.str(73, 76),
		Element:    s.str(78, 80),
		Charge:     s.str(79, 80),
		Hetatm:     hetatm,
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// AnisotropicRecord holds one ANISOU line: the anisotropic temperature
// factors of the atom identified by the same columns an ATOM line uses.
// The six U values are stored as the integers written in the file
// (Angstrom^2 x 10^4), deliberately not converted to floating point.
type AnisotropicRecord struct {
	Serial  int    `json:"serial"`
	Name    string `json:"name"`
	AltLoc  string `json:"alt_loc,omitempty"`
	ResName string `json:"res_name"`
	ChainID string `json:"chain_id"`
	ResSeq  int    `json:"res_seq"`
	ICode   string `json:"i_code,omitempty"`
	U00     int    `json:"u00"`
	U11     int    `json:"u11"`
	U22     int    `json:"u22"`
	U01     int    `json:"u01"`
	U02     int    `json:"u02"`
	U12     int    `json:"u12"`
	Element string `json:"element,omitempty"`
	Charge  string `json:"charge,omitempty"`
}

func (*AnisotropicRecord) Kind() Kind { return KindAnisotropic }
func (*AnisotropicRecord) isRecord() {}

func decodeAnisotropic(line string, num int) (Record, error) {
	s := newLineScanner(KindAnisotropic, line, num)
	s.requireKeyword("ANISOU")
	rec := &AnisotropicRecord{
		Serial:  s.intOrZero("serial", 7, 11),
		Name:    s.str(13, 16),
		AltLoc:  s.char(17),
		ResName: s.str(18, 20),
		ChainID: s.char(22),
		ResSeq:  s.intField("res_seq", 23, 26),
		ICode:   s.char(27),
		U00:     s.intField("u00", 29, 35),
		U11:     s.intField("u11", 36, 42),
		U22:     s.intField("u22", 43, 49),
		U01:     s.intField("u01", 50, 56),
		U02:     s.intField("u02", 57, 63),
		U12:     s.intField("u12", 64, 70),
		Element: s.str(77, 78),
		Charge:  s.str(79, 80),
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// TermRecord holds one TER chain-termination line.
type TermRecord struct {
	Serial  int    `json:"serial"`
	ResName string `json:"res_name,omitempty"`
	ChainID string `json:"chain_id,omitempty"`
	ResSeq  int    `json:"res_seq,omitempty"`
	ICode   string `json:"i_code,omitempty"`
}

func (*TermRecord) Kind() Kind { return KindTerm }
func (*TermRecord) isRecord()  {}

func decodeTerm(line string, num int) (Record, error) {
	s := newLineScanner(KindTerm, line, num)
	s.requireKeyword("TER   ")
	rec := &TermRecord{
		Serial:  s.intOrZero("serial", 7, 11),
		ResName: s.str(18, 20),
		ChainID: s.char(22),
		ResSeq:  s.intOrZero("res_seq", 23, 26),
		ICode:   s.char(27),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ConnectRecord holds one CONECT line: a base atom serial and the serials
// bonded to it. Connected keeps file order and stops at the first blank
// slot; blank slots are absent, never zero.
type ConnectRecord struct {
	Serial    int   `json:"serial"`
	Connected []int `json:"connected"`
}

func (*ConnectRecord) Kind() Kind { return KindConnect }
func (*ConnectRecord) isRecord()  {}

// CONECT carries up to four bonded serials in consecutive 5-column slots.
var connectSlots = [4][2]int{{12, 16}, {17, 21}, {22, 26}, {27, 31}}

func decodeConnect(line string, num int) (Record, error) {
	s := newLineScanner(KindConnect, line, num)
	s.requireKeyword("CONECT")
	rec := &ConnectRecord{
		Serial: s.intOrZero("serial", 7, 11),
	}
	for i, slot := range connectSlots {
		v := s.optInt(connectFieldName(i), slot[0], slot[1])
		if v == nil {
			break
		}
		rec.Connected = append(rec.Connected, *v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

func connectFieldName(i int) string {
	return [...]string{"serial1", "serial2", "serial3", "serial4"}[i]
}
