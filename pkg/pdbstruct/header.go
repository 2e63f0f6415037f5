package pdbstruct

import "strings"

// CrystalRecord holds the CRYST1 unit-cell parameters: three edge lengths
// in Angstroms, three angles in degrees, the space-group symbol and the Z
// value (number of polymeric chains in the unit cell).
type CrystalRecord struct {
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	C          float64 `json:"c"`
	Alpha      float64 `json:"alpha"`
	Beta       float64 `json:"beta"`
	Gamma      float64 `json:"gamma"`
	SpaceGroup string  `json:"space_group"`
	Z          int     `json:"z"`
}

func (*CrystalRecord) Kind() Kind { return KindCrystal }
func (*CrystalRecord) isRecord()  {}

func decodeCrystal(line string, num int) (Record, error) {
	s := newLineScanner(KindCrystal, line, num)
	s.requireKeyword("CRYST1")
	rec := &CrystalRecord{
		A:          s.floatOrZero("a", 7, 15),
		B:          s.floatOrZero("b", 16, 24),
		C:          s.floatOrZero("c", 25, 33),
		Alpha:      s.floatOrZero("alpha", 34, 40),
		Beta:       s.floatOrZero("beta", 41, 47),
		Gamma:      s.floatOrZero("gamma", 48, 54),
		SpaceGroup: s.str(56, 66),
		Z:          s.intOrZero("z", 67, 70),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// DBType is the closed catalog of sequence databases referenced by DBREF
// and SEQADV lines.
type DBType string

const (
	DBGenBank DBType = "GB"
	DBNorine  DBType = "NORINE"
	DBPDB     DBType = "PDB"
	DBUniProt DBType = "UNP"
)

// parseDBType matches a database code against the catalog. SEQADV columns
// are too narrow for the full NORINE code, so files carry the NOR
// abbreviation; it maps to the same value.
func parseDBType(raw string) (DBType, bool) {
	switch raw {
	case "GB":
		return DBGenBank, true
	case "NORINE", "NOR":
		return DBNorine, true
	case "PDB":
		return DBPDB, true
	case "UNP":
		return DBUniProt, true
	}
	return "", false
}

func (s *lineScanner) dbType(field string, start, end int) DBType {
	raw := s.str(start, end)
	db, ok := parseDBType(raw)
	if !ok {
		s.fail(field, raw)
	}
	return db
}

// DBRefRecord holds one DBREF line: the mapping from a chain's PDB sequence
// range to the corresponding range in an external sequence database. The
// database-side insertion codes only exist when the reference points back
// into the PDB itself.
type DBRefRecord struct {
	IDCode      string `json:"id_code"`
	ChainID     string `json:"chain_id"`
	SeqBegin    int    `json:"seq_begin"`
	InsertBegin string `json:"insert_begin,omitempty"`
	SeqEnd      int    `json:"seq_end"`
	InsertEnd   string `json:"insert_end,omitempty"`
	Database    DBType `json:"database"`
	DBAccession string `json:"db_accession"`
	DBIDCode    string `json:"db_id_code"`
	DBSeqBegin  int    `json:"db_seq_begin"`
	IDbnsBeg    string `json:"i_dbns_beg,omitempty"`
	DBSeqEnd    int    `json:"db_seq_end"`
	DBInsEnd    string `json:"db_ins_end,omitempty"`
}

func (*DBRefRecord) Kind() Kind { return KindDBRef }
func (*DBRefRecord) isRecord()  {}

func decodeDBRef(line string, num int) (Record, error) {
	s := newLineScanner(KindDBRef, line, num)
	s.requireKeyword("DBREF ")
	rec := &DBRefRecord{
		IDCode:      s.str(8, 11),
		ChainID:     s.char(13),
		SeqBegin:    s.intField("seq_begin", 15, 18),
		InsertBegin: s.char(19),
		SeqEnd:      s.intField("seq_end", 21, 24),
		InsertEnd:   s.char(25),
		Database:    s.dbType("database", 27, 32),
		DBAccession: s.str(34, 41),
		DBIDCode:    s.str(43, 54),
		DBSeqBegin:  s.intField("db_seq_begin", 56, 60),
		DBSeqEnd:    s.intField("db_seq_end", 63, 67),
	}
	if rec.Database == DBPDB {
		rec.IDbnsBeg = s.char(61)
		rec.DBInsEnd = s.char(68)
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// HetRecord holds one HET line describing a heterogen: its identifier,
// position and atom count, plus optional descriptive text.
type HetRecord struct {
	HetID       string `json:"het_id"`
	ChainID     string `json:"chain_id"`
	SeqNum      int    `json:"seq_num"`
	ICode       string `json:"i_code,omitempty"`
	NumHetAtoms int    `json:"num_het_atoms"`
	Text        string `json:"text,omitempty"`
}

func (*HetRecord) Kind() Kind { return KindHet }
func (*HetRecord) isRecord()  {}

func decodeHet(line string, num int) (Record, error) {
	s := newLineScanner(KindHet, line, num)
	s.requireKeyword("HET   ")
	rec := &HetRecord{
		HetID:       s.str(8, 10),
		ChainID:     s.char(13),
		SeqNum:      s.intField("seq_num", 14, 17),
		ICode:       s.char(18),
		NumHetAtoms: s.intField("num_het_atoms", 22, 26),
		Text:        s.str(32, 71),
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// HetnamRecord holds one HETNAM line naming a heterogen. Long names span
// several lines: a non-blank Continuation marks this line as extending the
// previous HETNAM with the same HetID, and Text is only this line's
// fragment. Joining fragments is the caller's concern.
type HetnamRecord struct {
	Continuation string `json:"continuation,omitempty"`
	HetID        string `json:"het_id"`
	Text         string `json:"text"`
}

func (*HetnamRecord) Kind() Kind { return KindHetnam }
func (*HetnamRecord) isRecord()  {}

func decodeHetnam(line string, num int) (Record, error) {
	s := newLineScanner(KindHetnam, line, num)
	s.requireKeyword("HETNAM")
	rec := &HetnamRecord{
		Continuation: s.str(9, 10),
		HetID:        s.str(12, 15),
		Text:         s.tail(16),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ModelRecord holds one MODEL line opening a coordinate model.
type ModelRecord struct {
	Serial int `json:"serial"`
}

func (*ModelRecord) Kind() Kind { return KindModel }
func (*ModelRecord) isRecord()  {}

func decodeModel(line string, num int) (Record, error) {
	s := newLineScanner(KindModel, line, num)
	s.requireKeyword("MODEL ")
	rec := &ModelRecord{
		Serial: s.intOrZero("serial", 11, 14),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// NummdlRecord holds the NUMMDL line giving the model count of the entry.
type NummdlRecord struct {
	Count int `json:"count"`
}

func (*NummdlRecord) Kind() Kind { return KindNummdl }
func (*NummdlRecord) isRecord()  {}

func decodeNummdl(line string, num int) (Record, error) {
	s := newLineScanner(KindNummdl, line, num)
	s.requireKeyword("NUMMDL")
	rec := &NummdlRecord{
		Count: s.intOrZero("count", 11, 14),
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// ModresRecord holds one MODRES line tying a modified residue to its
// standard residue name.
type ModresRecord struct {
	IDCode     string `json:"id_code"`
	ResName    string `json:"res_name"`
	ChainID    string `json:"chain_id"`
	SeqNum     int    `json:"seq_num"`
	ICode      string `json:"i_code,omitempty"`
	StdResName string `json:"std_res_name"`
	Comment    string `json:"comment"`
}

func (*ModresRecord) Kind() Kind { return KindModres }
func (*ModresRecord) isRecord()  {}

func decodeModres(line string, num int) (Record, error) {
	s := newLineScanner(KindModres, line, num)
	s.requireKeyword("MODRES")
	rec := &ModresRecord{
		IDCode:     s.str(8, 11),
		ResName:    s.str(13, 15),
		ChainID:    s.char(17),
		SeqNum:     s.intField("seq_num", 19, 22),
		ICode:      s.char(23),
		StdResName: s.str(25, 27),
		Comment:    s.tail(30),
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// SeqAdvRecord holds one SEQADV line describing a conflict between the PDB
// sequence and its database reference. DBRes and DBSeq are blank when the
// conflict has no database-side residue, e.g. expression tags.
type SeqAdvRecord struct {
	IDCode      string `json:"id_code"`
	ResName     string `json:"res_name"`
	ChainID     string `json:"chain_id"`
	SeqNum      int    `json:"seq_num"`
	ICode       string `json:"i_code,omitempty"`
	Database    DBType `json:"database"`
	DBAccession string `json:"db_accession"`
	DBRes       string `json:"db_res,omitempty"`
	DBSeq       *int   `json:"db_seq,omitempty"`
	Conflict    string `json:"conflict"`
}

func (*SeqAdvRecord) Kind() Kind { return KindSeqAdv }
func (*SeqAdvRecord) isRecord()  {}

func decodeSeqAdv(line string, num int) (Record, error) {
	s := newLineScanner(KindSeqAdv, line, num)
	s.requireKeyword("SEQADV")
	rec := &SeqAdvRecord{
		IDCode:      s.str(8, 11),
		ResName:     s.str(13, 15),
		ChainID:     s.char(17),
		SeqNum:      s.intField("seq_num", 19, 22),
		ICode:       s.char(23),
		Database:    s.dbType("database", 25, 28),
		DBAccession: s.str(30, 38),
		DBRes:       s.str(40, 42),
		DBSeq:       s.optInt("db_seq", 44, 48),
		Conflict:    s.tail(50),
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// SeqresRecord holds one SEQRES line: a numbered slice of a chain's residue
// sequence, up to 13 residue names per line.
type SeqresRecord struct {
	SerNum   int      `json:"ser_num"`
	ChainID  string   `json:"chain_id"`
	NumRes   int      `json:"num_res"`
	ResNames []string `json:"res_names"`
}

func (*SeqresRecord) Kind() Kind { return KindSeqres }
func (*SeqresRecord) isRecord()  {}

func decodeSeqres(line string, num int) (Record, error) {
	s := newLineScanner(KindSeqres, line, num)
	s.requireKeyword("SEQRES")
	rec := &SeqresRecord{
		SerNum:   s.intField("ser_num", 8, 10),
		ChainID:  s.char(12),
		NumRes:   s.intField("num_res", 14, 17),
		ResNames: strings.Fields(s.tail(20)),
	}
	if rec.ChainID == "" {
		s.fail("chain_id", "")
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
