package pdbstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfer/pdb-plugin/testutil"
)

func TestDecodeCrystalLine(t *testing.T) {
	const line = "CRYST1   54.989   54.989   77.491  90.00  90.00  90.00 P 43 21 2     8"
	rec := decode(t, line)
	require.Equal(t, KindCrystal, rec.Kind())

	want := &CrystalRecord{
		A:          54.989,
		B:          54.989,
		C:          77.491,
		Alpha:      90.00,
		Beta:       90.00,
		Gamma:      90.00,
		SpaceGroup: "P 43 21 2",
		Z:          8,
	}
	assert.Empty(t, testutil.RecordDiff(want, rec))
}

func TestDecodeDBRefLine(t *testing.T) {
	const line = "DBREF  2JHQ A    1   226  UNP    Q9KPK8   UNG_VIBCH        1    226"
	rec := decode(t, line)
	require.Equal(t, KindDBRef, rec.Kind())

	dbref := rec.(*DBRefRecord)
	assert.Equal(t, "2JHQ", dbref.IDCode)
	assert.Equal(t, "A", dbref.ChainID)
	assert.Equal(t, 1, dbref.SeqBegin)
	assert.Empty(t, dbref.InsertBegin)
	assert.Equal(t, 226, dbref.SeqEnd)
	assert.Empty(t, dbref.InsertEnd)
	assert.Equal(t, DBUniProt, dbref.Database)
	assert.Equal(t, "Q9KPK8", dbref.DBAccession)
	assert.Equal(t, "UNG_VIBCH", dbref.DBIDCode)
	assert.Equal(t, 1, dbref.DBSeqBegin)
	assert.Equal(t, 226, dbref.DBSeqEnd)
	// Database-side insertion codes only exist for PDB references.
	assert.Empty(t, dbref.IDbnsBeg)
	assert.Empty(t, dbref.DBInsEnd)
}

func TestDecodeDBRefPDBInsertionCodes(t *testing.T) {
	const line = "DBREF  2JHQ A    1   226  PDB    Q9KPK8   UNG_VIBCH        1A   226B"
	dbref := decode(t, line).(*DBRefRecord)
	assert.Equal(t, DBPDB, dbref.Database)
	assert.Equal(t, "A", dbref.IDbnsBeg)
	assert.Equal(t, "B", dbref.DBInsEnd)
}

func TestDecodeDBRefUnknownDatabase(t *testing.T) {
	const line = "DBREF  2JHQ A    1   226  XYZ    Q9KPK8   UNG_VIBCH        1    226"
	_, err := DecodeLine(line, 12)
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, KindDBRef, decErr.Kind)
	assert.Equal(t, "database", decErr.Field)
	assert.Equal(t, "XYZ", decErr.Raw)
	assert.Equal(t, 12, decErr.Line)
}

func TestDecodeHetLine(t *testing.T) {
	const line = "HET    UDP  A1457      25"
	rec := decode(t, line)
	require.Equal(t, KindHet, rec.Kind())

	het := rec.(*HetRecord)
	assert.Equal(t, "UDP", het.HetID)
	assert.Equal(t, "A", het.ChainID)
	assert.Equal(t, 1457, het.SeqNum)
	assert.Empty(t, het.ICode)
	assert.Equal(t, 25, het.NumHetAtoms)
	assert.Empty(t, het.Text)
}

func TestDecodeHetnamLine(t *testing.T) {
	const line = "HETNAM     NAG N-ACETYL-D-GLUCOSAMINE"
	rec := decode(t, line)
	require.Equal(t, KindHetnam, rec.Kind())

	hetnam := rec.(*HetnamRecord)
	assert.Empty(t, hetnam.Continuation)
	assert.Equal(t, "NAG", hetnam.HetID)
	assert.Equal(t, "N-ACETYL-D-GLUCOSAMINE", hetnam.Text)
}

func TestDecodeHetnamContinuation(t *testing.T) {
	const line = "HETNAM  2  SAD DINUCLEOTIDE"
	hetnam := decode(t, line).(*HetnamRecord)
	assert.Equal(t, "2", hetnam.Continuation)
	assert.Equal(t, "SAD", hetnam.HetID)
	assert.Equal(t, "DINUCLEOTIDE", hetnam.Text)
}

func TestDecodeModelLine(t *testing.T) {
	rec := decode(t, "MODEL        1")
	require.Equal(t, KindModel, rec.Kind())
	assert.Equal(t, 1, rec.(*ModelRecord).Serial)
}

func TestDecodeNummdlLine(t *testing.T) {
	rec := decode(t, "NUMMDL       1")
	require.Equal(t, KindNummdl, rec.Kind())
	assert.Equal(t, 1, rec.(*NummdlRecord).Count)
}

func TestDecodeEndmdlLine(t *testing.T) {
	rec := decode(t, "ENDMDL")
	assert.Equal(t, KindEndModel, rec.Kind())
}

func TestDecodeModresLine(t *testing.T) {
	const line = "MODRES 2R0L ASN A   74  ASN  GLYCOSYLATION SITE"
	rec := decode(t, line)
	require.Equal(t, KindModres, rec.Kind())

	modres := rec.(*ModresRecord)
	assert.Equal(t, "2R0L", modres.IDCode)
	assert.Equal(t, "ASN", modres.ResName)
	assert.Equal(t, "A", modres.ChainID)
	assert.Equal(t, 74, modres.SeqNum)
	assert.Empty(t, modres.ICode)
	assert.Equal(t, "ASN", modres.StdResName)
	assert.Equal(t, "GLYCOSYLATION SITE", modres.Comment)
}

func TestDecodeSeqAdvLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *SeqAdvRecord
	}{
		{
			name: "expression tag without database residue",
			line: "SEQADV 3ABC MET A   -1  UNP  P10725              EXPRESSION TAG",
			want: &SeqAdvRecord{
				IDCode:      "3ABC",
				ResName:     "MET",
				ChainID:     "A",
				SeqNum:      -1,
				Database:    DBUniProt,
				DBAccession: "P10725",
				Conflict:    "EXPRESSION TAG",
			},
		},
		{
			name: "engineered mutation",
			line: "SEQADV 3ABC GLY A   50  UNP  P10725    VAL    50 ENGINEERED",
			want: &SeqAdvRecord{
				IDCode:      "3ABC",
				ResName:     "GLY",
				ChainID:     "A",
				SeqNum:      50,
				Database:    DBUniProt,
				DBAccession: "P10725",
				DBRes:       "VAL",
				DBSeq:       intPtr(50),
				Conflict:    "ENGINEERED",
			},
		},
		{
			name: "norine abbreviation",
			line: "SEQADV 2OKW LEU A   64  NOR  NOR00669  PHE    14 SEE REMARK 999",
			want: &SeqAdvRecord{
				IDCode:      "2OKW",
				ResName:     "LEU",
				ChainID:     "A",
				SeqNum:      64,
				Database:    DBNorine,
				DBAccession: "NOR00669",
				DBRes:       "PHE",
				DBSeq:       intPtr(14),
				Conflict:    "SEE REMARK 999",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := decode(t, tt.line)
			require.Equal(t, KindSeqAdv, rec.Kind())
			assert.Empty(t, testutil.RecordDiff(tt.want, rec))
		})
	}
}

func TestDecodeSeqresLine(t *testing.T) {
	const line = "SEQRES   1 A    8  GLY ILE VAL GLU GLN CYS CYS THR"
	rec := decode(t, line)
	require.Equal(t, KindSeqres, rec.Kind())

	seqres := rec.(*SeqresRecord)
	assert.Equal(t, 1, seqres.SerNum)
	assert.Equal(t, "A", seqres.ChainID)
	assert.Equal(t, 8, seqres.NumRes)
	assert.Equal(t, []string{"GLY", "ILE", "VAL", "GLU", "GLN", "CYS", "CYS", "THR"}, seqres.ResNames)
}

func intPtr(v int) *int { return &v }
