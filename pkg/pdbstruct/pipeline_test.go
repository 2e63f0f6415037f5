package pdbstruct

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniEntry = `HEADER    HYDROLASE                               22-JAN-98   1A4G
CRYST1   50.840   42.770   28.950  90.00  90.00  90.00 P 43 21 2     8
ORIGX1      1.000000  0.000000  0.000000        0.00000
ORIGX2      0.000000  1.000000  0.000000        0.00000
ORIGX3      0.000000  0.000000  1.000000        0.00000
REMARK   1 REFERENCE 1
ATOM      1  N   MET A   1      38.198  19.582  12.265  1.00 24.67           N
ATOM      2  CA  MET A   1      38.839  20.066  13.506  1.00 23.39           C
HETATM    3  O   HOH A  74      34.155  22.278  14.382  1.00 33.91           O
TER       4      MET A   1
CONECT    1    2
ENDMDL
END
`

func TestParseOneRecordPerLine(t *testing.T) {
	records, err := Parse(miniEntry)
	require.NoError(t, err)
	require.Len(t, records, 13)

	kinds := make([]Kind, len(records))
	for i, rec := range records {
		kinds[i] = rec.Kind()
	}
	assert.Equal(t, []Kind{
		KindUnmodeled, KindCrystal,
		KindOrigxn, KindOrigxn, KindOrigxn,
		KindUnmodeled,
		KindAtom, KindAtom, KindHetatm,
		KindTerm, KindConnect, KindEndModel,
		KindUnmodeled,
	}, kinds)
}

func TestParseOrderStableAcrossWorkerCounts(t *testing.T) {
	want, err := Parse(miniEntry)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 4, 8, 16, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			p := NewParser(WithWorkers(workers))
			got, err := p.Parse(context.Background(), miniEntry)
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i], got[i], "record %d", i)
			}
		})
	}
}

func TestParseParallel(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 500; i++ {
		fmt.Fprintf(&sb, "ATOM  %5d  CA  GLY A%4d      11.000  12.000  13.000  1.00  0.00           C  \n", i, i)
	}
	records, err := ParseParallel(context.Background(), sb.String())
	require.NoError(t, err)
	require.Len(t, records, 500)
	for i, rec := range records {
		atom := rec.(*AtomRecord)
		assert.Equal(t, i+1, atom.Serial)
	}
}

func TestParseFailFast(t *testing.T) {
	contents := "HEADER    TEST\n" +
		"ATOM      1  N   MET A   1      XX.154  16.967  12.084  1.00 11.99           N  \n" +
		"ATOM      2  CA  MET A   1      26.266  18.049  12.004  1.00 16.92           C  \n"

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			p := NewParser(WithWorkers(workers))
			records, err := p.Parse(context.Background(), contents)
			assert.Nil(t, records)
			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, KindAtom, decErr.Kind)
			assert.Equal(t, 2, decErr.Line)
			assert.Equal(t, "x", decErr.Field)
			assert.Equal(t, "XX.154", decErr.Raw)
		})
	}
}

func TestParseCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewParser(WithWorkers(4))
	_, err := p.Parse(ctx, miniEntry)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseEmptyInput(t *testing.T) {
	records, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, splitLines("A\nB\n"))
	assert.Equal(t, []string{"A", "B"}, splitLines("A\nB"))
	assert.Equal(t, []string{"A", "B"}, splitLines("A\r\nB\r\n"))
	assert.Equal(t, []string{"A", "", "B"}, splitLines("A\n\nB\n"))
	assert.Empty(t, splitLines(""))
}

func TestAssignAtomSerialsBackfill(t *testing.T) {
	contents := strings.Join([]string{
		"ATOM  99998  CA  GLY A 100      11.000  12.000  13.000  1.00  0.00           C  ",
		"ATOM         CA  GLY A 101      11.000  12.000  13.000  1.00  0.00           C  ",
		"ATOM         CA  GLY A 102      11.000  12.000  13.000  1.00  0.00           C  ",
		"TER",
		"ATOM  186a0  CA  GLY A 103      11.000  12.000  13.000  1.00  0.00           C  ",
		"ATOM         CA  GLY A 104      11.000  12.000  13.000  1.00  0.00           C  ",
	}, "\n")
	records, err := Parse(contents)
	require.NoError(t, err)

	serials := []int{}
	for _, rec := range records {
		if atom, ok := rec.(*AtomRecord); ok {
			serials = append(serials, atom.Serial)
		}
	}
	assert.Equal(t, []int{99998, 99999, 100000, 100000, 100001}, serials)
}
