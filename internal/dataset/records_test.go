package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petitionTable(rows [][]string) *Table {
	return &Table{
		Headers: []string{ColNUSP, ColName, ColProblem, ColLink, ColPlan},
		Rows:    rows,
	}
}

func TestPetitionRecords_DropsInvalidNUSP(t *testing.T) {
	tbl := petitionTable([][]string{
		{"111", "Ana", "QR", "http://a", "plano a"},
		{"abc", "Bia", "CH", "", ""},
		{"", "Caio", "QR", "", ""},
		{"222.0", "Davi", "CH", "http://d", ""},
	})

	records, dropped := PetitionRecords(tbl)
	assert.Equal(t, 2, dropped)
	require.Len(t, records, 2)

	assert.Equal(t, 111, records[0].NUSP)
	assert.Equal(t, "Ana", records[0].Name)
	// Excel float rendering coerces to integer
	assert.Equal(t, 222, records[1].NUSP)
	assert.Equal(t, "Davi", records[1].Name)
}

func TestPetitionRecords_RowIDsStableAcrossDrops(t *testing.T) {
	tbl := petitionTable([][]string{
		{"111", "Ana", "QR", "", ""},
		{"bad", "Bia", "CH", "", ""},
		{"333", "Caio", "QR", "", ""},
	})

	records, dropped := PetitionRecords(tbl)
	assert.Equal(t, 1, dropped)
	require.Len(t, records, 2)

	// Caio keeps the row id of his source position even though the row
	// before him was dropped
	assert.Equal(t, 0, records[0].RowID)
	assert.Equal(t, 2, records[1].RowID)
}

func TestHistoricalRecords(t *testing.T) {
	tbl := &Table{
		Headers: []string{ColNUSP, ColCourse, ColYear, ColTerm, ColProblem, ColOutcome},
		Rows: [][]string{
			{"111", "MAC0110", "2023", "1", "QR", "Deferido"},
			{"x", "MAC0121", "2023", "2", "CH", "Indeferido"},
		},
	}

	records, dropped := HistoricalRecords(tbl)
	assert.Equal(t, 1, dropped)
	require.Len(t, records, 1)
	assert.Equal(t, "MAC0110", records[0].Course)
	assert.Equal(t, "Deferido", records[0].Outcome)
}

func TestParseNUSP(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12345678", 12345678, true},
		{" 12345678 ", 12345678, true},
		{"12345678.0", 12345678, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"12a45", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseNUSP(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}
