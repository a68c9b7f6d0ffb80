package dataset

import (
	"strconv"
	"strings"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

// PetitionRecords converts a normalized petitions table into typed records.
// Rows whose NUSP cell fails numeric coercion are dropped; the count of
// dropped rows is returned so the caller can warn the user. RowID is the
// source row position at load time and is never reassigned, so decision keys
// stay stable after the invalid rows are gone.
func PetitionRecords(t *Table) ([]models.PetitionRecord, int) {
	nusp := t.Index(ColNUSP)
	name := t.Index(ColName)
	problem := t.Index(ColProblem)
	link := t.Index(ColLink)
	plan := t.Index(ColPlan)

	var out []models.PetitionRecord
	dropped := 0
	for i := range t.Rows {
		id, ok := parseNUSP(t.Cell(i, nusp))
		if !ok {
			dropped++
			continue
		}
		out = append(out, models.PetitionRecord{
			RowID:     i,
			NUSP:      id,
			Name:      strings.TrimSpace(t.Cell(i, name)),
			Problem:   strings.TrimSpace(t.Cell(i, problem)),
			Link:      strings.TrimSpace(t.Cell(i, link)),
			StudyPlan: strings.TrimSpace(t.Cell(i, plan)),
		})
	}
	return out, dropped
}

// HistoricalRecords converts a normalized consolidated table into typed
// records, dropping rows with an invalid NUSP the same way.
func HistoricalRecords(t *Table) ([]models.HistoricalRecord, int) {
	nusp := t.Index(ColNUSP)
	course := t.Index(ColCourse)
	year := t.Index(ColYear)
	term := t.Index(ColTerm)
	problem := t.Index(ColProblem)
	outcome := t.Index(ColOutcome)

	var out []models.HistoricalRecord
	dropped := 0
	for i := range t.Rows {
		id, ok := parseNUSP(t.Cell(i, nusp))
		if !ok {
			dropped++
			continue
		}
		out = append(out, models.HistoricalRecord{
			NUSP:    id,
			Course:  strings.TrimSpace(t.Cell(i, course)),
			Year:    strings.TrimSpace(t.Cell(i, year)),
			Term:    strings.TrimSpace(t.Cell(i, term)),
			Problem: strings.TrimSpace(t.Cell(i, problem)),
			Outcome: strings.TrimSpace(t.Cell(i, outcome)),
		})
	}
	return out, dropped
}

// parseNUSP coerces an identifier cell to an integer. Excel exports often
// render numeric cells as "12345678.0", so integral floats are accepted too.
func parseNUSP(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
