// Package review joins current petitions to the historical record and
// aggregates the numbers the reviewer sees before deciding each petition.
package review

import (
	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

// Merge inner-joins petitions to history on NUSP. Each petition produces one
// MergedRecord per matching historical row; petitions of students absent from
// the history produce nothing. Petition order is preserved.
func Merge(petitions []models.PetitionRecord, history []models.HistoricalRecord) []models.MergedRecord {
	byNUSP := make(map[int][]models.HistoricalRecord, len(history))
	for _, h := range history {
		byNUSP[h.NUSP] = append(byNUSP[h.NUSP], h)
	}

	var merged []models.MergedRecord
	for _, p := range petitions {
		for _, h := range byNUSP[p.NUSP] {
			merged = append(merged, models.MergedRecord{Petition: p, History: h})
		}
	}
	return merged
}

// HistoryFor returns the historical rows of a single student, in file order.
// The join repeats the full history once per current petition of the student,
// so only the first petition's slice of the join is read.
func HistoryFor(merged []models.MergedRecord, nusp int) []models.HistoricalRecord {
	firstRow := -1
	var out []models.HistoricalRecord
	for _, m := range merged {
		if m.Petition.NUSP != nusp {
			continue
		}
		if firstRow == -1 {
			firstRow = m.Petition.RowID
		}
		if m.Petition.RowID != firstRow {
			break
		}
		out = append(out, m.History)
	}
	return out
}
