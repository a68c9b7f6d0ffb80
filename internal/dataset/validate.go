package dataset

import (
	"fmt"
	"strings"
)

// RequiredHistoryColumns must be present in the consolidated file after
// normalization.
var RequiredHistoryColumns = []string{ColNUSP, ColCourse, ColYear, ColTerm, ColProblem, ColOutcome}

// RequiredPetitionColumns must be present in the current-petitions file.
var RequiredPetitionColumns = []string{ColNUSP, ColName, ColProblem, ColLink, ColPlan}

// Validate checks both tables against their required-column lists and reports
// every missing column from either file in a single error, so the user can
// fix the spreadsheets in one pass.
func Validate(history, petitions *Table) error {
	var errs []string
	if missing := missingColumns(history, RequiredHistoryColumns); len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Arquivo consolidado: colunas faltando - %s", strings.Join(missing, ", ")))
	}
	if missing := missingColumns(petitions, RequiredPetitionColumns); len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Arquivo requerimentos: colunas faltando - %s", strings.Join(missing, ", ")))
	}
	if len(errs) > 0 {
		return &ValidationError{strings.Join(errs, "\n")}
	}
	return nil
}

func missingColumns(t *Table, required []string) []string {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	return missing
}
