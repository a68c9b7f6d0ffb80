package dataset

import (
	"fmt"
	"strings"
)

// Canonical column names. These are the values the review pipeline and the
// exported reports use; the spreadsheets prepared by the section office carry
// them in Portuguese.
const (
	ColNUSP    = "nusp"
	ColProblem = "problema"
	ColOutcome = "parecer"
	ColName    = "Nome completo"
	ColCourse  = "disciplina"
	ColYear    = "Ano"
	ColTerm    = "Semestre"
	ColLink    = "link_requerimento"
	ColPlan    = "plano_estudo"
)

// NUSPVariants are the exact (case-insensitive) header spellings accepted for
// the student identifier column.
var NUSPVariants = []string{"nusp", "numero usp", "número usp", "n° usp", "n usp"}

// nuspKeywords widen the match for the identifier column only: any header
// containing one of these is taken as the NUSP column.
var nuspKeywords = []string{"nusp", "numero usp", "número usp", "n° usp"}

// PetitionAliases maps header spellings seen in real petition spreadsheets to
// canonical names. Applied before the variant scan.
var PetitionAliases = map[string]string{
	ColProblem:                   ColProblem,
	"link para o requerimento":   ColLink,
	"links pedidos requerimento": ColLink,
	"plano de estudo":            ColPlan,
	"link plano de estudos":      ColPlan,
	"plano de presença":          ColPlan,
	"link plano de presença":     ColPlan,
}

// HistoryAliases is the alias table for the consolidated (historical) file.
var HistoryAliases = map[string]string{
	ColProblem: ColProblem,
}

// ValidationError is user input being wrong (missing columns, unreadable
// file). Handlers surface its message verbatim with a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FindAndRenameColumns renames headers of t in place. Alias overrides are
// applied first (each alias renames the first header equal to it after
// lower/trim). Then headers are scanned for the canonical column: exact match
// against variants, or keyword containment when the target is the NUSP
// column. First match wins.
func FindAndRenameColumns(t *Table, canonical string, variants []string, aliases map[string]string) error {
	for original, target := range aliases {
		for i, h := range t.Headers {
			if normalizeHeader(h) == normalizeHeader(original) {
				t.Headers[i] = target
				break
			}
		}
	}

	normalizedVariants := make([]string, len(variants))
	for i, v := range variants {
		normalizedVariants[i] = normalizeHeader(v)
	}

	for i, h := range t.Headers {
		nh := normalizeHeader(h)
		if matchesVariant(nh, normalizedVariants) || (canonical == ColNUSP && containsKeyword(nh)) {
			t.Headers[i] = canonical
			return nil
		}
	}
	return &ValidationError{fmt.Sprintf("coluna '%s' não encontrada. Colunas disponíveis: %s",
		canonical, strings.Join(t.Headers, ", "))}
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func matchesVariant(h string, variants []string) bool {
	for _, v := range variants {
		if h == v {
			return true
		}
	}
	return false
}

func containsKeyword(h string) bool {
	for _, kw := range nuspKeywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
