package review

import (
	"sort"
	"strings"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

// Outcome texts are free-form ("Deferido", "APROVADO pelo colegiado", ...).
// Classification is by substring, and a denial word always wins over an
// approval word appearing in the same text ("aprovado parcialmente, restante
// indeferido" counts as denied).
var (
	approvedWords = []string{"aprovado", "deferido", "approved"}
	deniedWords   = []string{"indeferido", "negado", "denied", "rejected"}
)

// OutcomeClass buckets a historical outcome text.
type OutcomeClass string

const (
	OutcomeApproved OutcomeClass = "approved"
	OutcomeDenied   OutcomeClass = "denied"
	OutcomeOther    OutcomeClass = "other"
)

// ClassifyOutcome buckets one historical outcome text.
func ClassifyOutcome(outcome string) OutcomeClass {
	lower := strings.ToLower(outcome)
	if containsAny(lower, deniedWords) {
		return OutcomeDenied
	}
	if containsAny(lower, approvedWords) {
		return OutcomeApproved
	}
	return OutcomeOther
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// CourseCount is one entry of the most-requested-courses ranking.
type CourseCount struct {
	Course string `json:"disciplina"`
	Count  int    `json:"pedidos"`
}

// PeriodCount is the number of historical petitions in one year/term bucket.
type PeriodCount struct {
	Period string `json:"periodo"`
	Count  int    `json:"pedidos"`
}

// Summary is what the reviewer sees before opening individual students.
type Summary struct {
	TotalPetitions      int           `json:"total_requerimentos"`
	PetitioningStudents int           `json:"alunos_requerentes"`
	StudentsWithHistory int           `json:"alunos_com_historico"`
	HistorySharePct     float64       `json:"percentual_com_historico"`
	PrereqConflicts     int           `json:"quebras_requisito_hist"`
	ScheduleConflicts   int           `json:"conflitos_horario_hist"`
	ApprovalRatePct     float64       `json:"taxa_aprovacao_hist"`
	TopCourses          []CourseCount `json:"top_disciplinas"`
	Timeline            []PeriodCount `json:"distribuicao_temporal"`
}

// Summarize computes the session summary from the petition table and the
// merged view.
func Summarize(petitions []models.PetitionRecord, merged []models.MergedRecord) Summary {
	s := Summary{TotalPetitions: len(petitions)}

	petStudents := make(map[int]bool)
	for _, p := range petitions {
		petStudents[p.NUSP] = true
	}
	s.PetitioningStudents = len(petStudents)

	histStudents := make(map[int]bool)
	approved, denied := 0, 0
	courseCounts := make(map[string]int)
	periodCounts := make(map[string]int)
	for _, m := range merged {
		histStudents[m.Petition.NUSP] = true

		switch ClassifyOutcome(m.History.Outcome) {
		case OutcomeApproved:
			approved++
		case OutcomeDenied:
			denied++
		}

		switch strings.ToUpper(strings.TrimSpace(m.History.Problem)) {
		case "QR":
			s.PrereqConflicts++
		case "CH":
			s.ScheduleConflicts++
		}

		if m.History.Course != "" {
			courseCounts[m.History.Course]++
		}
		if m.History.Year != "" || m.History.Term != "" {
			periodCounts[m.History.Year+"/"+m.History.Term]++
		}
	}

	s.StudentsWithHistory = len(histStudents)
	if s.PetitioningStudents > 0 {
		s.HistorySharePct = float64(s.StudentsWithHistory) / float64(s.PetitioningStudents) * 100
	}
	if approved+denied > 0 {
		s.ApprovalRatePct = float64(approved) / float64(approved+denied) * 100
	}
	s.TopCourses = topCourses(courseCounts, 5)
	s.Timeline = timeline(periodCounts)
	return s
}

func topCourses(counts map[string]int, n int) []CourseCount {
	out := make([]CourseCount, 0, len(counts))
	for course, count := range counts {
		out = append(out, CourseCount{Course: course, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Course < out[j].Course
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func timeline(counts map[string]int) []PeriodCount {
	out := make([]PeriodCount, 0, len(counts))
	for period, count := range counts {
		out = append(out, PeriodCount{Period: period, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
