package review

import "strings"

// ProblemLabel expands the categorical problem codes used by the section
// office. Unknown codes pass through untouched.
func ProblemLabel(problem string) string {
	switch strings.ToUpper(strings.TrimSpace(problem)) {
	case "QR":
		return "Quebra de Requisito"
	case "CH":
		return "Conflito de Horário"
	case "":
		return "Não especificado"
	}
	return problem
}
