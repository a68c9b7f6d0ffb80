package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

var testPetitions = []models.PetitionRecord{
	{RowID: 0, NUSP: 111, Name: "Ana", Problem: "QR", Link: "http://a", StudyPlan: "plano a"},
	{RowID: 1, NUSP: 222, Name: "Bia", Problem: "CH"},
	{RowID: 2, NUSP: 333, Name: "Caio", Problem: "QR"},
}

func testDecisions() map[string]models.DecisionRecord {
	k1 := models.DecisionKey(111, "QR", 0)
	k2 := models.DecisionKey(222, "CH", 1)
	return map[string]models.DecisionRecord{
		k1: {Key: k1, Status: models.StatusApprovedStaff},
		k2: {Key: k2, Status: models.StatusDeniedStaff, Justification: "Sem justificativa anexa."},
	}
}

func TestBuildPetitionReport_Full(t *testing.T) {
	f, err := BuildPetitionReport(testPetitions, testDecisions(), true)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relatorio")
	require.NoError(t, err)
	require.Len(t, rows, 4) // header + 3 petitions

	assert.Equal(t, headers, rows[0])

	assert.Equal(t, "111", rows[1][0])
	assert.Equal(t, "Deferido SG", rows[1][5])

	assert.Equal(t, "Indeferido SG", rows[2][5])
	assert.Equal(t, "Sem justificativa anexa.", rows[2][6])

	// untouched row exports as pending
	assert.Equal(t, "Pendente", rows[3][5])
}

func TestBuildPetitionReport_ExcludesDenied(t *testing.T) {
	f, err := BuildPetitionReport(testPetitions, testDecisions(), false)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relatorio")
	require.NoError(t, err)
	require.Len(t, rows, 3) // Bia (denied) is gone

	for _, row := range rows[1:] {
		assert.NotEqual(t, "Indeferido SG", row[5])
	}
}

func TestBuildPetitionReport_HeaderStyled(t *testing.T) {
	f, err := BuildPetitionReport(testPetitions, nil, true)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle("Relatorio", "A1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	// study-plan column grows but stays capped
	w, err := f.GetColWidth("Relatorio", "E")
	require.NoError(t, err)
	assert.LessOrEqual(t, w, float64(maxColumnWidth))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "relatorio_completo_pareceres_20260831.xlsx", Filename(true, now))
	assert.Equal(t, "relatorio_nao_indeferidos_20260831.xlsx", Filename(false, now))
}
