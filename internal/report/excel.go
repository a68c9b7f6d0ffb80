// Package report serializes the reviewed petitions back to a spreadsheet the
// section office can file.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/models"
)

const sheetName = "Relatorio"

// maxColumnWidth caps auto-sizing so study-plan texts don't produce absurd
// columns.
const maxColumnWidth = 50

var headers = []string{"nusp", "Nome completo", "problema", "link_requerimento", "plano_estudo", "parecer_final", "justificativa"}

// BuildPetitionReport joins decisions back onto the petition rows and builds
// the workbook. Rows whose key has no stored decision export as Pending.
// With includeDenied false, rows decided DeniedStaff are left out (the
// "not denied" report handed to the committee).
func BuildPetitionReport(petitions []models.PetitionRecord, decisions map[string]models.DecisionRecord, includeDenied bool) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	writeRow := func(rowIdx int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
		return nil
	}

	if err := writeRow(1, headers); err != nil {
		return nil, err
	}

	rowIdx := 2
	for _, p := range petitions {
		key := models.DecisionKey(p.NUSP, p.Problem, p.RowID)
		dec, ok := decisions[key]
		if !ok {
			dec = models.DecisionRecord{Key: key, Status: models.StatusPending}
		}
		if !includeDenied && dec.Status == models.StatusDeniedStaff {
			continue
		}
		values := []string{
			fmt.Sprintf("%d", p.NUSP),
			p.Name,
			p.Problem,
			p.Link,
			p.StudyPlan,
			dec.Status.Label(),
			dec.Justification,
		}
		if err := writeRow(rowIdx, values); err != nil {
			return nil, err
		}
		rowIdx++
	}

	if err := styleHeader(f); err != nil {
		return nil, err
	}
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		width := float64(w + 2)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func styleHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D7E4BD"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A1", lastCell, style)
}

// Filename returns the date-stamped download name for a report view.
func Filename(includeDenied bool, now time.Time) string {
	stamp := now.Format("20060102")
	if includeDenied {
		return fmt.Sprintf("relatorio_completo_pareceres_%s.xlsx", stamp)
	}
	return fmt.Sprintf("relatorio_nao_indeferidos_%s.xlsx", stamp)
}
