package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadTable parses an uploaded file as xlsx and, if that fails, as csv.
// The first row becomes the header row.
func ReadTable(data []byte, filename string) (*Table, error) {
	if t, err := readExcel(data); err == nil {
		return t, nil
	}
	t, err := readCSV(data)
	if err != nil {
		return nil, &ValidationError{fmt.Sprintf("falha ao ler o arquivo '%s'. Verifique o formato (xlsx ou csv).", filename)}
	}
	return t, nil
}

func readExcel(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return tableFromRows(rows)
}

func readCSV(data []byte) (*Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // uploaded files are frequently ragged
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no rows")
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}
