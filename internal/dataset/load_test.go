package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadTable_CSV(t *testing.T) {
	data := []byte("nusp,Nome completo,problema\n111,Ana,QR\n222,Bia,CH\n")

	tbl, err := ReadTable(data, "requerimentos.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"nusp", "Nome completo", "problema"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Ana", tbl.Cell(0, 1))
}

func TestReadTable_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"nusp", "disciplina"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{111, "MAC0110"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	tbl, err := ReadTable(buf.Bytes(), "consolidado.xlsx")
	require.NoError(t, err)

	assert.Equal(t, []string{"nusp", "disciplina"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "111", tbl.Cell(0, 0))
	assert.Equal(t, "MAC0110", tbl.Cell(0, 1))
}

func TestReadTable_RaggedRows(t *testing.T) {
	data := []byte("nusp,Nome completo,problema\n111,Ana\n")

	tbl, err := ReadTable(data, "req.csv")
	require.NoError(t, err)
	assert.Equal(t, "", tbl.Cell(0, 2))
}

func TestReadTable_Unreadable(t *testing.T) {
	_, err := ReadTable([]byte("\"unterminated"), "req.xlsx")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "req.xlsx")
}
