package ingest

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetview"
	"github.com/UNO-SOFT/sheetview/xlsx"
)

func workbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := xlsx.NewWriter(&buf)
	sh, err := w.NewSheet("Sheet", nil)
	require.NoError(t, err)
	for _, r := range rows {
		require.NoError(t, sh.AppendRow(r...))
	}
	require.NoError(t, sh.Close())
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	assert.Equal(t, FormatXLSX, Sniff(workbook(t, []any{"A"})))
	assert.Equal(t, FormatXLS, Sniff(append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0, 0)))
	assert.Equal(t, FormatUnknown, Sniff([]byte("Name,JoinDate\n")))
	assert.Equal(t, FormatUnknown, Sniff(nil))
}

func TestNormalize_Scenario(t *testing.T) {
	data := workbook(t,
		[]any{"Name", "JoinDate"},
		[]any{"Ann", 44927},
		[]any{"Bob", "5-1-2024"},
	)
	ds, err := Normalize(context.Background(), data, sheetview.Normalizer{})
	require.NoError(t, err)

	require.Len(t, ds.Columns, 2)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, sheetview.StringValue("Ann"), ds.Rows[0].Get("Name"))
	assert.Equal(t, sheetview.StringValue("1/1/2023"), ds.Rows[0].Get("JoinDate"))
	assert.Equal(t, sheetview.StringValue("5-1-2024"), ds.Rows[1].Get("JoinDate"))

	again, err := Normalize(context.Background(), data, sheetview.Normalizer{})
	require.NoError(t, err)
	assert.Equal(t, ds, again)
}

func TestNormalize_XLS(t *testing.T) {
	data, err := os.ReadFile("../xls/testdata/members.xls")
	require.NoError(t, err)
	require.Equal(t, FormatXLS, Sniff(data))

	ds, err := Normalize(context.Background(), data, sheetview.Normalizer{Locale: sheetview.ParseLocale("de")})
	require.NoError(t, err)
	require.Len(t, ds.Columns, 6)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, sheetview.StringValue("1.1.2023"), ds.Rows[0].Get("JoinDate"))
	assert.Equal(t, sheetview.StringValue("45000"), ds.Rows[0].Get("Serial"))
	assert.Equal(t, sheetview.StringValue("15.3.2023"), ds.Rows[1].Get("JoinDate"))
}

func TestNormalize_Errors(t *testing.T) {
	_, err := Normalize(context.Background(), []byte("not a spreadsheet"), sheetview.Normalizer{})
	assert.ErrorIs(t, err, sheetview.ErrParse)

	_, err = Normalize(context.Background(), workbook(t), sheetview.Normalizer{})
	assert.ErrorIs(t, err, sheetview.ErrEmptySheet)

	ds, err := Normalize(context.Background(), workbook(t, []any{"Only", "Header"}), sheetview.Normalizer{})
	require.NoError(t, err)
	assert.Len(t, ds.Columns, 2)
	assert.Empty(t, ds.Rows)
}
