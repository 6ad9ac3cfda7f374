package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetview"
)

func workbook(t *testing.T, sheets map[string][][]any, order ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, name := range order {
		sh, err := w.NewSheet(name, nil)
		require.NoError(t, err)
		for _, row := range sheets[name] {
			require.NoError(t, sh.AppendRow(row...))
		}
		require.NoError(t, sh.Close())
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadFirstSheet(t *testing.T) {
	b := workbook(t, map[string][][]any{
		"People": {
			{"Name", "JoinDate", "Active", "Code"},
			{"Ann", 44927, true, "44927"},
			{"Bob", nil, false},
			{sheetview.StringValue("Cid"), sheetview.NumberValue(12.5), sheetview.Value{}, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		},
		"Other": {{"ignored"}},
	}, "People", "Other")

	grid, err := ReadFirstSheet(context.Background(), bytes.NewReader(b))
	require.NoError(t, err)
	require.Len(t, grid, 4)

	assert.Equal(t, []sheetview.Value{
		sheetview.StringValue("Name"), sheetview.StringValue("JoinDate"),
		sheetview.StringValue("Active"), sheetview.StringValue("Code"),
	}, grid[0])
	assert.Equal(t, []sheetview.Value{
		sheetview.StringValue("Ann"), sheetview.NumberValue(44927),
		sheetview.BoolValue(true), sheetview.StringValue("44927"),
	}, grid[1])

	require.GreaterOrEqual(t, len(grid[2]), 3)
	assert.True(t, grid[2][1].IsUndefined())
	assert.Equal(t, sheetview.BoolValue(false), grid[2][2])

	assert.Equal(t, sheetview.StringValue("Cid"), grid[3][0])
	assert.Equal(t, sheetview.NumberValue(12.5), grid[3][1])
	assert.True(t, grid[3][2].IsUndefined())
	assert.Equal(t, sheetview.StringValue("2024-01-05"), grid[3][3])
}

func TestReadFirstSheet_LeadingBlankRows(t *testing.T) {
	b := workbook(t, map[string][][]any{
		"S": {{}, {}, {"H"}, {1}},
	}, "S")
	grid, err := ReadFirstSheet(context.Background(), bytes.NewReader(b))
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, sheetview.StringValue("H"), grid[0][0])
	assert.Equal(t, sheetview.NumberValue(1), grid[1][0])
}

func TestReadFirstSheet_LeadingBlankColumns(t *testing.T) {
	b := workbook(t, map[string][][]any{
		"S": {{}, {nil, "Name", "JoinDate"}, {nil, "Ann", 44927}},
	}, "S")
	grid, err := ReadFirstSheet(context.Background(), bytes.NewReader(b))
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []sheetview.Value{sheetview.StringValue("Name"), sheetview.StringValue("JoinDate")}, grid[0])
	assert.Equal(t, []sheetview.Value{sheetview.StringValue("Ann"), sheetview.NumberValue(44927)}, grid[1])

	ds, err := sheetview.Normalizer{}.Normalize(grid)
	require.NoError(t, err)
	assert.Equal(t, []sheetview.Column{{Header: "Name", Accessor: "Name"}, {Header: "JoinDate", Accessor: "JoinDate"}}, ds.Columns)
	assert.Equal(t, []string{"Name", "JoinDate"}, ds.Rows[0].Keys())
}

func TestReadFirstSheet_Empty(t *testing.T) {
	b := workbook(t, map[string][][]any{"S": nil}, "S")
	grid, err := ReadFirstSheet(context.Background(), bytes.NewReader(b))
	require.NoError(t, err)
	assert.Empty(t, grid)
}

func TestReadFirstSheet_NotAWorkbook(t *testing.T) {
	_, err := ReadFirstSheet(context.Background(), bytes.NewReader([]byte("PK\x03\x04 but no zip")))
	assert.ErrorIs(t, err, sheetview.ErrParse)
}

func TestReadFirstSheet_Canceled(t *testing.T) {
	b := workbook(t, map[string][][]any{"S": {{"H"}, {1}}}, "S")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadFirstSheet(ctx, bytes.NewReader(b))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriter_TooManyRows(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	sh, err := w.NewSheet("S", []sheetview.Heading{{Name: "A", Header: sheetview.Style{FontBold: true}}})
	require.NoError(t, err)
	sh.(*XLSXSheet).row = MaxRowCount
	assert.ErrorIs(t, sh.AppendRow(1), sheetview.ErrTooManyRows)
}
