package fetcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectRows(t *testing.T, rowCh <-chan []string, errCh <-chan error) [][]string {
	t.Helper()
	var rows [][]string
	for row := range rowCh {
		rows = append(rows, row)
	}
	require.NoError(t, <-errCh)
	return rows
}

func TestStreamCSV(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows := collectRows(t, rowCh, errCh)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, rows[2])
}

func TestStreamCSV_HeaderChannel(t *testing.T) {
	input := "name,value\nfoo,1\nbar,2\n"
	headerCh := make(chan []string, 1)

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
	})
	rows := collectRows(t, rowCh, errCh)

	assert.Equal(t, []string{"name", "value"}, <-headerCh)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"foo", "1"}, rows[0])
}

func TestStreamCSV_VariableFieldCounts(t *testing.T) {
	input := "a,b\n1\n2,3,4\n"

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows := collectRows(t, rowCh, errCh)

	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 1)
	assert.Len(t, rows[2], 3)
}

func TestStreamCSV_Empty(t *testing.T) {
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(""), CSVOptions{})
	rows := collectRows(t, rowCh, errCh)
	assert.Empty(t, rows)
}

func TestStreamCSV_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rowCh, errCh := StreamCSV(ctx, strings.NewReader("a,b\n1,2\n"), CSVOptions{})
	for range rowCh {
	}
	assert.Error(t, <-errCh)
}
