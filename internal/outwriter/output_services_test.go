package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedServiceRows(t *testing.T) {
	rows := sortedServiceRows()
	require.Len(t, rows, len(schema.ServiceCosts))

	// Ordered by descending cost, then service key for ties
	for i := 1; i < len(rows); i++ {
		prev, curr := rows[i-1], rows[i]
		if prev.Cost == curr.Cost {
			assert.Less(t, prev.Service, curr.Service)
		} else {
			assert.Greater(t, prev.Cost, curr.Cost)
		}
	}

	for _, row := range rows {
		assert.NotEmpty(t, row.Label, "service %q has an empty label", row.Service)
		assert.NotEmpty(t, row.Category, "service %q has an empty category", row.Service)
	}
}

func TestWriteServiceCostsJSON(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "services.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: outputPath,
	}

	require.NoError(t, WriteServiceCosts(cfg))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var rows []serviceRow
	require.NoError(t, json.Unmarshal(content, &rows))
	require.Len(t, rows, len(schema.ServiceCosts))

	for _, row := range rows {
		info, ok := schema.ServiceCosts[row.Service]
		require.True(t, ok, "unexpected service %q in output", row.Service)
		assert.Equal(t, info.Cost, row.Cost)
	}
}

func TestWriteServiceCostsCSV(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "services.csv")
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outputPath,
	}

	require.NoError(t, WriteServiceCosts(cfg))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(schema.ServiceCosts)+1)
	assert.Equal(t, []string{"service", "label", "category", "monthly_cost"}, records[0])

	for _, rec := range records[1:] {
		info, ok := schema.ServiceCosts[rec[0]]
		require.True(t, ok, "unexpected service %q in output", rec[0])
		assert.Equal(t, strconv.Itoa(info.Cost), rec[3])
	}
}

func TestWriteServiceCostsTable(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "services.txt")
	cfg := &contract.Config{
		Output:     schema.TextOut,
		OutputFile: outputPath,
	}

	require.NoError(t, WriteServiceCosts(cfg))

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "vercel")
	assert.Contains(t, text, "known services, worst-case burn")
}
