package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// serviceRow is one entry of the flattened cost table, used by every format.
type serviceRow struct {
	Service  string `json:"service"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Cost     int    `json:"monthly_cost"`
}

// sortedServiceRows flattens the static cost table into rows ordered by
// descending cost, then service key.
func sortedServiceRows() []serviceRow {
	rows := make([]serviceRow, 0, len(schema.ServiceCosts))
	for key, info := range schema.ServiceCosts {
		label := info.Label
		if label == "" {
			label = key
		}
		category := info.Category
		if category == "" {
			category = "Other"
		}
		rows = append(rows, serviceRow{
			Service:  key,
			Label:    label,
			Category: category,
			Cost:     info.Cost,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Cost != rows[j].Cost {
			return rows[i].Cost > rows[j].Cost
		}
		return rows[i].Service < rows[j].Service
	})
	return rows
}

// WriteServiceCosts outputs the known service cost table, dispatching based on
// the output format configured.
func WriteServiceCosts(cfg *contract.Config) error {
	rows := sortedServiceRows()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"service", "label", "category", "monthly_cost"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, row := range rows {
					rec := []string{row.Service, row.Label, row.Category, strconv.Itoa(row.Cost)}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")

	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeServicesTable(rows, w)
		}, "Wrote table")
	}
}

// writeServicesTable generates and writes the human-readable cost table.
func writeServicesTable(rows []serviceRow, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Service", "Label", "Category", "Cost"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	total := 0
	for _, row := range rows {
		data = append(data, []string{
			row.Service,
			row.Label,
			row.Category,
			"$" + strconv.Itoa(row.Cost) + "/mo",
		})
		total += row.Cost
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%d known services, worst-case burn: $%d/mo\n", len(rows), total); err != nil {
		return err
	}
	return nil
}
