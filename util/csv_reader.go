package util

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/featherduino/optionsScreener/model"
)

// DecodeChainCSV turns a vendor CSV body into option-chain rows. The first
// record is the header; cells that parse as finite numbers become float64,
// blank and non-finite cells become nil, anything else stays a string.
func DecodeChainCSV(body []byte) ([]model.OptionRow, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []model.OptionRow{}, nil
	}

	header := records[0]
	rows := make([]model.OptionRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(model.OptionRow, len(header))
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" || i >= len(record) {
				continue
			}
			row[name] = parseCell(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCell(cell string) any {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	}
	return cell
}
