package feed

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is one data line of a feed, keyed by the header row's column names.
type Row map[string]string

// ParseCSV decodes header-keyed rows from r. The first record is the header;
// ragged records are tolerated (extra cells dropped, missing cells absent from
// the row map) and fully empty lines are skipped. Cell values are passed
// through untouched; normalization is the mapper's job.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		if isEmpty(record) {
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isEmpty(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
