package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"iter"
	"maps"
	"slices"
)

// Writer writes records to w and returns how many it wrote.
// Each record's key column is replaced with the canonical form of its key.
type Writer interface {
	Write(w io.Writer, records iter.Seq2[string, Record]) (int, error)
}

func newWriter(format string, keyCol string) Writer {
	switch format {
	case "json":
		return JsonWriter{KeyCol: keyCol}
	case "tsv":
		return CsvWriter{KeyCol: keyCol, isTSV: true}
	default:
		return CsvWriter{KeyCol: keyCol}
	}
}

// JsonWriter writes an array of objects.
type JsonWriter struct {
	KeyCol string
}

func (jw JsonWriter) Write(w io.Writer, records iter.Seq2[string, Record]) (int, error) {
	out := []Record{}
	for key, record := range records {
		out = append(out, withKey(record, jw.KeyCol, key))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// CsvWriter writes a header line followed by one line per record.
// The header is the key column, then every other column seen in any record, sorted.
type CsvWriter struct {
	KeyCol string
	isTSV  bool
}

func (cw CsvWriter) Write(w io.Writer, records iter.Seq2[string, Record]) (int, error) {
	var rows []Record
	columns := map[string]bool{}
	for key, record := range records {
		row := withKey(record, cw.KeyCol, key)
		for column := range row {
			columns[column] = true
		}
		rows = append(rows, row)
	}

	delete(columns, cw.KeyCol)
	headers := append([]string{cw.KeyCol}, slices.Sorted(maps.Keys(columns))...)

	writer := csv.NewWriter(w)
	if cw.isTSV {
		writer.Comma = '\t'
	}
	if err := writer.Write(headers); err != nil {
		return 0, err
	}

	for _, row := range rows {
		// fields follow the header order
		line := make([]string, 0, len(headers))
		for _, header := range headers {
			line = append(line, row[header])
		}
		if err := writer.Write(line); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	return len(rows), writer.Error()
}

// withKey returns a copy of record with the key column set to key. The stored record is left as is.
func withKey(record Record, keyCol string, key string) Record {
	row := maps.Clone(record)
	if row == nil {
		row = Record{}
	}
	row[keyCol] = key
	return row
}
