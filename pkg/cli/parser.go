package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingKey        = errors.New("record has no key column")
)

// Record is one row of an input file, column name to value.
type Record map[string]string

// readRecords parses a file according to its extension and calls onEachRecord for every record, in file order.
func readRecords(path string, onEachRecord func(Record) error) error {
	var parse func(io.Reader, func(Record) error) error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		parse = func(r io.Reader, f func(Record) error) error { return parseCsv(r, ',', f) }
	case ".tsv":
		parse = func(r io.Reader, f func(Record) error) error { return parseCsv(r, '\t', f) }
	case ".json":
		parse = parseJson
	case ".yaml", ".yml":
		parse = parseYaml
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return parse(file, onEachRecord)
}

// parseCsv reads a header line, then one record per line.
func parseCsv(r io.Reader, comma rune, onEachRecord func(Record) error) error {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.Comment = '#'

	headers, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}
		if err := onEachRecord(record); err != nil {
			return err
		}
	}
}

// parseJson streams an array of objects.
func parseJson(r io.Reader, onEachRecord func(Record) error) error {
	decoder := json.NewDecoder(r)

	// opening bracket
	if _, err := decoder.Token(); err != nil {
		return err
	}

	for decoder.More() {
		data := map[string]any{}
		if err := decoder.Decode(&data); err != nil {
			return err
		}
		if err := onEachRecord(toRecord(data)); err != nil {
			return err
		}
	}

	// closing bracket
	_, err := decoder.Token()
	return err
}

// parseYaml reads a single document holding a sequence of mappings.
func parseYaml(r io.Reader, onEachRecord func(Record) error) error {
	var data []map[string]any
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && err != io.EOF {
		return err
	}

	for _, item := range data {
		if err := onEachRecord(toRecord(item)); err != nil {
			return err
		}
	}
	return nil
}

func toRecord(data map[string]any) Record {
	record := make(Record, len(data))
	for key, value := range data {
		if value == nil {
			record[key] = ""
			continue
		}
		record[key] = fmt.Sprint(value)
	}
	return record
}
