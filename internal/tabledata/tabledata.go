// Package tabledata reads table documents for the table command.
//
// YAML documents look like:
//
//	header: [ID, Name]
//	rows:
//	  - [1, John]
//	  - [2, Mary]
//
// CSV documents hold one row per record; the first record becomes the header
// on request.
package tabledata

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/ansikit/internal/config"
	ansierrors "github.com/alexisbeaulieu97/ansikit/pkg/errors"
)

// Format identifies the encoding of a document.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// Document is a decoded table.
type Document struct {
	Header []any   `yaml:"header,omitempty"`
	Rows   [][]any `yaml:"rows" validate:"required,min=1"`
}

// DetectFormat picks the format from the file extension; anything that is
// not .csv is read as YAML.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatYAML
}

// Parse decodes data. name is only used in error messages. For CSV,
// header promotes the first record to the header row.
func Parse(name string, data []byte, format Format, header bool) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatCSV:
		doc, err = parseCSV(name, data, header)
	case FormatYAML, "":
		doc, err = parseYAML(name, data)
	default:
		return nil, ansierrors.NewInvalidValueError(string(format), "table format")
	}
	if err != nil {
		return nil, err
	}

	if err := config.ValidateStruct(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Read decodes everything r yields.
func Read(name string, r io.Reader, format Format, header bool) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ansierrors.NewParseError(name, 0, err)
	}
	return Parse(name, data, format, header)
}

func parseYAML(name string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		line := 0
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			_, _ = fmt.Sscanf(typeErr.Errors[0], "line %d:", &line)
		}
		return nil, ansierrors.NewParseError(name, line, err)
	}
	return &doc, nil
}

func parseCSV(name string, data []byte, header bool) (*Document, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		line := 0
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			line = parseErr.Line
		}
		return nil, ansierrors.NewParseError(name, line, err)
	}

	doc := &Document{}
	if header && len(records) > 0 {
		doc.Header = toCells(records[0])
		records = records[1:]
	}
	for _, record := range records {
		doc.Rows = append(doc.Rows, toCells(record))
	}
	return doc, nil
}

func toCells(record []string) []any {
	cells := make([]any, len(record))
	for i, v := range record {
		cells[i] = v
	}
	return cells
}
