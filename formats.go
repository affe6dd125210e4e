package easypath

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/easypath/errors"
)

// ReadJSON decodes the JSON document at path into v.
func (p *Paths) ReadJSON(path string, v any, opts ...Option) error {
	text, abs, err := p.readDocument(path, opts)
	if err != nil {
		return err
	}
	if err := sonic.UnmarshalString(text, v); err != nil {
		return decodeError(err, "invalid JSON", abs)
	}
	return nil
}

// WriteJSON writes v to path as JSON followed by a newline. Objects are
// indented by Config.JSONIndent spaces and their keys sorted unless
// WithIndent or WithSortKeys say otherwise; a negative indent writes compact
// JSON.
func (p *Paths) WriteJSON(path string, v any, opts ...Option) error {
	o := p.options(opts, WithParents(true))
	api := sonic.Config{SortMapKeys: o.sortKeys}.Froze()

	var data []byte
	var err error
	if o.indent < 0 {
		data, err = api.Marshal(v)
	} else {
		data, err = api.MarshalIndent(v, "", strings.Repeat(" ", o.indent))
	}
	if err != nil {
		return encodeError(err, "failed to encode JSON", path)
	}
	return p.writeDocument(path, string(data)+"\n", o)
}

// ReadCSV returns the rows of the CSV file at path keyed by the header row.
// Short rows are padded with empty strings and fields beyond the header are
// dropped.
func (p *Paths) ReadCSV(path string, opts ...Option) ([]map[string]string, error) {
	o := p.options(opts)
	text, abs, err := p.readDocument(path, opts)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = o.delimiter
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, decodeError(err, "invalid CSV", abs)
	}

	rows := []map[string]string{}
	if len(records) == 0 {
		return rows, nil
	}
	header := records[0]
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteCSV writes a header of fieldnames followed by one record per row,
// with "\r\n" line endings. Missing keys are written empty; keys not in
// fieldnames are an INVALID_INPUT error.
func (p *Paths) WriteCSV(path string, rows []map[string]string, fieldnames []string, opts ...Option) error {
	o := p.options(opts, WithParents(true))

	known := make(map[string]bool, len(fieldnames))
	for _, name := range fieldnames {
		known[name] = true
	}
	for _, row := range rows {
		for key := range row {
			if !known[key] {
				return errors.WithContextMap(errors.New(errors.CodeInvalidInput, "row has a field not in fieldnames"),
					map[string]interface{}{"path": path, "field": key})
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = o.delimiter
	w.UseCRLF = true
	if err := w.Write(fieldnames); err != nil {
		return errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "failed to encode CSV"), "path", path)
	}
	record := make([]string, len(fieldnames))
	for _, row := range rows {
		for i, name := range fieldnames {
			record[i] = row[name]
		}
		if err := w.Write(record); err != nil {
			return encodeError(err, "failed to encode CSV", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return encodeError(err, "failed to encode CSV", path)
	}
	return p.writeDocument(path, buf.String(), o)
}

// ReadYAML decodes the YAML document at path into v.
func (p *Paths) ReadYAML(path string, v any, opts ...Option) error {
	text, abs, err := p.readDocument(path, opts)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal([]byte(text), v); err != nil {
		return decodeError(err, "invalid YAML", abs)
	}
	return nil
}

// WriteYAML writes v to path as YAML in block style. The indentation comes
// from Config.JSONIndent or WithIndent and is at least two spaces.
func (p *Paths) WriteYAML(path string, v any, opts ...Option) error {
	o := p.options(opts, WithParents(true))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(max(o.indent, 2))
	if err := enc.Encode(v); err != nil {
		return encodeError(err, "failed to encode YAML", path)
	}
	if err := enc.Close(); err != nil {
		return encodeError(err, "failed to encode YAML", path)
	}
	return p.writeDocument(path, buf.String(), o)
}

// ReadTOML decodes the TOML document at path into v.
func (p *Paths) ReadTOML(path string, v any, opts ...Option) error {
	text, abs, err := p.readDocument(path, opts)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal([]byte(text), v); err != nil {
		return decodeError(err, "invalid TOML", abs)
	}
	return nil
}

// WriteTOML writes v, a map or struct, to path as TOML.
func (p *Paths) WriteTOML(path string, v any, opts ...Option) error {
	o := p.options(opts, WithParents(true))

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return encodeError(err, "failed to encode TOML", path)
	}
	return p.writeDocument(path, buf.String(), o)
}

// readDocument reads and decodes the text of a structured file.
func (p *Paths) readDocument(path string, opts []Option) (string, string, error) {
	abs, err := p.abs(path)
	if err != nil {
		return "", "", err
	}
	text, err := p.ReadText(abs, opts...)
	if err != nil {
		return "", "", err
	}
	return text, abs, nil
}

// writeDocument encodes and writes the text of a structured file.
func (p *Paths) writeDocument(path, text string, o *options) error {
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	encoded, err := p.encode(abs, text, o)
	if err != nil {
		return err
	}
	return p.writeFile(abs, encoded, o)
}

func decodeError(err error, message, path string) error {
	return errors.WrapWithContext(err, errors.CodeDecodeFailed, message, map[string]interface{}{"path": path})
}

func encodeError(err error, message, path string) error {
	return errors.WrapWithContext(err, errors.CodeEncodeFailed, message, map[string]interface{}{"path": path})
}
