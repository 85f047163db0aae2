// Package pooldata loads the static pool reference table that enriches
// investment analyses. The table is read once at startup and never mutated.
package pooldata

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Row is a single record from the reference table. Values are kept as
// strings and marshal to a JSON object in the original column order.
type Row struct {
	columns []string
	values  map[string]string
}

// Get returns the value for a column, or "" if absent.
func (r Row) Get(column string) string {
	return r.values[column]
}

// MarshalJSON writes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is the full reference table in file order.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// MarshalJSON writes the table as a JSON array of row objects. An empty
// table marshals to [] rather than null.
func (t Table) MarshalJSON() ([]byte, error) {
	if len(t.Rows) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(t.Rows)
}

// Load reads a semicolon-delimited table with a header row. A missing file
// is not an error: the caller gets an empty table and the process keeps
// going. Any other failure also yields an empty table, with the error
// returned so the caller can log it.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("open pool data: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the table from r. Rows shorter than the header are padded
// with empty strings; extra fields are dropped.
func Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read pool data header: %w", err)
	}

	table := Table{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read pool data row %d: %w", len(table.Rows)+2, err)
		}
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				values[col] = record[i]
			} else {
				values[col] = ""
			}
		}
		table.Rows = append(table.Rows, Row{columns: header, values: values})
	}
	return table, nil
}
