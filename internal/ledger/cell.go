package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// CellKind discriminates the three shapes a spreadsheet cell can take.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindNumber
	KindText
)

// Cell is one untyped spreadsheet value. Source rows arrive as JSON arrays
// mixing strings, numbers and nulls; Cell carries that heterogeneity through
// the pipeline without resorting to interface{} everywhere.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

// Empty returns the null cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Number returns a numeric cell. Non-finite values degrade to empty so a
// cell can always be serialized back to JSON.
func Number(v float64) Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Empty()
	}
	return Cell{Kind: KindNumber, Num: v}
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// IsEmpty reports whether the cell is null.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String renders the cell for logs and error messages.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return "<empty>"
	}
}

// MarshalJSON encodes the cell as null, a JSON number or a JSON string.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindNumber:
		return json.Marshal(c.Num)
	case KindText:
		return json.Marshal(c.Text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a raw cell value. Booleans and nested structures
// have no column role here and degrade to their text rendering so a
// malformed cell never aborts the row.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding cell: %w", err)
	}

	switch val := v.(type) {
	case nil:
		*c = Empty()
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			*c = Text(val.String())
			return nil
		}
		*c = Number(f)
	case string:
		*c = Text(val)
	case bool:
		*c = Text(strconv.FormatBool(val))
	default:
		*c = Text(string(data))
	}
	return nil
}
