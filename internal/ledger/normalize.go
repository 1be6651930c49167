package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numberToken matches the first signed decimal number in a cleaned string.
var numberToken = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Normalize converts a raw row into its canonical form. Text cells are
// trimmed (including non-breaking spaces), numeric-role cells are parsed out
// of French-formatted text ("1 234,56" → 1234.56), and empty text becomes a
// null cell. The second return is false when every cell normalized to null,
// in which case the row is rejected.
//
// Malformed individual cells never fail the row: they degrade to null.
func Normalize(raw Row) (Row, bool) {
	var out Row
	for i, cell := range raw {
		if numericColumns[i] {
			out[i] = normalizeNumeric(cell)
		} else {
			out[i] = normalizeGeneric(cell)
		}
	}
	if out.IsBlank() {
		return Row{}, false
	}
	return out, true
}

// normalizeAll normalizes a batch of raw rows, dropping rejected ones.
func normalizeAll(raw []Row) []Row {
	out := make([]Row, 0, len(raw))
	for _, r := range raw {
		if norm, ok := Normalize(r); ok {
			out = append(out, norm)
		}
	}
	return out
}

func normalizeNumeric(cell Cell) Cell {
	switch cell.Kind {
	case KindNumber:
		return cell
	case KindText:
		return parseNumericText(cell.Text)
	default:
		return Empty()
	}
}

func normalizeGeneric(cell Cell) Cell {
	if cell.Kind != KindText {
		return cell
	}
	s := strings.TrimSpace(cell.Text)
	if s == "" {
		return Empty()
	}
	return Text(s)
}

// parseNumericText extracts a number from a loosely formatted cell.
// All spacing (regular, insecable, narrow) is stripped, the first decimal
// comma becomes a period, and the first signed decimal token wins.
func parseNumericText(s string) Cell {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	token := numberToken.FindString(cleaned)
	if token == "" {
		return Empty()
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return Empty()
	}
	return Number(v)
}
