package ledger

// Column roles of a booking row, in sheet order (columns A–I).
const (
	ColGuest = iota
	ColStart
	ColEnd
	ColMonth
	ColNights
	ColOccupants
	ColNightlyRate
	ColRevenue
	ColPayment

	NumColumns
)

// Row is one booking record: a fixed 9-cell sequence. Decoding a JSON array
// into a Row keeps the first 9 values and discards the rest; short arrays
// leave the trailing cells empty.
type Row [NumColumns]Cell

// NewRow builds a row from up to NumColumns cells.
func NewRow(cells ...Cell) Row {
	var r Row
	for i := 0; i < len(cells) && i < NumColumns; i++ {
		r[i] = cells[i]
	}
	return r
}

// IsBlank reports whether every cell of the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Ledger maps a property name to its ordered, reconciled booking rows.
// It is rebuilt on every request and never persisted.
type Ledger map[string][]Row

// numericColumns marks the roles whose values must be a finite number or
// empty after normalization.
var numericColumns = map[int]bool{
	ColMonth:       true,
	ColNights:      true,
	ColOccupants:   true,
	ColNightlyRate: true,
	ColRevenue:     true,
}
