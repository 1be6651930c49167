package ledger

import (
	"regexp"
	"sort"
	"time"
)

// anyDate finds a DD/MM/YYYY date anywhere inside a cell, so a row whose
// dates ended up in an unexpected column still sorts by its real date.
var anyDate = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

// farFuture is the sort key for rows carrying no date at all (the title row
// among them); they sink to the end of the ledger.
var farFuture = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

// SortChronological orders rows ascending by the earliest date found in
// each row, scanning cells left to right. The sort is stable: rows sharing
// a date keep their input order.
func SortChronological(rows []Row) {
	type keyed struct {
		key time.Time
		row Row
	}
	entries := make([]keyed, len(rows))
	for i, row := range rows {
		entries[i] = keyed{key: sortKey(row), row: row}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.Before(entries[j].key)
	})
	for i, e := range entries {
		rows[i] = e.row
	}
}

func sortKey(row Row) time.Time {
	for _, cell := range row {
		if cell.Kind != KindText {
			continue
		}
		match := anyDate.FindString(cell.Text)
		if match == "" {
			continue
		}
		t, err := time.ParseInLocation(dateLayout, match, time.UTC)
		if err != nil {
			continue
		}
		return t
	}
	return farFuture
}
