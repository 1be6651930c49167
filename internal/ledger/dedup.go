package ledger

import "encoding/json"

// canonicalKey serializes a row for duplicate detection. Two rows collide
// only when all 9 cells are structurally equal: same kinds, same values,
// same null positions. A text "1" and a number 1 serialize differently and
// are not duplicates.
func canonicalKey(r Row) string {
	data, err := json.Marshal(r)
	if err != nil {
		// Cells marshal to null, numbers or strings; this cannot fail.
		return r[ColGuest].String() + "|" + r[ColStart].String()
	}
	return string(data)
}

// Merge combines normalized live rows with normalized archive rows into one
// duplicate-free sequence. The first live row is the sheet's title row: it
// leads the output and takes no part in deduplication. Content order is all
// remaining live rows, then all archive rows; the first occurrence of a
// duplicate wins.
//
// Rows that differ in any single cell (same dates, different revenue) are
// both kept. That is deliberate: partial matches are distinct bookings.
func Merge(live, archive []Row) []Row {
	out := make([]Row, 0, len(live)+len(archive))

	content := archive
	if len(live) > 0 {
		out = append(out, live[0])
		content = make([]Row, 0, len(live)-1+len(archive))
		content = append(content, live[1:]...)
		content = append(content, archive...)
	}

	seen := make(map[string]struct{}, len(content))
	for _, row := range content {
		key := canonicalKey(row)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}
