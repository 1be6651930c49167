package ledger

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the only date format the sheets carry: French calendar
// dates, zero-padded, no time component.
const dateLayout = "02/01/2006"

// wholeDate requires the entire cell to be a date, unlike the sort key scan.
var wholeDate = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// SplitMonthBoundary rewrites a booking that crosses a calendar-month
// boundary into two month-bounded segments with recomputed nights and
// revenue. Non-crossing rows, and rows whose dates fail to parse, come back
// unchanged as a one-element slice.
//
// Dates are half-open intervals [start, end) counted in whole days. A
// booking ending exactly on the 1st of the month after its start spends
// every night in the start month and is not considered crossing.
//
// The split is two-way only: a booking spanning three or more calendar
// months produces a second segment that still crosses a boundary. Known
// limitation, kept as-is.
func SplitMonthBoundary(row Row) []Row {
	start, okStart := parseWholeDate(row[ColStart])
	end, okEnd := parseWholeDate(row[ColEnd])
	if !okStart || !okEnd {
		return []Row{row}
	}

	if start.Month() == end.Month() && start.Year() == end.Year() {
		return []Row{row}
	}

	nextMonth := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	if end.Equal(nextMonth) {
		// Checkout on the 1st: the whole stay belongs to the start month.
		return []Row{row}
	}

	nightsA := daysBetween(start, nextMonth)
	nightsB := daysBetween(nextMonth, end)

	var out []Row
	if nightsA > 0 {
		seg := row
		seg[ColEnd] = Text(nextMonth.Format(dateLayout))
		seg[ColMonth] = Number(float64(start.Month()))
		seg[ColNights] = Number(float64(nightsA))
		applyProratedRevenue(&seg, nightsA)
		out = append(out, seg)
	}
	if nightsB > 0 {
		seg := row
		seg[ColStart] = Text(nextMonth.Format(dateLayout))
		seg[ColMonth] = Number(float64(nextMonth.Month()))
		seg[ColNights] = Number(float64(nightsB))
		applyProratedRevenue(&seg, nightsB)
		out = append(out, seg)
	}
	if len(out) == 0 {
		return []Row{row}
	}
	return out
}

// applyProratedRevenue recomputes the revenue cell as rate × nights rounded
// to the cent. When the nightly rate is missing the original revenue cell is
// left in place, so the segment totals no longer conserve the booking's
// revenue. Known limitation.
func applyProratedRevenue(seg *Row, nights int) {
	rate := seg[ColNightlyRate]
	if rate.Kind != KindNumber {
		return
	}
	revenue := decimal.NewFromFloat(rate.Num).
		Mul(decimal.NewFromInt(int64(nights))).
		Round(2)
	seg[ColRevenue] = Number(revenue.InexactFloat64())
}

// parseWholeDate accepts only a text cell that is exactly one DD/MM/YYYY
// calendar date. Out-of-range dates (31/02/…) count as parse failures.
func parseWholeDate(c Cell) (time.Time, bool) {
	if c.Kind != KindText || !wholeDate.MatchString(c.Text) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, c.Text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// daysBetween counts whole days in the half-open interval [a, b).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
