package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titleRow() Row {
	return NewRow(
		Text("Nom"), Text("Date début"), Text("Date fin"), Text("Mois"),
		Text("Nb nuits"), Text("Nb adultes"), Text("Prix/nuit"), Text("Revenus"),
		Text("Paiement"),
	)
}

func booking(guest, start, end string, revenue float64) Row {
	return NewRow(Text(guest), Text(start), Text(end), Empty(), Empty(), Empty(), Empty(), Number(revenue))
}

func TestMergeDropsExactDuplicates(t *testing.T) {
	shared := booking("Dupont", "28/01/2024", "03/02/2024", 300)

	live := []Row{titleRow(), shared, booking("Martin", "05/03/2024", "08/03/2024", 210)}
	arch := []Row{shared, booking("Leroy", "10/04/2024", "12/04/2024", 140)}

	merged := Merge(live, arch)
	require.Len(t, merged, 4) // title + 3 distinct bookings

	count := 0
	for _, row := range merged {
		if row == shared {
			count++
		}
	}
	assert.Equal(t, 1, count, "shared row should appear exactly once")
}

func TestMergeKeepsPartialMatches(t *testing.T) {
	// Same guest and dates, different revenue: two distinct bookings.
	a := booking("Dupont", "28/01/2024", "03/02/2024", 300)
	b := booking("Dupont", "28/01/2024", "03/02/2024", 250)

	merged := Merge([]Row{titleRow(), a}, []Row{b})
	assert.Len(t, merged, 3)
}

func TestMergeDistinguishesTextFromNumber(t *testing.T) {
	a := NewRow(Text("Dupont"), Empty(), Empty(), Number(1))
	b := NewRow(Text("Dupont"), Empty(), Empty(), Text("1"))

	merged := Merge([]Row{titleRow(), a}, []Row{b})
	assert.Len(t, merged, 3, "text \"1\" and number 1 are not structurally equal")
}

func TestMergeTitleRowLeadsAndIsNotDeduplicatedAgainst(t *testing.T) {
	live := []Row{titleRow(), booking("Martin", "05/03/2024", "08/03/2024", 210)}
	arch := []Row{titleRow()} // archive row identical to the title

	merged := Merge(live, arch)
	require.Len(t, merged, 3)
	assert.Equal(t, titleRow(), merged[0])
	assert.Equal(t, titleRow(), merged[2], "title row is excluded from the seen set")
}

func TestMergeOrderIsLiveThenArchive(t *testing.T) {
	live := []Row{titleRow(), booking("A", "01/01/2024", "02/01/2024", 10)}
	arch := []Row{booking("B", "01/02/2024", "02/02/2024", 20)}

	merged := Merge(live, arch)
	require.Len(t, merged, 3)
	assert.Equal(t, Text("A"), merged[1][ColGuest])
	assert.Equal(t, Text("B"), merged[2][ColGuest])
}

func TestMergeEmptyLive(t *testing.T) {
	arch := []Row{booking("B", "01/02/2024", "02/02/2024", 20)}
	merged := Merge(nil, arch)
	require.Len(t, merged, 1)
	assert.Equal(t, Text("B"), merged[0][ColGuest])
}
