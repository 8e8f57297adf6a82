package player

import "slices"

const DefaultPageSize = 3

// Page is a zero-based offset/limit window over a query result
type Page struct {
	Number uint32
	Size   uint32
}

// DefaultPage returns the first page with the default size
func DefaultPage() Page {
	return Page{Number: 0, Size: DefaultPageSize}
}

// Offset returns the index of the first record of the page
func (p Page) Offset() uint64 {
	return uint64(p.Number) * uint64(p.Size)
}

// Query filters the players with the predicate, takes the requested page of
// the matches in their incoming order, and sorts that page by the order key.
//
// The window is taken before sorting, so a page holds the same players it
// would for any order key; only their arrangement differs.
func Query(players []Player, predicate Filter, order Order, page Page) []Player {
	matches := Select(players, predicate)

	offset := page.Offset()
	if page.Size == 0 || offset >= uint64(len(matches)) {
		return []Player{}
	}
	end := offset + uint64(page.Size)
	if end > uint64(len(matches)) {
		end = uint64(len(matches))
	}

	result := slices.Clone(matches[offset:end])
	slices.SortStableFunc(result, order.Compare)
	return result
}

// Count returns the number of players matching the predicate, ignoring pagination.
func Count(players []Player, predicate Filter) int {
	n := 0
	for _, p := range players {
		if predicate(p) {
			n++
		}
	}
	return n
}

// Select returns the players matching the predicate, preserving their order.
func Select(players []Player, predicate Filter) []Player {
	matches := make([]Player, 0, len(players))
	for _, p := range players {
		if predicate(p) {
			matches = append(matches, p)
		}
	}
	return matches
}
