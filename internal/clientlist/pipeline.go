// Package clientlist turns a raw collection of client records into an
// ordered, render-ready list: status-scoped fetches are narrowed by a
// free-text search and an address prefix, then sorted by the street
// reference order and the parsed street number. It also owns the local
// mutation rules (Store) and the cross-view status-change broadcast (Bus).
package clientlist

import (
	"sort"
	"strconv"
	"strings"

	"delivery_tracker/internal/model"
)

// Filter narrows a status-scoped client list.
type Filter struct {
	Search  string // case-insensitive substring over name, phone and address
	Address string // address prefix, usually a street name
}

// Match reports whether the client passes the filter. Matching is plain
// substring/prefix: no tokenization, no diacritic or whitespace
// normalization ("ov" matches "Novak" and "Kovacs" equally).
func (f Filter) Match(c model.Client) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.FullName), q) &&
			!strings.Contains(strings.ToLower(c.Phone), q) &&
			!strings.Contains(strings.ToLower(c.Address), q) {
			return false
		}
	}
	return f.Address == "" || strings.HasPrefix(c.Address, f.Address)
}

// StreetIndex resolves an address to its position in the street
// reference list: the first street whose name is a prefix of the
// address wins. Addresses matching no known street get len(streets),
// which sorts after every known street.
func StreetIndex(streets []model.Street, address string) int {
	for i, s := range streets {
		if strings.HasPrefix(address, s.Name) {
			return i
		}
	}
	return len(streets)
}

// MapLabel returns the map-lookup label for an address: the matched
// street's display name replaced by its map-lookup name. Unknown
// addresses are returned verbatim.
func MapLabel(streets []model.Street, address string) string {
	for _, s := range streets {
		if strings.HasPrefix(address, s.Name) {
			return s.GoogleMapsName + strings.TrimPrefix(address, s.Name)
		}
	}
	return address
}

// StreetNumber parses the trailing whitespace-delimited token of an
// address as the street number, ignoring any non-digit characters in it
// ("12a" parses as 12). ok is false when no digits remain.
func StreetNumber(address string) (int, bool) {
	fields := strings.Fields(address)
	if len(fields) == 0 {
		return 0, false
	}
	last := fields[len(fields)-1]
	var digits strings.Builder
	for _, r := range last {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Sort orders clients in place. With addressFiltered false the primary
// key is the street reference index and the street number breaks ties;
// with addressFiltered true every visible client shares the filtered
// street, so only the number is compared. Numberless addresses sort
// after numbered ones and keep their relative order among themselves.
func Sort(clients []model.Client, streets []model.Street, addressFiltered bool) {
	sort.SliceStable(clients, func(i, j int) bool {
		a, b := clients[i], clients[j]
		if !addressFiltered {
			ia := StreetIndex(streets, a.Address)
			ib := StreetIndex(streets, b.Address)
			if ia != ib {
				return ia < ib
			}
		}
		na, okA := StreetNumber(a.Address)
		nb, okB := StreetNumber(b.Address)
		switch {
		case !okA && !okB:
			return false
		case !okA:
			return false
		case !okB:
			return true
		default:
			return na < nb
		}
	})
}

// Apply runs the full pipeline: filter, then sort. The input slice is
// left untouched.
func Apply(clients []model.Client, f Filter, streets []model.Street) []model.Client {
	out := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	Sort(out, streets, f.Address != "")
	return out
}
