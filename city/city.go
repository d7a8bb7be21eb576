package city

import (
	"errors"
	"slices"
	"strings"
)

var ErrEmptyName = errors.New("city name is empty")

// Default is the list offered by the departure and arrival inputs.
var Default = MustList(
	"New York",
	"Austin",
	"San Francisco",
	"Dallas",
	"Chicago",
	"Houston",
)

// List is an ordered, read-only list of city names.
type List struct {
	names []string
}

// NewList returns a list holding names in the given order.
func NewList(names ...string) (*List, error) {
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, ErrEmptyName
		}
	}
	return &List{names: slices.Clone(names)}, nil
}

// MustList is like NewList but panics on error.
func MustList(names ...string) *List {
	l, err := NewList(names...)
	if err != nil {
		panic(err)
	}
	return l
}

// Names returns a copy of the list.
func (l *List) Names() []string {
	return slices.Clone(l.names)
}

func (l *List) Len() int {
	return len(l.names)
}

// Filter returns, in list order, the names containing query as a
// case-insensitive substring. An empty query matches nothing.
func (l *List) Filter(query string) []string {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}
	var matches []string
	for _, name := range l.names {
		if strings.Contains(strings.ToLower(name), query) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Lookup returns the listed spelling of name, compared case-insensitively.
func (l *List) Lookup(name string) (string, bool) {
	for _, n := range l.names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}
