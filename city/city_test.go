package city

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expected computes the filter result directly from its definition.
func expected(names []string, query string) []string {
	if query == "" {
		return nil
	}
	var out []string
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), strings.ToLower(query)) {
			out = append(out, n)
		}
	}
	return out
}

func TestFilter(t *testing.T) {
	queries := []string{"", "a", "an", "AN", "new", "NEW YORK", "o", "ton", "x", " ", "san f", "Chicago"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			got := Default.Filter(q)
			assert.Equal(t, expected(Default.Names(), q), got)
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	l := MustList("Zurich", "Amsterdam", "Berlin", "Zagreb")

	assert.Equal(t, []string{"Zurich", "Zagreb"}, l.Filter("z"))
	assert.Equal(t, []string{"Zurich", "Amsterdam", "Berlin", "Zagreb"}, l.Filter("r"))
}

func TestFilter_EmptyQueryMatchesNothing(t *testing.T) {
	assert.Empty(t, Default.Filter(""))
}

func TestFilter_Idempotent(t *testing.T) {
	assert.Equal(t, Default.Filter("o"), Default.Filter("o"))
}

func TestNewList(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr error
	}{
		{
			name:  "valid",
			names: []string{"Austin", "Dallas"},
		},
		{
			name: "no names",
		},
		{
			name:    "empty name",
			names:   []string{"Austin", ""},
			wantErr: ErrEmptyName,
		},
		{
			name:    "blank name",
			names:   []string{"  "},
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewList(tt.names...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.names), l.Len())
		})
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	l := MustList("Austin", "Dallas")
	names := l.Names()
	names[0] = "Paris"

	assert.Equal(t, []string{"Austin", "Dallas"}, l.Names())
}

func TestMustList_Panics(t *testing.T) {
	assert.Panics(t, func() { MustList("") })
}

func TestLookup(t *testing.T) {
	name, ok := Default.Lookup("san francisco")
	assert.True(t, ok)
	assert.Equal(t, "San Francisco", name)

	_, ok = Default.Lookup("Boston")
	assert.False(t, ok)
}
