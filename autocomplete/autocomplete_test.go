package autocomplete

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/dom/memdom"
)

type page struct {
	doc           *memdom.Document
	departure     *memdom.Element
	departureList *memdom.Element
	arrival       *memdom.Element
	arrivalList   *memdom.Element
	outside       *memdom.Element
}

func newPage() *page {
	doc := memdom.New()
	p := &page{doc: doc}
	p.departure = doc.Add(doc.Body(), "input", "departure-city-input")
	p.departureList = doc.Add(doc.Body(), "div", "departure-dropdown-list")
	p.arrival = doc.Add(doc.Body(), "input", "arrival-city-input")
	p.arrivalList = doc.Add(doc.Body(), "div", "arrival-dropdown-list")
	p.outside = doc.Add(doc.Body(), "p", "outside")
	p.departureList.SetHidden(true)
	p.arrivalList.SetHidden(true)
	return p
}

func (p *page) bindBoth(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r := New(p.doc, city.Default, opts...)
	_, err := r.BindByID("departure-city-input", "departure-dropdown-list")
	require.NoError(t, err)
	_, err = r.BindByID("arrival-city-input", "arrival-dropdown-list")
	require.NoError(t, err)
	return r
}

func suggestions(list *memdom.Element) []string {
	var out []string
	for _, c := range list.Children() {
		out = append(out, c.Text())
	}
	return out
}

func expected(query string) []string {
	if query == "" {
		return nil
	}
	var out []string
	for _, n := range city.Default.Names() {
		if strings.Contains(strings.ToLower(n), strings.ToLower(query)) {
			out = append(out, n)
		}
	}
	return out
}

func TestTyping(t *testing.T) {
	queries := []string{"a", "an", "AN", "new", "Ho", "o", "ton", "xyz", " ", "san francisco"}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			p := newPage()
			p.bindBoth(t)

			p.departure.Type(q)

			want := expected(q)
			assert.Equal(t, want, suggestions(p.departureList))
			assert.Equal(t, len(want) == 0, p.departureList.Hidden())
			for _, c := range p.departureList.Children() {
				assert.True(t, c.HasClass(ItemClass))
			}
			// the other binding is untouched
			assert.Empty(t, p.arrivalList.Children())
			assert.True(t, p.arrivalList.Hidden())
		})
	}
}

func TestTyping_EmptyClearsAndHides(t *testing.T) {
	p := newPage()
	p.bindBoth(t)

	p.departure.Type("a")
	require.NotEmpty(t, p.departureList.Children())
	require.False(t, p.departureList.Hidden())

	p.departure.Type("")

	assert.Empty(t, p.departureList.Children())
	assert.True(t, p.departureList.Hidden())
}

func TestTyping_Idempotent(t *testing.T) {
	p := newPage()
	p.bindBoth(t)

	p.arrival.Type("o")
	first := suggestions(p.arrivalList)
	p.arrival.Type("o")

	assert.Equal(t, first, suggestions(p.arrivalList))
}

func TestTyping_RebuildsFromScratch(t *testing.T) {
	p := newPage()
	p.bindBoth(t)

	p.departure.Type("a")
	p.departure.Type("da")

	assert.Equal(t, expected("da"), suggestions(p.departureList))
}

func TestSelect(t *testing.T) {
	p := newPage()
	p.bindBoth(t)

	p.departure.Type("san")
	items := p.departureList.Children()
	require.Len(t, items, 1)

	items[0].Click()

	assert.Equal(t, "San Francisco", p.departure.Value())
	assert.Empty(t, p.departureList.Children())
	assert.True(t, p.departureList.Hidden())
}

func TestSelect_KeepsListedCase(t *testing.T) {
	p := newPage()
	p.bindBoth(t)

	p.arrival.Type("HOUS")
	items := p.arrivalList.Children()
	require.Len(t, items, 1)
	items[0].Click()

	assert.Equal(t, "Houston", p.arrival.Value())
}

func TestDismiss(t *testing.T) {
	t.Run("click outside hides both lists", func(t *testing.T) {
		p := newPage()
		p.bindBoth(t)
		p.departure.Type("a")
		p.arrival.Type("o")

		p.outside.Click()

		assert.True(t, p.departureList.Hidden())
		assert.True(t, p.arrivalList.Hidden())
		// hidden, not cleared
		assert.Equal(t, expected("a"), suggestions(p.departureList))
		assert.Equal(t, expected("o"), suggestions(p.arrivalList))
		// inputs untouched
		assert.Equal(t, "a", p.departure.Value())
		assert.Equal(t, "o", p.arrival.Value())
	})

	t.Run("click on input keeps its list", func(t *testing.T) {
		p := newPage()
		p.bindBoth(t)
		p.departure.Type("a")

		p.departure.Click()

		assert.False(t, p.departureList.Hidden())
	})

	t.Run("click inside list keeps it", func(t *testing.T) {
		p := newPage()
		p.bindBoth(t)
		p.departure.Type("a")

		p.departureList.Click()

		assert.False(t, p.departureList.Hidden())
	})

	t.Run("click in one pair hides the other", func(t *testing.T) {
		p := newPage()
		p.bindBoth(t)
		p.departure.Type("a")
		p.arrival.Type("o")

		p.departure.Click()

		assert.False(t, p.departureList.Hidden())
		assert.True(t, p.arrivalList.Hidden())
	})
}

func TestBind_SingleDocumentListener(t *testing.T) {
	p := newPage()
	r := p.bindBoth(t)

	assert.Equal(t, 2, r.Bindings())
	assert.Equal(t, 1, p.doc.ClickListeners())
}

func TestBind_MoreThanTwoPairs(t *testing.T) {
	p := newPage()
	r := p.bindBoth(t)
	stop := p.doc.Add(p.doc.Body(), "input", "stopover-city-input")
	stopList := p.doc.Add(p.doc.Body(), "div", "stopover-dropdown-list")
	_, err := r.Bind(stop, stopList)
	require.NoError(t, err)

	stop.Type("chi")
	require.Equal(t, []string{"Chicago"}, suggestions(stopList))
	p.outside.Click()

	assert.True(t, stopList.Hidden())
	assert.Equal(t, 1, p.doc.ClickListeners())
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		listID  string
		wantErr error
	}{
		{
			name:    "missing input",
			inputID: "nope",
			listID:  "departure-dropdown-list",
			wantErr: ErrMissingElement,
		},
		{
			name:    "missing list",
			inputID: "departure-city-input",
			listID:  "nope",
			wantErr: ErrMissingElement,
		},
		{
			name:    "input bound twice",
			inputID: "departure-city-input",
			listID:  "outside",
			wantErr: ErrAlreadyBound,
		},
		{
			name:    "list bound twice",
			inputID: "outside",
			listID:  "arrival-dropdown-list",
			wantErr: ErrAlreadyBound,
		},
		{
			name:    "same element",
			inputID: "outside",
			listID:  "outside",
			wantErr: ErrAlreadyBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPage()
			r := p.bindBoth(t)

			_, err := r.BindByID(tt.inputID, tt.listID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 2, r.Bindings())
		})
	}
}

func TestBind_MissingElementNamesID(t *testing.T) {
	p := newPage()
	r := New(p.doc, city.Default)

	_, err := r.BindByID("departure-city-input", "missing-list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-list")
}

func TestBind_NilElement(t *testing.T) {
	p := newPage()
	r := New(p.doc, city.Default)

	_, err := r.Bind(nil, p.departureList)

	assert.ErrorIs(t, err, ErrMissingElement)
	assert.Equal(t, 0, p.doc.ClickListeners())
}

func TestBind_DoubleBindDoesNotDoubleRender(t *testing.T) {
	p := newPage()
	r := p.bindBoth(t)
	_, err := r.Bind(p.departure, p.departureList)
	require.ErrorIs(t, err, ErrAlreadyBound)

	p.departure.Type("dallas")

	assert.Equal(t, []string{"Dallas"}, suggestions(p.departureList))
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

func TestDebounce(t *testing.T) {
	var timers []*fakeTimer
	after := func(d time.Duration, f func()) stopper {
		ft := &fakeTimer{d: d, f: f}
		timers = append(timers, ft)
		return ft
	}

	p := newPage()
	p.bindBoth(t, WithDebounce(200*time.Millisecond), withAfterFunc(after))

	p.departure.Type("a")
	p.departure.Type("au")

	require.Len(t, timers, 2)
	assert.True(t, timers[0].stopped)
	assert.False(t, timers[1].stopped)
	assert.Equal(t, 200*time.Millisecond, timers[1].d)
	// nothing rendered until the timer fires
	assert.Empty(t, p.departureList.Children())

	timers[1].f()

	assert.Equal(t, []string{"Austin"}, suggestions(p.departureList))
	assert.False(t, p.departureList.Hidden())
}
