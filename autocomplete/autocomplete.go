// Package autocomplete wires text inputs to suggestion lists filtered from a
// city list.
package autocomplete

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/dom"
)

var (
	ErrMissingElement = dom.ErrMissingElement
	ErrAlreadyBound   = errors.New("element already bound")
)

// ItemClass is set on every suggestion item.
const ItemClass = "dropdown-item"

type stopper interface {
	Stop() bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithDebounce delays filtering until d has passed without further input.
// Zero filters on every keystroke.
func WithDebounce(d time.Duration) Option {
	return func(r *Registry) {
		r.debounce = d
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func withAfterFunc(fn func(time.Duration, func()) stopper) Option {
	return func(r *Registry) {
		r.afterFunc = fn
	}
}

// Registry holds every binding on a document and owns the single
// document-level listener that dismisses their suggestion lists.
type Registry struct {
	doc      dom.Document
	cities   *city.List
	bindings []*Binding
	listened bool

	debounce  time.Duration
	afterFunc func(time.Duration, func()) stopper
	logger    zerolog.Logger
}

// New returns an empty registry for doc.
func New(doc dom.Document, cities *city.List, opts ...Option) *Registry {
	r := &Registry{
		doc:    doc,
		cities: cities,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Binding pairs an input with its suggestion list.
type Binding struct {
	r       *Registry
	input   dom.Element
	list    dom.Element
	pending stopper
}

// BindByID looks up both elements by id and binds them.
func (r *Registry) BindByID(inputID, listID string) (*Binding, error) {
	input := r.doc.GetElementByID(inputID)
	if input == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, inputID)
	}
	list := r.doc.GetElementByID(listID)
	if list == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingElement, listID)
	}
	return r.Bind(input, list)
}

// Bind starts offering suggestions in list for whatever is typed into
// input. Neither element may already be part of a binding.
func (r *Registry) Bind(input, list dom.Element) (*Binding, error) {
	if input == nil || list == nil {
		return nil, ErrMissingElement
	}
	if input.IsSameNode(list) {
		return nil, fmt.Errorf("%w: input and list are the same element", ErrAlreadyBound)
	}
	for _, b := range r.bindings {
		for _, e := range []dom.Element{input, list} {
			if e.IsSameNode(b.input) || e.IsSameNode(b.list) {
				return nil, fmt.Errorf("%w: %s", ErrAlreadyBound, e.ID())
			}
		}
	}

	b := &Binding{r: r, input: input, list: list}
	input.OnInput(b.changed)
	r.bindings = append(r.bindings, b)

	if !r.listened {
		r.doc.OnClick(r.dismiss)
		r.listened = true
	}
	r.logger.Debug().Str("input", input.ID()).Str("list", list.ID()).Msg("bound autocomplete")
	return b, nil
}

// Bindings returns the number of bindings.
func (r *Registry) Bindings() int {
	return len(r.bindings)
}

// dismiss hides every list whose input and list do not contain target.
func (r *Registry) dismiss(target dom.Element) {
	for _, b := range r.bindings {
		if b.input.Contains(target) || b.list.Contains(target) {
			continue
		}
		b.list.SetHidden(true)
	}
}

func (b *Binding) changed() {
	if b.r.debounce <= 0 {
		b.Refresh()
		return
	}
	if b.pending != nil {
		b.pending.Stop()
	}
	b.pending = b.r.afterFunc(b.r.debounce, func() {
		b.pending = nil
		b.Refresh()
	})
}

// Refresh rebuilds the suggestion list from the input's current value.
func (b *Binding) Refresh() {
	matches := b.r.cities.Filter(b.input.Value())
	b.list.Clear()
	for _, name := range matches {
		item := b.r.doc.CreateElement("div")
		item.SetText(name)
		item.AddClass(ItemClass)
		item.OnClick(func(dom.Element) {
			b.Select(name)
		})
		b.list.AppendChild(item)
	}
	b.list.SetHidden(len(matches) == 0)
}

// Select commits name to the input and closes the suggestion list.
func (b *Binding) Select(name string) {
	b.input.SetValue(name)
	b.list.Clear()
	b.list.SetHidden(true)
	b.r.logger.Debug().Str("input", b.input.ID()).Str("city", name).Msg("selected city")
}
