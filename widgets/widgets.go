// Package widgets installs the trip form widgets on a document.
package widgets

import (
	"errors"

	"github.com/trip-planner/site/autocomplete"
	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/dom"
	"github.com/trip-planner/site/people"
)

// Element ids the page must provide.
const (
	PeopleContainerID = "people-traveling"
	AddPersonID       = "add-person-button"

	DepartureInputID = "departure-city-input"
	DepartureListID  = "departure-dropdown-list"
	ArrivalInputID   = "arrival-city-input"
	ArrivalListID    = "arrival-dropdown-list"
)

// DebounceAttribute is the body attribute carrying the autocomplete
// debounce in milliseconds.
const DebounceAttribute = "data-debounce"

// Pair is an autocomplete input and its suggestion list.
type Pair struct {
	InputID string
	ListID  string
}

// Pairs are the autocomplete pairs of the trip form.
var Pairs = []Pair{
	{InputID: DepartureInputID, ListID: DepartureListID},
	{InputID: ArrivalInputID, ListID: ArrivalListID},
}

// Install binds every pair in Pairs. Pairs that fail to bind are reported
// together; the others stay bound.
func Install(doc dom.Document, cities *city.List, opts ...autocomplete.Option) (*autocomplete.Registry, error) {
	r := autocomplete.New(doc, cities, opts...)
	var errs []error
	for _, p := range Pairs {
		if _, err := r.BindByID(p.InputID, p.ListID); err != nil {
			errs = append(errs, err)
		}
	}
	return r, errors.Join(errs...)
}

// AddPerson appends an age-range selector to the people container.
func AddPerson(doc dom.Document) error {
	return people.AppendSelector(doc, PeopleContainerID, people.AgeRanges)
}
