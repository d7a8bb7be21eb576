package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/trip-planner/site/people"
)

// ---- Form Components ----

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block"), g.Text(labelText)),
		input,
	)
}

// CityInput is a text input with the suggestion list the autocomplete
// widget fills in. The list starts empty and hidden.
func CityInput(inputID, name, listID, placeholder string) g.Node {
	return Div(
		Class("relative"),
		Input(
			Type("text"),
			ID(inputID),
			Name(name),
			Class("w-full p-2 border rounded"),
			Placeholder(placeholder),
			AutoComplete("off"),
			Required(),
		),
		Div(
			ID(listID),
			Class("dropdown-list hidden absolute z-10 w-full bg-white border rounded shadow"),
		),
	)
}

// AgeRangeSelect renders a selector with the same options the add person
// widget creates.
func AgeRangeSelect(options []people.Option) g.Node {
	nodes := []g.Node{}
	for _, o := range options {
		nodes = append(nodes, Option(Value(o.Value), g.Text(o.Label)))
	}
	return Select(
		Name(people.FieldName),
		Class("p-2 border rounded"),
		g.Group(nodes),
	)
}
