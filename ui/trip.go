package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/trip-planner/site/people"
	"github.com/trip-planner/site/widgets"
)

// ---- Trip Input Page ----

func TripPage() g.Node {
	return Page(
		"Plan a Trip",
		[]g.Node{
			pageHeader("Plan a Trip"),
			Form(
				ID("tripForm"),
				Class("space-y-6"),
				hx.Post("/api/trip"),
				hx.Encoding("multipart/form-data"),
				hx.Target("#result"),
				FormGroup("Departure city", widgets.DepartureInputID,
					CityInput(widgets.DepartureInputID, "departure", widgets.DepartureListID, "Where from?"),
				),
				FormGroup("Arrival city", widgets.ArrivalInputID,
					CityInput(widgets.ArrivalInputID, "arrival", widgets.ArrivalListID, "Where to?"),
				),
				FormGroup("People traveling", widgets.PeopleContainerID, peopleTraveling()),
				actionButtons(
					button("Plan trip", withType("submit"), withClass("font-semibold")),
				),
			),
			resultContainer(),
		},
	)
}

// peopleTraveling holds one selector per traveler. The add button must
// stay the last child; new selectors are inserted before it.
func peopleTraveling() g.Node {
	return Div(
		ID(widgets.PeopleContainerID),
		Class("flex flex-wrap gap-2 items-center"),
		AgeRangeSelect(people.AgeRanges),
		buttonSecondary("Add person",
			withID(widgets.AddPersonID),
			withType("button"),
			withAttributes(g.Attr("onclick", "addPerson()")),
		),
	)
}

// TripSummary confirms an accepted trip.
func TripSummary(departure, arrival string, ageRanges []string) g.Node {
	noun := "traveler"
	if len(ageRanges) != 1 {
		noun = "travelers"
	}
	return SuccessMessage(fmt.Sprintf("Trip from %s to %s for %d %s (%s)",
		departure, arrival, len(ageRanges), noun, strings.Join(ageRanges, ", ")))
}
