package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

// ValidationErrors renders one line per message.
func ValidationErrors(messages []string) g.Node {
	items := []g.Node{}
	for _, m := range messages {
		items = append(items, Li(g.Text(m)))
	}
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		Ul(Class("list-disc list-inside"), g.Group(items)),
	)
}

func SuccessMessage(message string) g.Node {
	return Div(
		Class("bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
		},
	)
}
