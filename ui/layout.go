package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/trip-planner/site/config"
	"github.com/trip-planner/site/widgets"
)

// ---- Page Layout ----

func Page(title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			Script(
				Type("text/javascript"),
				Src(config.WasmExecPath),
			),
		},
		Body: []g.Node{
			g.Attr(widgets.DebounceAttribute, fmt.Sprintf("%d", config.AutocompleteDebounce.Milliseconds())),
			Div(
				Class("container mx-auto px-4 py-8"),
				g.Group(content),
			),
			widgetsLoader(),
		},
	})
}

// widgetsLoader starts the WebAssembly bundle that wires the form widgets.
func widgetsLoader() g.Node {
	return Script(g.Raw(fmt.Sprintf(
		`const go = new Go();
WebAssembly.instantiateStreaming(fetch(%q), go.importObject).then((result) => go.run(result.instance));`,
		config.WidgetsPath,
	)))
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
