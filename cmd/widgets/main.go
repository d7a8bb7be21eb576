//go:build js && wasm

// Command widgets is the WebAssembly bundle that runs the trip form widgets
// in the browser. Build it with:
//
//	GOOS=js GOARCH=wasm go build -o static/widgets.wasm ./cmd/widgets
package main

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/trip-planner/site/autocomplete"
	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/dom/jsdom"
	"github.com/trip-planner/site/logger"
	"github.com/trip-planner/site/widgets"
)

func main() {
	logger.Init("info", "console")
	log := logger.Log

	doc := jsdom.New()

	var debounce time.Duration
	if ms, err := strconv.Atoi(doc.Attribute(widgets.DebounceAttribute)); err == nil && ms > 0 {
		debounce = time.Duration(ms) * time.Millisecond
	}

	_, err := widgets.Install(doc, city.Default,
		autocomplete.WithDebounce(debounce),
		autocomplete.WithLogger(log),
	)
	if err != nil {
		// Install keeps the pairs that did bind, so carry on without the
		// broken ones.
		log.Error().Err(err).Msg("installing autocomplete")
	}

	js.Global().Set("addPerson", js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := widgets.AddPerson(doc); err != nil {
			log.Error().Err(err).Msg("adding person")
			return err.Error()
		}
		return nil
	}))

	log.Info().Msg("trip widgets ready")
	select {}
}
