//go:build js && wasm

// Package jsdom implements dom.Document on top of the browser's document
// object.
package jsdom

import (
	"syscall/js"

	"github.com/trip-planner/site/dom"
)

type Document struct {
	v js.Value
}

// New wraps the global document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) GetElementByID(id string) dom.Element {
	return wrap(d.v.Call("getElementById", id))
}

func (d *Document) CreateElement(tag string) dom.Element {
	return wrap(d.v.Call("createElement", tag))
}

func (d *Document) OnClick(fn func(target dom.Element)) {
	listen(d.v, "click", func(ev js.Value) {
		fn(wrap(ev.Get("target")))
	})
}

// Attribute returns the named attribute of the body element, or "" when it
// is not set.
func (d *Document) Attribute(name string) string {
	v := d.v.Get("body").Call("getAttribute", name)
	if v.IsNull() {
		return ""
	}
	return v.String()
}

type element struct {
	v js.Value
}

// wrap returns nil for null and undefined so callers can compare the result
// of a lookup against nil.
func wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{v: v}
}

func unwrap(e dom.Element) (js.Value, bool) {
	el, ok := e.(*element)
	if !ok || el == nil {
		return js.Null(), false
	}
	return el.v, true
}

func (e *element) ID() string { return e.v.Get("id").String() }

func (e *element) Value() string { return e.v.Get("value").String() }

func (e *element) SetValue(value string) { e.v.Set("value", value) }

func (e *element) Text() string { return e.v.Get("textContent").String() }

func (e *element) SetText(text string) { e.v.Set("textContent", text) }

func (e *element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *element) AddClass(name string) {
	e.v.Get("classList").Call("add", name)
}

func (e *element) SetHidden(hidden bool) {
	e.v.Get("classList").Call("toggle", dom.HiddenClass, hidden)
}

func (e *element) Hidden() bool {
	return e.v.Get("classList").Call("contains", dom.HiddenClass).Bool()
}

func (e *element) AppendChild(child dom.Element) {
	if c, ok := unwrap(child); ok {
		e.v.Call("appendChild", c)
	}
}

func (e *element) InsertBefore(child, ref dom.Element) {
	c, ok := unwrap(child)
	if !ok {
		return
	}
	r, _ := unwrap(ref)
	e.v.Call("insertBefore", c, r)
}

func (e *element) LastElementChild() dom.Element {
	return wrap(e.v.Get("lastElementChild"))
}

func (e *element) Clear() {
	e.v.Set("innerHTML", "")
}

func (e *element) Contains(other dom.Element) bool {
	o, ok := unwrap(other)
	if !ok {
		return false
	}
	return e.v.Call("contains", o).Bool()
}

func (e *element) IsSameNode(other dom.Element) bool {
	o, ok := unwrap(other)
	if !ok {
		return false
	}
	return e.v.Call("isSameNode", o).Bool()
}

func (e *element) OnInput(fn func()) {
	listen(e.v, "input", func(js.Value) { fn() })
}

func (e *element) OnClick(fn func(target dom.Element)) {
	listen(e.v, "click", func(ev js.Value) {
		fn(wrap(ev.Get("target")))
	})
}

// listen registers fn for the named event. The js.Func is never released;
// listeners live as long as the page.
func listen(target js.Value, event string, fn func(ev js.Value)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
}
