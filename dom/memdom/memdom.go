// Package memdom is an in-memory implementation of dom.Document. It can
// dispatch input and click events, which lets the widgets run without a
// browser.
package memdom

import (
	"slices"
	"strings"

	"github.com/trip-planner/site/dom"
)

// Document is an in-memory document. Elements are reachable through
// GetElementByID only once they are attached below Body.
type Document struct {
	body   *Element
	clicks []func(dom.Element)
}

// New returns an empty document with a body element.
func New() *Document {
	d := &Document{}
	d.body = d.newElement("body")
	return d
}

// Body returns the root element of the document.
func (d *Document) Body() *Element {
	return d.body
}

func (d *Document) newElement(tag string) *Element {
	return &Element{
		doc:   d,
		tag:   strings.ToLower(tag),
		attrs: map[string]string{},
	}
}

func (d *Document) GetElementByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	if e := d.body.find(id); e != nil {
		return e
	}
	return nil
}

// Element is like GetElementByID but returns the concrete type.
func (d *Document) Element(id string) *Element {
	if id == "" {
		return nil
	}
	return d.body.find(id)
}

func (d *Document) CreateElement(tag string) dom.Element {
	return d.newElement(tag)
}

func (d *Document) OnClick(fn func(target dom.Element)) {
	d.clicks = append(d.clicks, fn)
}

// Add creates a tag element with the given id and appends it to parent.
func (d *Document) Add(parent *Element, tag, id string) *Element {
	e := d.newElement(tag)
	if id != "" {
		e.SetAttribute("id", id)
	}
	parent.AppendChild(e)
	return e
}

// ClickListeners returns the number of document-level click listeners.
func (d *Document) ClickListeners() int {
	return len(d.clicks)
}

// Element is an in-memory element.
type Element struct {
	doc      *Document
	tag      string
	attrs    map[string]string
	classes  []string
	value    string
	text     string
	parent   *Element
	children []*Element

	inputs []func()
	clicks []func(dom.Element)
}

func (e *Element) Tag() string { return e.tag }

func (e *Element) ID() string { return e.attrs["id"] }

func (e *Element) Value() string { return e.value }

func (e *Element) SetValue(value string) { e.value = value }

// Text returns the element's own text followed by the text of its children,
// like textContent.
func (e *Element) Text() string {
	var b strings.Builder
	b.WriteString(e.text)
	for _, c := range e.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// SetText replaces the element's children with the given text.
func (e *Element) SetText(text string) {
	e.Clear()
	e.text = text
}

// Attribute returns the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *Element) SetAttribute(name, value string) {
	switch name {
	case "class":
		e.classes = strings.Fields(value)
	case "value":
		e.value = value
	}
	e.attrs[name] = value
}

func (e *Element) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *Element) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool { return c == name })
}

func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

func (e *Element) SetHidden(hidden bool) {
	if hidden {
		e.AddClass(dom.HiddenClass)
	} else {
		e.RemoveClass(dom.HiddenClass)
	}
}

func (e *Element) Hidden() bool {
	return e.HasClass(dom.HiddenClass)
}

// Parent returns nil for detached elements and for the body.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the element's children.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

func (e *Element) AppendChild(child dom.Element) {
	c := child.(*Element)
	c.detach()
	c.parent = e
	e.children = append(e.children, c)
}

func (e *Element) InsertBefore(child, ref dom.Element) {
	c := child.(*Element)
	r, _ := ref.(*Element)
	if r == nil || r.parent != e {
		e.AppendChild(c)
		return
	}
	c.detach()
	i := slices.Index(e.children, r)
	c.parent = e
	e.children = slices.Insert(e.children, i, c)
}

func (e *Element) LastElementChild() dom.Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.text = ""
}

func (e *Element) Contains(other dom.Element) bool {
	o, _ := other.(*Element)
	for ; o != nil; o = o.parent {
		if o == e {
			return true
		}
	}
	return false
}

func (e *Element) IsSameNode(other dom.Element) bool {
	o, _ := other.(*Element)
	return o == e
}

func (e *Element) OnInput(fn func()) {
	e.inputs = append(e.inputs, fn)
}

func (e *Element) OnClick(fn func(target dom.Element)) {
	e.clicks = append(e.clicks, fn)
}

// Type sets the element's value and fires its input listeners, as a
// keystroke would.
func (e *Element) Type(value string) {
	e.value = value
	for _, fn := range e.inputs {
		fn()
	}
}

// Click dispatches a click with e as the target. The propagation path is
// fixed before any listener runs, so listeners that detach elements do not
// change which listeners are called.
func (e *Element) Click() {
	var path []*Element
	for p := e; p != nil; p = p.parent {
		path = append(path, p)
	}
	for _, p := range path {
		for _, fn := range p.clicks {
			fn(e)
		}
	}
	// Only clicks on attached elements reach the document.
	if path[len(path)-1] == e.doc.body {
		for _, fn := range e.doc.clicks {
			fn(e)
		}
	}
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

func (e *Element) find(id string) *Element {
	if e.ID() == id {
		return e
	}
	for _, c := range e.children {
		if f := c.find(id); f != nil {
			return f
		}
	}
	return nil
}
