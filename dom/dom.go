// Package dom is the narrow view of the host document that the widgets are
// written against. The browser implementation lives in dom/jsdom and an
// in-memory one, used by tests and for parsing rendered pages, in dom/memdom.
package dom

import "errors"

// ErrMissingElement is returned when an element the widgets need is not in
// the document.
var ErrMissingElement = errors.New("missing element")

// HiddenClass is the class toggled by Element.SetHidden.
const HiddenClass = "hidden"

// Element is a single element in the host document.
type Element interface {
	ID() string

	Value() string
	SetValue(value string)
	Text() string
	SetText(text string)
	SetAttribute(name, value string)
	AddClass(name string)

	// SetHidden toggles HiddenClass on the element.
	SetHidden(hidden bool)
	Hidden() bool

	AppendChild(child Element)
	// InsertBefore inserts child directly before ref, which must be a child
	// of the receiver.
	InsertBefore(child, ref Element)
	// LastElementChild returns nil when the element has no element children.
	LastElementChild() Element
	// Clear removes every child.
	Clear()

	// Contains reports whether other is the element itself or one of its
	// descendants. A nil other is never contained.
	Contains(other Element) bool
	IsSameNode(other Element) bool

	OnInput(fn func())
	OnClick(fn func(target Element))
}

// Document is the host document.
type Document interface {
	// GetElementByID returns nil when no element has the given id.
	GetElementByID(id string) Element
	CreateElement(tag string) Element
	// OnClick registers a document-level click listener. Listeners run after
	// any element listeners on the bubbling path.
	OnClick(fn func(target Element))
}
