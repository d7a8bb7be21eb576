// Package people builds the age-range selectors of the "people traveling"
// part of the trip form.
package people

import (
	"errors"
	"fmt"

	"github.com/trip-planner/site/dom"
)

var (
	ErrMissingElement = dom.ErrMissingElement
	ErrNoAddControl   = errors.New("container has no add control")
	ErrNoOptions      = errors.New("no options")
	ErrInvalidOption  = errors.New("invalid option")
)

// FieldName is the form field name of every age-range selector.
const FieldName = "age_range"

// Option is one choice of a selector.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AgeRanges is the canonical age-range table.
var AgeRanges = []Option{
	{Value: "0-5 years", Label: "0 - 5 years"},
	{Value: "6-12 years", Label: "6 - 12 years"},
	{Value: "13-17 years", Label: "13 - 17 years"},
	{Value: "18-20 years", Label: "18 - 20 years"},
	{Value: "21-35 years", Label: "21 - 35 years"},
	{Value: "36-59 years", Label: "36 - 59 years"},
	{Value: "60+ years", Label: "60+ years"},
}

// IsValidValue reports whether v is the value of one of the AgeRanges.
func IsValidValue(v string) bool {
	for _, o := range AgeRanges {
		if o.Value == v {
			return true
		}
	}
	return false
}

func validate(options []Option) error {
	if len(options) == 0 {
		return ErrNoOptions
	}
	for i, o := range options {
		if o.Value == "" || o.Label == "" {
			return fmt.Errorf("%w: option %d has an empty value or label", ErrInvalidOption, i)
		}
	}
	return nil
}

// NewSelector creates a detached select element holding options in order.
func NewSelector(doc dom.Document, options []Option) (dom.Element, error) {
	if err := validate(options); err != nil {
		return nil, err
	}
	sel := doc.CreateElement("select")
	sel.SetAttribute("name", FieldName)
	for _, o := range options {
		opt := doc.CreateElement("option")
		opt.SetAttribute("value", o.Value)
		opt.SetText(o.Label)
		sel.AppendChild(opt)
	}
	return sel, nil
}

// AppendSelector inserts a new selector into the container with the given
// id, directly before its last child. The last child is the container's add
// control and stays last; a container without one is rejected.
func AppendSelector(doc dom.Document, containerID string, options []Option) error {
	container := doc.GetElementByID(containerID)
	if container == nil {
		return fmt.Errorf("%w: %s", ErrMissingElement, containerID)
	}
	last := container.LastElementChild()
	if last == nil {
		return fmt.Errorf("%w: %s", ErrNoAddControl, containerID)
	}
	sel, err := NewSelector(doc, options)
	if err != nil {
		return err
	}
	container.InsertBefore(sel, last)
	return nil
}
