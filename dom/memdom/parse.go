package memdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a document from an HTML page. The contents of the page's
// body element become the children of Body. Text is kept per element and
// whitespace-only text is dropped.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	body := findBody(root)
	if body == nil {
		return nil, fmt.Errorf("parsing html: no body element")
	}
	d := New()
	for _, a := range body.Attr {
		d.body.SetAttribute(a.Key, a.Val)
	}
	d.build(d.body, body)
	return d, nil
}

func (d *Document) build(parent *Element, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				parent.text += c.Data
			}
		case html.ElementNode:
			if c.DataAtom == atom.Script {
				continue
			}
			e := d.newElement(c.Data)
			for _, a := range c.Attr {
				e.SetAttribute(a.Key, a.Val)
			}
			parent.AppendChild(e)
			d.build(e, c)
		}
	}
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
