// Package fill updates addressed input fields and marked insertion points
// inside an HTML template document. Missing ids and markers are skipped:
// a partially filled document is still useful to a human, so the template
// contract degrades instead of failing generation.
package fill

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type Document struct {
	doc *goquery.Document
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// SetInputValue sets or overwrites the value attribute of the input element
// with the given id. Re-running on an already filled document replaces the
// attribute, it never duplicates it. Reports whether the input was found.
// The renderer escapes the value on output, so user-supplied text cannot
// alter the surrounding markup.
func (d *Document) SetInputValue(id, value string) bool {
	sel := d.doc.Find(fmt.Sprintf(`input[id=%q]`, id))
	if sel.Length() == 0 {
		return false
	}
	sel.First().SetAttr("value", value)
	return true
}

// ReplaceComment swaps the first HTML comment containing marker for the
// given fragment, parsed in the comment's parent context. Reports whether
// the marker was found.
func (d *Document) ReplaceComment(marker, fragment string) bool {
	target := findComment(d.doc.Get(0), marker)
	if target == nil || target.Parent == nil {
		return false
	}
	ctx := target.Parent
	if ctx.Type != html.ElementNode {
		ctx = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return false
	}
	for _, n := range nodes {
		target.Parent.InsertBefore(n, target)
	}
	target.Parent.RemoveChild(target)
	return true
}

// ReplaceText rewrites the first text node containing old, replacing one
// occurrence. Used for the date label override.
func (d *Document) ReplaceText(old, replacement string) bool {
	target := findText(d.doc.Get(0), old)
	if target == nil {
		return false
	}
	target.Data = strings.Replace(target.Data, old, replacement, 1)
	return true
}

func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

// Selection exposes the document root for read-side queries.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

func findComment(n *html.Node, marker string) *html.Node {
	if n.Type == html.CommentNode && strings.Contains(n.Data, marker) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findComment(c, marker); found != nil {
			return found
		}
	}
	return nil
}

func findText(n *html.Node, needle string) *html.Node {
	if n.Type == html.TextNode && strings.Contains(n.Data, needle) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findText(c, needle); found != nil {
			return found
		}
	}
	return nil
}
