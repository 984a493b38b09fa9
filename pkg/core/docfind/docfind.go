// Package docfind locates labeled values inside loosely-structured disclosure
// documents. DART viewer HTML carries no stable ids or classes, so lookups are
// driven by ordered lists of label patterns: the first pattern that matches
// anywhere wins, and within a pattern the first text node in document order
// wins. Precision is deliberately traded for robustness across layouts;
// callers must tolerate the occasional false positive from running prose.
package docfind

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FirstText returns the text of the first text node matching the first
// pattern in list order that matches anywhere in the document. Later patterns
// are only consulted when earlier ones match nothing at all.
func FirstText(doc *goquery.Document, patterns []*regexp.Regexp) string {
	for _, pattern := range patterns {
		if node := findTextNode(doc, pattern); node != nil {
			return node.Data
		}
	}
	return ""
}

// RowValue performs a tabular label lookup: for each pattern in order, find
// the first matching text node, climb to its enclosing <tr>, and take the
// second cell of that row as the associated value. A match whose row is
// missing or has fewer than two cells fails silently and the next pattern is
// tried. Returns "" when every pattern fails.
func RowValue(doc *goquery.Document, patterns []*regexp.Regexp) string {
	for _, pattern := range patterns {
		node := findTextNode(doc, pattern)
		if node == nil {
			continue
		}

		row := closestElement(node, "tr")
		if row == nil {
			continue
		}

		cells := wrap(doc, row).Find("td, th")
		if cells.Length() < 2 {
			continue
		}
		return strings.TrimSpace(cells.Eq(1).Text())
	}
	return ""
}

// LabelRow returns the goquery selection of the row enclosing the first text
// node matched by the pattern list, or nil. Used when the caller needs the
// whole row rather than the index-1 value cell.
func LabelRow(doc *goquery.Document, patterns []*regexp.Regexp) *goquery.Selection {
	for _, pattern := range patterns {
		node := findTextNode(doc, pattern)
		if node == nil {
			continue
		}
		if row := closestElement(node, "tr"); row != nil {
			return wrap(doc, row)
		}
	}
	return nil
}

// TableAfter finds the table associated with a section label: the label's own
// enclosing <table>, or the nearest <table> that follows the label in document
// order. Returns nil when no pattern matches or no table exists.
func TableAfter(doc *goquery.Document, patterns []*regexp.Regexp) *goquery.Selection {
	for _, pattern := range patterns {
		node := findTextNode(doc, pattern)
		if node == nil {
			continue
		}

		if table := closestElement(node, "table"); table != nil {
			return wrap(doc, table)
		}

		start := node
		if node.Parent != nil {
			start = node.Parent
		}
		if table := nextElement(start, "table"); table != nil {
			return wrap(doc, table)
		}
	}
	return nil
}

// wrap lifts a raw node back into a goquery selection bound to the document,
// so callers can use selector queries on it.
func wrap(doc *goquery.Document, n *html.Node) *goquery.Selection {
	return doc.FindNodes(n)
}

// findTextNode walks the DOM in document order and returns the first text
// node whose content matches the pattern.
func findTextNode(doc *goquery.Document, pattern *regexp.Regexp) *html.Node {
	if len(doc.Selection.Nodes) == 0 {
		return nil
	}

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.TextNode && pattern.MatchString(n.Data) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Selection.Nodes[0])
	return found
}

// closestElement climbs from a node to its nearest ancestor with the given
// element name.
func closestElement(n *html.Node, name string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == name {
			return p
		}
	}
	return nil
}

// nextElement returns the first element with the given name that follows
// start in pre-order document traversal, descending into start's own subtree
// first and then moving through later siblings and ancestors' siblings.
func nextElement(start *html.Node, name string) *html.Node {
	for n := successor(start); n != nil; n = successor(n) {
		if n.Type == html.ElementNode && n.Data == name {
			return n
		}
	}
	return nil
}

// successor yields the next node after n in pre-order document traversal.
func successor(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for p := n; p != nil; p = p.Parent {
		if p.NextSibling != nil {
			return p.NextSibling
		}
	}
	return nil
}
