// Package html extracts the textual content of HTML fragments into piece
// tables.
package html

import (
	"io"

	"github.com/npillmayer/pieces"
	"golang.org/x/net/html"
)

// InnerText creates a piece table for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (*pieces.Table, error) {
	if n == nil {
		return nil, pieces.ErrIllegalArguments
	}
	b := pieces.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Table(), nil
}

// TextFromHTML creates a piece table from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (*pieces.Table, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := pieces.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return nil, err
		}
	}
	return b.Table(), nil
}

func collectText(n *html.Node, b *pieces.Builder) error {
	if n.Type == html.TextNode {
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}
