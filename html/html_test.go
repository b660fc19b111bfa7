package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/pieces"
	"golang.org/x/net/html"
)

func TestTextFromHTML(t *testing.T) {
	input := strings.NewReader("<p>Hello <b>World</b></p>")
	table, err := TextFromHTML(input)
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if table.String() != "Hello World" {
		t.Errorf("extracted text = %q, want %q", table.String(), "Hello World")
	}
}

func TestTextFromHTMLNested(t *testing.T) {
	input := strings.NewReader("<div>one<span>two<i>three</i></span>four</div>")
	table, err := TextFromHTML(input)
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if table.String() != "onetwothreefour" {
		t.Errorf("extracted text = %q, want %q", table.String(), "onetwothreefour")
	}
}

func TestInnerText(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<html><body><p>Hello <b>World</b></p></body></html>"))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	table, err := InnerText(doc)
	if err != nil {
		t.Fatalf("InnerText failed: %v", err)
	}
	if table.String() != "Hello World" {
		t.Errorf("inner text = %q, want %q", table.String(), "Hello World")
	}
}

func TestInnerTextNilNode(t *testing.T) {
	if _, err := InnerText(nil); !errors.Is(err, pieces.ErrIllegalArguments) {
		t.Fatalf("InnerText(nil) = %v, want ErrIllegalArguments", err)
	}
}

func TestExtractedTableIsEditable(t *testing.T) {
	table, err := TextFromHTML(strings.NewReader("<p>Hello World</p>"))
	if err != nil {
		t.Fatalf("TextFromHTML failed: %v", err)
	}
	if err := table.Insert(", dear", 5); err != nil {
		t.Fatalf("Insert on extracted table failed: %v", err)
	}
	if table.String() != "Hello, dear World" {
		t.Errorf("edited extraction = %q, want %q", table.String(), "Hello, dear World")
	}
}
