package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/pieces"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestFormatBreaksLines(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	//
	grapheme.SetupGraphemeClasses()
	table := pieces.FromText("The quick brown fox jumps over the lazy dog!")
	config := &Config{
		LineWidth: 30,
		Context:   uax11.LatinContext,
	}
	var out bytes.Buffer
	if err := Format(table, &out, config); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Errorf("expected the text broken into multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) > 30 {
			t.Errorf("line %d exceeds target width: %q", i, line)
		}
	}
	if strings.Join(lines, "") != table.String() {
		t.Errorf("lines do not concatenate back to the projection:\n%q", lines)
	}
}

func TestFormatEditedTable(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	table := pieces.FromText("Hello World")
	if err := table.Insert(", dear", 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	config := &Config{
		LineWidth: 65,
		Context:   uax11.LatinContext,
	}
	var out bytes.Buffer
	if err := Format(table, &out, config); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if out.String() != "Hello, dear World\n" {
		t.Errorf("formatted output = %q, want %q", out.String(), "Hello, dear World\n")
	}
}

func TestFormatNilConfig(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	table := pieces.FromText("short")
	var out bytes.Buffer
	if err := Format(table, &out, nil); err != nil {
		t.Fatalf("Format with nil config failed: %v", err)
	}
	if !strings.Contains(out.String(), "short") {
		t.Errorf("formatted output lost the text: %q", out.String())
	}
}

func TestConsoleTableFprint(t *testing.T) {
	nocolor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = nocolor }()
	//
	table := pieces.FromText("Hello World")
	if err := table.Insert(", dear", 5); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	var out bytes.Buffer
	ct := NewConsoleTable(nil)
	if err := ct.Fprint(&out, table); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if out.String() != table.String() {
		t.Errorf("console output = %q, want %q", out.String(), table.String())
	}
}
