package textfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/testconfig"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	return path
}

func TestLoadRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	content := strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 20)
	path := writeTestFile(t, "fox.txt", content)
	table, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.String() != content {
		t.Errorf("loaded table differs from file content (%d vs %d bytes)",
			table.Len(), len(content))
	}
}

func TestLoadCutsFragmentsAtRuneBoundaries(t *testing.T) {
	// fragment size 5 lands inside the 4-byte emoji repeatedly
	content := strings.Repeat("ab😀cd", 30)
	path := writeTestFile(t, "emoji.txt", content)
	table, err := Load(path, 5)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.String() != content {
		t.Errorf("multibyte content mangled by fragment boundaries")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTestFile(t, "empty.txt", "")
	table, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !table.IsEmpty() {
		t.Errorf("empty file produced non-empty table")
	}
}

func TestLoadRejectsTruncatedUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	if err := os.WriteFile(path, []byte{'a', 'b', 0xf0, 0x9f}, 0644); err != nil {
		t.Fatalf("cannot write test file: %v", err)
	}
	if _, err := Load(path, 0); err == nil {
		t.Fatalf("Load accepted a file ending inside a rune sequence")
	}
}

func TestLoadRejectsMissingAndIrregularFiles(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-file"), 0); err == nil {
		t.Errorf("Load accepted a missing file")
	}
	if _, err := Load(t.TempDir(), 0); err == nil {
		t.Errorf("Load accepted a directory")
	}
}

func TestLoadAsyncProgress(t *testing.T) {
	content := strings.Repeat("0123456789", 200)
	path := writeTestFile(t, "progress.txt", content)
	session, err := LoadAsync(path, 64)
	if err != nil {
		t.Fatalf("LoadAsync failed: %v", err)
	}
	var fragments int
	var loaded int64
	if ch, ok := session.Progress(); ok {
		for msg := range ch {
			frag := msg.(Fragment)
			fragments++
			loaded += frag.Len
		}
	} // ok == false means loading already finished; nothing to observe
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	table, err := session.Await(ctx)
	if err != nil {
		t.Fatalf("Await failed: %v", err)
	}
	if table.String() != content {
		t.Errorf("async load produced wrong content")
	}
	if fragments > 0 && loaded > int64(len(content)) {
		t.Errorf("progress reported %d bytes for a %d byte file", loaded, len(content))
	}
}

func TestAwaitHonorsContext(t *testing.T) {
	content := strings.Repeat("x", 4096)
	path := writeTestFile(t, "ctx.txt", content)
	session, err := LoadAsync(path, 256)
	if err != nil {
		t.Fatalf("LoadAsync failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := session.Await(ctx); err != context.Canceled {
		t.Errorf("Await with canceled context = %v, want context.Canceled", err)
	}
	// the load itself still finishes; a fresh Await returns the table
	table, err := session.Await(context.Background())
	if err != nil {
		t.Fatalf("second Await failed: %v", err)
	}
	if table.Len() != uint64(len(content)) {
		t.Errorf("loaded %d bytes, want %d", table.Len(), len(content))
	}
}
