package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/pieces"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment is the progress event published for every loaded file fragment.
type Fragment struct {
	Pos int64 // start position of the fragment within the file
	Len int64 // fragment length in bytes
}

// Session is a handle on an in-flight file load.
//
// Observers may subscribe to per-fragment progress; Await blocks until the
// load finished (or ctx is done) and returns the assembled table.
type Session struct {
	path  string
	info  os.FileInfo
	file  *os.File
	cast  *caster.Caster // broadcaster for fragment-load progress
	done  chan struct{}
	table *pieces.Table
	err   error // remember last I/O error
}

// Load reads a file, which must be a regular UTF-8 text file, and loads it
// as a piece table. fragSize is a recommended fragment length; it may be 0,
// letting Load use sensible defaults derived from the file size.
//
// Loading of the file is done asynchronously in fragments, but this is
// transparent to the client: Load blocks until the table is complete.
// Opening of the file is always done synchronously.
func Load(name string, fragSize int64) (*pieces.Table, error) {
	s, err := LoadAsync(name, fragSize)
	if err != nil {
		return nil, err
	}
	return s.Await(context.Background())
}

// LoadAsync opens a file and starts loading it in the background.
// Clients call Await on the returned session for the finished table and
// may observe progress via Progress.
func LoadAsync(name string, fragSize int64) (*Session, error) {
	s, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := s.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		switch {
		case size < 64:
			fragSize = size
		case size < 1024:
			fragSize = 64
		case size < tenKb:
			fragSize = 256
		case size < hundredKb:
			fragSize = 512
		case size < oneMb:
			fragSize = twoKb
		default:
			fragSize = sixKb
		}
	}
	tracer().Debugf("textfile: loading %q with fragment size %d", name, fragSize)
	go s.run(fragSize)
	return s, nil
}

// Progress subscribes to the fragment-load broadcast. Every published value
// is a Fragment. The channel is closed when loading finishes; ok is false
// if loading already finished before the subscription.
func (s *Session) Progress() (ch <-chan interface{}, ok bool) {
	return s.cast.Sub(nil, 8)
}

// Await blocks until the load finished or ctx is done, and returns the
// assembled table.
func (s *Session) Await(ctx context.Context) (*pieces.Table, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.done:
		return s.table, s.err
	}
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Session, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &Session{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		done: make(chan struct{}),
	}, nil
}

// run loads all fragments in order and assembles the table.
//
// Fragments are cut at UTF-8 rune boundaries: bytes of a rune that spans a
// fragment boundary are carried over into the next fragment, so every
// staged fragment is valid UTF-8 on its own.
func (s *Session) run(fragSize int64) {
	defer close(s.done)
	defer s.cast.Close()
	defer s.file.Close()
	b := pieces.NewBuilder()
	size := s.info.Size()
	var carry []byte
	for pos := int64(0); pos < size; pos += fragSize {
		n := fragSize
		if size-pos < n {
			n = size - pos
		}
		buf := make([]byte, n)
		cnt, err := s.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			s.err = fmt.Errorf("error loading text fragment: %w", err)
			return
		} else if int64(cnt) < n {
			s.err = fmt.Errorf("not all bytes loaded for text fragment")
			return
		}
		frag := append(carry, buf...)
		cut := completePrefix(frag)
		carry = append([]byte(nil), frag[cut:]...)
		if err := b.AppendString(string(frag[:cut])); err != nil {
			s.err = err
			return
		}
		s.cast.Pub(Fragment{Pos: pos, Len: n})
	}
	if len(carry) > 0 {
		// A trailing incomplete rune means the file is not valid UTF-8.
		s.err = fmt.Errorf("file ends inside a UTF-8 rune sequence")
		return
	}
	s.table = b.Table()
	tracer().Infof("textfile: loaded %q (%d bytes)", s.path, s.table.Len())
}

// completePrefix returns the length of the longest prefix of b that ends on
// a UTF-8 rune boundary.
func completePrefix(b []byte) int {
	end := len(b)
	for i := 1; i <= utf8.UTFMax && i <= end; i++ {
		if utf8.RuneStart(b[end-i]) {
			if utf8.FullRune(b[end-i:]) {
				return end
			}
			return end - i
		}
	}
	return end
}
