package hwconfig

import (
	"bytes"
	"encoding/json"
	"io"
	"io/fs"
	"unicode/utf8"

	"github.com/thoreinstein/mcucheck/internal/errors"
	"github.com/thoreinstein/mcucheck/pkg/fileutil"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "config.json"

// Load errors. Every error returned by [Load] matches exactly one of these.
var (
	// ErrFileNotFound indicates the configuration file does not exist.
	ErrFileNotFound = errors.New("configuration file not found")

	// ErrMalformedJSON indicates the file is not a single valid JSON document.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrIO indicates any other failure reading the file.
	ErrIO = errors.New("reading configuration file")
)

// Document is a decoded configuration file.
type Document struct {
	// Path is the file the document was read from. Empty for [Parse].
	Path string

	// Raw holds the bytes exactly as read.
	Raw []byte

	// Root is the decoded JSON value. Objects decode to map[string]any,
	// arrays to []any and numbers to json.Number.
	Root any
}

// Config returns the root as a JSON object.
// The second result is false when the document root is not an object.
func (d *Document) Config() (map[string]any, bool) {
	cfg, ok := d.Root.(map[string]any)
	return cfg, ok
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Mark(errors.Wrapf(err, "%s not found", path), ErrFileNotFound)
		}
		return nil, errors.Mark(errors.Wrapf(err, "loading %s", path), ErrIO)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid JSON format in %s", path)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a single JSON document from data.
// Trailing content after the first value and invalid UTF-8 are rejected,
// since the raw bytes are what gets echoed.
func Parse(data []byte) (*Document, error) {
	if off := invalidUTF8(data); off >= 0 {
		line, col := position(data, int64(off))
		return nil, errors.Mark(
			errors.Newf("invalid UTF-8 at line %d, column %d", line, col),
			ErrMalformedJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, malformed(data, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.Newf("unexpected data after top-level value at offset %d", dec.InputOffset())
		}
		return nil, malformed(data, err)
	}

	return &Document{Raw: data, Root: root}, nil
}

// malformed marks err as a JSON syntax failure, adding the line and column
// of the offending byte when the decoder reports one.
func malformed(data []byte, err error) error {
	if err == io.EOF {
		err = errors.New("empty document")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		err = errors.Wrapf(err, "line %d, column %d", line, col)
	}
	return errors.Mark(err, ErrMalformedJSON)
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

// invalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int {
	for off := 0; off < len(data); {
		r, size := utf8.DecodeRune(data[off:])
		if r == utf8.RuneError && size == 1 {
			return off
		}
		off += size
	}
	return -1
}
