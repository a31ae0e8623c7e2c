// Package document loads files into line sequences and writes them back.
//
// A Document remembers how its file was stored (line ending, trailing
// newline, encoding) so that saving an unedited document reproduces the
// original bytes. The editing core never sees any of this; it only receives
// the lines.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIsDirectory is returned when the path names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// Document describes a file on disk and how it is encoded.
type Document struct {
	// Path is the file path. Empty for a document that has never been saved.
	Path string

	// Lines is the content read by Load. Save does not update it.
	Lines []string

	LineEnding      LineEnding
	TrailingNewline bool
	Encoding        Encoding

	// Exists is false when the file did not exist at load time.
	Exists bool

	// Modified is true when the lines differ from what is on disk.
	Modified bool

	mode fs.FileMode
}

// New returns an empty, unsaved document.
func New() *Document {
	return &Document{
		Lines:           []string{""},
		LineEnding:      LineEndingLF,
		TrailingNewline: true,
		Encoding:        EncodingUTF8,
		mode:            0o644,
	}
}

// Load reads path. A missing file yields an empty document that will be
// created on the first save.
func Load(path string) (*Document, error) {
	doc := New()
	doc.Path = path

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: %w", path, ErrIsDirectory)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, enc, err := decode(content)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc.Lines, doc.TrailingNewline = splitText(text)
	doc.LineEnding = DetectLineEnding(text)
	doc.Encoding = enc
	doc.Exists = true
	doc.mode = info.Mode().Perm()
	return doc, nil
}

// Name returns the base name of the file, or "" for an unnamed document.
func (d *Document) Name() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// Bytes returns lines encoded the way the file was stored.
func (d *Document) Bytes(lines []string) ([]byte, error) {
	return encode(joinLines(lines, d.LineEnding, d.TrailingNewline), d.Encoding)
}

// Save writes lines to the document's path and clears Modified.
func (d *Document) Save(lines []string) (int, error) {
	if d.Path == "" {
		return 0, errors.New("document has no file name")
	}
	return d.SaveAs(d.Path, lines)
}

// SaveAs writes lines to path through a temporary file and a rename, so a
// failed write never leaves a truncated file behind. On success the
// document takes path as its own and the number of bytes written is
// returned.
func (d *Document) SaveAs(path string, lines []string) (int, error) {
	data, err := d.Bytes(lines)
	if err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Chmod(tempPath, d.mode); err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		// Clean up temp file on failure
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to rename temp file: %w", err)
	}

	d.Path = path
	d.Exists = true
	d.Modified = false
	return len(data), nil
}
