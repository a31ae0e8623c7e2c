package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.False(t, doc.Exists)
	assert.Equal(t, []string{""}, doc.Lines)
	assert.Equal(t, LineEndingLF, doc.LineEnding)
	assert.Equal(t, "new.txt", doc.Name())
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestLoadLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		lines    []string
		ending   LineEnding
		trailing bool
	}{
		{"empty", "", []string{""}, LineEndingLF, false},
		{"lf", "a\nb\n", []string{"a", "b"}, LineEndingLF, true},
		{"lf no trailing", "a\nb", []string{"a", "b"}, LineEndingLF, false},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}, LineEndingCRLF, true},
		{"cr", "a\rb\r", []string{"a", "b"}, LineEndingCR, true},
		{"blank lines", "\n\n", []string{"", ""}, LineEndingLF, true},
		{"only newline", "\n", []string{""}, LineEndingLF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(writeFile(t, "f.txt", []byte(tt.content)))
			require.NoError(t, err)
			assert.True(t, doc.Exists)
			assert.Equal(t, tt.lines, doc.Lines)
			assert.Equal(t, tt.ending, doc.LineEnding)
			assert.Equal(t, tt.trailing, doc.TrailingNewline)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("one\ntwo\n"),
		[]byte("one\r\ntwo"),
		[]byte("x\ry\r"),
		append([]byte{0xEF, 0xBB, 0xBF}, "bom\n"...),
		{'c', 'a', 'f', 0xE9, '\n'},
	}

	for _, in := range inputs {
		path := writeFile(t, "rt.txt", in)
		doc, err := Load(path)
		require.NoError(t, err)

		n, err := doc.Save(doc.Lines)
		require.NoError(t, err)
		assert.Equal(t, len(in), n)

		out, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestLoadLatin1(t *testing.T) {
	doc, err := Load(writeFile(t, "l1.txt", []byte{'c', 'a', 'f', 0xE9}))
	require.NoError(t, err)
	assert.Equal(t, EncodingLatin1, doc.Encoding)
	assert.Equal(t, []string{"café"}, doc.Lines)
}

func TestLatin1UnencodableText(t *testing.T) {
	doc, err := Load(writeFile(t, "l1.txt", []byte{0xE9}))
	require.NoError(t, err)

	_, err = doc.Save([]string{"世界"})
	assert.Error(t, err)
}

func TestUTF16RoundTrip(t *testing.T) {
	// "hi\n" in UTF-16LE with BOM
	in := []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}
	path := writeFile(t, "u16.txt", in)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF16LE, doc.Encoding)
	assert.Equal(t, []string{"hi"}, doc.Lines)

	_, err = doc.Save([]string{"hi"})
	require.NoError(t, err)
	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveAsNewFile(t *testing.T) {
	doc := New()
	doc.Modified = true
	path := filepath.Join(t.TempDir(), "sub", "out.txt")

	_, err := doc.SaveAs(path, []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, path, doc.Path)
	assert.True(t, doc.Exists)
	assert.False(t, doc.Modified)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(out))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSavePreservesMode(t *testing.T) {
	path := writeFile(t, "mode.txt", []byte("x\n"))
	require.NoError(t, os.Chmod(path, 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	_, err = doc.Save([]string{"y"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveWithoutPath(t *testing.T) {
	_, err := New().Save([]string{"x"})
	assert.Error(t, err)
}

func TestDetectLineEnding(t *testing.T) {
	assert.Equal(t, LineEndingLF, DetectLineEnding("no breaks"))
	assert.Equal(t, LineEndingCRLF, DetectLineEnding("a\r\nb\nc\r\n"))
	assert.Equal(t, LineEndingLF, DetectLineEnding("a\nb\nc\r\n"))
	assert.Equal(t, LineEndingCR, DetectLineEnding("a\rb\rc\n"))
}

func TestLineEndingSequence(t *testing.T) {
	assert.Equal(t, "\n", LineEndingLF.Sequence())
	assert.Equal(t, "\r\n", LineEndingCRLF.Sequence())
	assert.Equal(t, "\r", LineEndingCR.Sequence())
}
