package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/testutil"
)

func TestFileWriter_WriteText(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, testutil.MakeNoopLogger())

	path, err := w.WriteText("lesson body", "Math - Fractions")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Math_-_Fractions.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "lesson body", string(data))
}

func TestFileWriter_WriteDocument(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, testutil.MakeNoopLogger())

	path, err := w.WriteDocument(model.Document{
		Title: "Parent Update - Amy",
		Body:  "Dear Parent,\n1 < 2",
	}, "Parent Update - Amy")
	require.NoError(t, err)
	assert.Equal(t, ".doc", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Parent Update - Amy</h1>")
	assert.Contains(t, string(data), "1 &lt; 2")
}

func TestFileWriter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	w := NewFileWriter(dir, testutil.MakeNoopLogger())

	_, err := w.WriteText("x", "file")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Math_-_Fractions", sanitize("Math - Fractions"))
	assert.Equal(t, "untitled", sanitize("   "))
	assert.Equal(t, "untitled", sanitize("///"))
	assert.Equal(t, "report.v2", sanitize("report.v2"))
}
