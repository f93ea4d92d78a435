package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, contents, 0o644))
	return path
}

func TestLoadAppliesDefaultMissingTokens(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("email,amount,category\na@b.com,NA,books\n,100,None\nc@d.com,null,\n"))

	table, err := NewIngester(Options{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"email", "amount", "category"}, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "a@b.com", table.Rows[0]["email"])
	assert.Nil(t, table.Rows[0]["amount"])
	assert.Equal(t, "books", table.Rows[0]["category"])

	assert.Nil(t, table.Rows[1]["email"])
	assert.Equal(t, "100", table.Rows[1]["amount"])
	assert.Nil(t, table.Rows[1]["category"])

	assert.Nil(t, table.Rows[2]["amount"])
	assert.Nil(t, table.Rows[2]["category"])
}

func TestLoadMissingTokenOverride(t *testing.T) {
	path := writeFile(t, "data.csv", []byte("a,b\nNA,-\n"))

	table, err := NewIngester(Options{MissingTokens: []string{"-"}}).Load(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	// The override replaces the default token set entirely.
	assert.Equal(t, "NA", table.Rows[0]["a"])
	assert.Nil(t, table.Rows[0]["b"])
}

func TestLoadNotFound(t *testing.T) {
	_, err := NewIngester(Options{}).Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "data.txt", []byte("email,amount\na@b.com,1\n"))

	_, err := NewIngester(Options{}).Load(path)
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".txt", unsupported.Extension)
}

func TestLoadUppercaseExtension(t *testing.T) {
	path := writeFile(t, "data.CSV", []byte("email\na@b.com\n"))

	table, err := NewIngester(Options{}).Load(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestLoadLatin1Fallback(t *testing.T) {
	// "José,Müller" with é and ü encoded as Latin-1 single bytes, which is
	// not valid UTF-8.
	latin1 := []byte("name,city\nJos\xe9,M\xfcnchen\n")
	path := writeFile(t, "latin1.csv", latin1)

	table, err := NewIngester(Options{}).Load(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "José", table.Rows[0]["name"])
	assert.Equal(t, "München", table.Rows[0]["city"])

	// Same shape, ASCII transliteration: the row count must match.
	asciiPath := writeFile(t, "ascii.csv", []byte("name,city\nJose,Munchen\n"))
	asciiTable, err := NewIngester(Options{}).Load(asciiPath)
	require.NoError(t, err)
	assert.Equal(t, len(asciiTable.Rows), len(table.Rows))
}

func TestLoadPadsShortRows(t *testing.T) {
	path := writeFile(t, "short.csv", []byte("a,b,c\n1,2\n"))

	table, err := NewIngester(Options{}).Load(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1", table.Rows[0]["a"])
	assert.Equal(t, "2", table.Rows[0]["b"])
	assert.Nil(t, table.Rows[0]["c"])
}

func TestPreviewLimitsRowsAtLoadTime(t *testing.T) {
	contents := "n\n"
	for i := 0; i < 100; i++ {
		contents += "1\n"
	}
	path := writeFile(t, "big.csv", []byte(contents))

	table, err := NewIngester(Options{}).Preview(path, 5)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 5)
}

func TestFileMetadata(t *testing.T) {
	path := writeFile(t, "meta.csv", []byte("a\n1\n"))

	meta, err := NewIngester(Options{}).FileMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "meta.csv", meta.Filename)
	assert.Equal(t, ".csv", meta.Extension)
	assert.Equal(t, int64(4), meta.SizeBytes)
	assert.False(t, meta.ModifiedAt.IsZero())
}

func TestFileMetadataNotFound(t *testing.T) {
	_, err := NewIngester(Options{}).FileMetadata(filepath.Join(t.TempDir(), "gone.csv"))
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestColumnProfile(t *testing.T) {
	path := writeFile(t, "profile.csv", []byte("email,amount,note\na@b.com,10,x\nb@c.com,20,\na@b.com,NA,y\n"))

	ing := NewIngester(Options{})
	table, err := ing.Load(path)
	require.NoError(t, err)

	profile := ing.ColumnProfile(table)
	require.Len(t, profile, 3)

	email := profile["email"]
	assert.Equal(t, "object", email.DType)
	assert.Equal(t, 0, email.NullCount)
	assert.Equal(t, 0.0, email.NullPercentage)
	assert.Equal(t, 2, email.UniqueCount)
	assert.Equal(t, []any{"a@b.com", "b@c.com"}, email.SampleValues)

	amount := profile["amount"]
	assert.Equal(t, "int64", amount.DType)
	assert.Equal(t, 1, amount.NullCount)
	assert.Equal(t, 33.33, amount.NullPercentage)
	assert.Equal(t, 2, amount.UniqueCount)

	note := profile["note"]
	assert.Equal(t, 1, note.NullCount)
	assert.Equal(t, 33.33, note.NullPercentage)
}

func TestColumnProfileAllNullColumn(t *testing.T) {
	path := writeFile(t, "nulls.csv", []byte("a,b\n1,NA\n2,NA\n"))

	ing := NewIngester(Options{})
	table, err := ing.Load(path)
	require.NoError(t, err)

	profile := ing.ColumnProfile(table)
	b := profile["b"]
	assert.Equal(t, 100.0, b.NullPercentage)
	assert.Equal(t, "float64", b.DType)
	assert.Equal(t, 0, b.UniqueCount)
	assert.Empty(t, b.SampleValues)
}

func TestColumnProfileEmptyTable(t *testing.T) {
	path := writeFile(t, "empty.csv", []byte("a,b\n"))

	ing := NewIngester(Options{})
	table, err := ing.Load(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 0)

	profile := ing.ColumnProfile(table)
	for _, col := range []string{"a", "b"} {
		assert.Equal(t, 0.0, profile[col].NullPercentage)
		assert.Equal(t, 0, profile[col].NullCount)
	}
}

func TestColumnProfileSamplesCapAtThree(t *testing.T) {
	path := writeFile(t, "samples.csv", []byte("v\n1\n2\n3\n4\n5\n"))

	ing := NewIngester(Options{})
	table, err := ing.Load(path)
	require.NoError(t, err)

	profile := ing.ColumnProfile(table)
	assert.Equal(t, []any{"1", "2", "3"}, profile["v"].SampleValues)
	assert.Equal(t, 5, profile["v"].UniqueCount)
}

func TestIngestEnrichesMetadata(t *testing.T) {
	path := writeFile(t, "full.csv", []byte("email,amount\na@b.com,10\nb@c.com,20\n"))

	table, meta, profile, err := NewIngester(Options{}).Ingest(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "full.csv", meta.Filename)
	assert.Equal(t, 2, meta.RowCount)
	assert.Equal(t, 2, meta.ColumnCount)
	assert.Len(t, profile, 2)
}
