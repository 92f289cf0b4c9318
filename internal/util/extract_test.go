package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireParseError(t *testing.T, err error, code ParseErrorCode) *FileParseError {
	t.Helper()
	var pe *FileParseError
	require.True(t, errors.As(err, &pe), "expected FileParseError, got %v", err)
	assert.Equal(t, code, pe.Code)
	assert.NotEmpty(t, pe.Hint)
	return pe
}

func TestExtractText_LegacyDocAlwaysRejected(t *testing.T) {
	contents := [][]byte{
		nil,
		[]byte("plain text pretending to be a doc"),
		{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
	}
	for _, data := range contents {
		_, err := ExtractText("resume.DOC", data, ExtractOptions{MaxSize: 1})
		pe := requireParseError(t, err, ParseErrLegacyDoc)
		assert.Equal(t, "legacy .doc not supported", pe.Message)
	}
}

func TestExtractText_PlainText(t *testing.T) {
	data := []byte("\xef\xbb\xbfJane Doe\r\n\r\n  jane@example.com  \n")
	res, err := ExtractText("cv.txt", data, ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com", res.Text)
	assert.Equal(t, "txt", res.FileType)
	assert.Equal(t, "text", res.Method)
}

func TestExtractText_EmptyText(t *testing.T) {
	_, err := ExtractText("cv.txt", []byte("  \n\t\n"), ExtractOptions{})
	requireParseError(t, err, ParseErrEmpty)
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("cv.odt", []byte("data"), ExtractOptions{})
	requireParseError(t, err, ParseErrUnsupported)
}

func TestExtractText_TooLarge(t *testing.T) {
	_, err := ExtractText("cv.txt", []byte("0123456789"), ExtractOptions{MaxSize: 5})
	requireParseError(t, err, ParseErrTooLarge)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("  a  \n\n\n b\r\n"))
	assert.Equal(t, "", CleanText("\n \n"))
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestExtractText_PDF(t *testing.T) {
	res, err := ExtractText("resume.pdf", readFixture(t, "resume.pdf"), ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Go Developer", res.Text)
	assert.Equal(t, "pdf", res.FileType)
	assert.Equal(t, "pdf", res.Method)
}

func TestExtractText_PDFFallsBackToFitz(t *testing.T) {
	// The content stream uses a filter the pdf reader cannot decode.
	res, err := ExtractText("resume.pdf", readFixture(t, "resume_hex.pdf"), ExtractOptions{})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Jane Doe Go Developer")
	assert.Equal(t, "fitz", res.Method)
}

func TestExtractText_PasswordProtectedPDF(t *testing.T) {
	_, err := ExtractText("locked.pdf", readFixture(t, "encrypted.pdf"), ExtractOptions{})
	requireParseError(t, err, ParseErrPasswordProtected)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("broken.pdf", readFixture(t, "corrupt.pdf"), ExtractOptions{})
	requireParseError(t, err, ParseErrCorrupt)
}

func TestExtractText_DOCX(t *testing.T) {
	res, err := ExtractText("sample.docx", readFixture(t, "sample.docx"), ExtractOptions{})
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Sample Document")
	assert.Equal(t, "docx", res.FileType)
	assert.Equal(t, "fitz", res.Method)
}

func TestExtractText_CorruptDOCX(t *testing.T) {
	_, err := ExtractText("broken.docx", readFixture(t, "corrupt.docx"), ExtractOptions{})
	pe := requireParseError(t, err, ParseErrCorrupt)
	assert.Equal(t, "the file could not be read", pe.Message)
}
