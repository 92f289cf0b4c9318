package util

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

type ParseErrorCode string

const (
	ParseErrUnsupported       ParseErrorCode = "unsupported_format"
	ParseErrLegacyDoc         ParseErrorCode = "legacy_doc"
	ParseErrEmpty             ParseErrorCode = "empty_content"
	ParseErrPasswordProtected ParseErrorCode = "password_protected"
	ParseErrCorrupt           ParseErrorCode = "corrupt_file"
	ParseErrTooLarge          ParseErrorCode = "file_too_large"
)

// FileParseError is returned for every file that cannot be turned into text.
type FileParseError struct {
	Code    ParseErrorCode
	Message string
	Hint    string
	Err     error
}

func (e *FileParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FileParseError) Unwrap() error { return e.Err }

func newParseError(code ParseErrorCode, err error) *FileParseError {
	pe := &FileParseError{Code: code, Err: err}
	switch code {
	case ParseErrLegacyDoc:
		pe.Message = "legacy .doc not supported"
		pe.Hint = "Save the document as .docx or PDF and upload it again."
	case ParseErrEmpty:
		pe.Message = "no text could be extracted from the file"
		pe.Hint = "The file may contain only images. Paste the CV text directly instead."
	case ParseErrPasswordProtected:
		pe.Message = "the document is password protected"
		pe.Hint = "Remove the password and upload the file again."
	case ParseErrCorrupt:
		pe.Message = "the file could not be read"
		pe.Hint = "The file may be damaged. Export it again from the original editor."
	case ParseErrTooLarge:
		pe.Message = "the file is too large"
		pe.Hint = "Upload a smaller file or paste the text directly."
	default:
		pe.Message = "unsupported file format"
		pe.Hint = "Supported formats are PDF, DOCX and TXT."
	}
	return pe
}

type ExtractOptions struct {
	MaxSize    int64
	OCREnabled bool
}

type ExtractResult struct {
	Text     string
	FileType string
	Method   string
}

// ExtractText turns an uploaded document into plain text. The format is
// chosen by file extension.
func ExtractText(filename string, data []byte, opts ExtractOptions) (ExtractResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".doc" {
		return ExtractResult{}, newParseError(ParseErrLegacyDoc, nil)
	}
	if opts.MaxSize > 0 && int64(len(data)) > opts.MaxSize {
		return ExtractResult{}, newParseError(ParseErrTooLarge, fmt.Errorf("%d bytes exceeds limit of %d", len(data), opts.MaxSize))
	}

	var (
		text   string
		method string
		err    error
	)
	switch ext {
	case ".txt":
		text, method = extractPlainText(data), "text"
	case ".pdf":
		text, method, err = extractPDF(data, opts.OCREnabled)
	case ".docx":
		text, method, err = extractDOCX(data)
	default:
		return ExtractResult{}, newParseError(ParseErrUnsupported, fmt.Errorf("extension %q", ext))
	}
	if err != nil {
		return ExtractResult{}, err
	}

	text = CleanText(text)
	if text == "" {
		return ExtractResult{}, newParseError(ParseErrEmpty, nil)
	}

	GetLogger().WithFields(logrus.Fields{
		"file":   filename,
		"method": method,
		"chars":  len(text),
	}).Info("extracted document text")

	return ExtractResult{Text: text, FileType: strings.TrimPrefix(ext, "."), Method: method}, nil
}

func extractPlainText(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return strings.ToValidUTF8(string(data), "")
	}
	return string(data)
}

func extractPDF(data []byte, ocr bool) (string, string, error) {
	text, err := extractPDFPlainText(data)
	if err != nil {
		if isPasswordError(err) {
			return "", "", newParseError(ParseErrPasswordProtected, err)
		}
		GetLogger().WithError(err).Warn("pdf reader failed, trying fitz")
	}
	if strings.TrimSpace(text) != "" {
		return text, "pdf", nil
	}

	fitzText, fitzErr := extractWithFitz(data)
	if fitzErr != nil {
		GetLogger().WithError(fitzErr).Debug("fitz could not read pdf")
	}
	if strings.TrimSpace(fitzText) != "" {
		return fitzText, "fitz", nil
	}

	if ocr {
		text, ocrErr := ExtractPDFOCR(data)
		if ocrErr == nil {
			return text, "ocr", nil
		}
		GetLogger().WithError(ocrErr).Warn("ocr extraction failed")
	}

	if err != nil {
		return "", "", newParseError(ParseErrCorrupt, err)
	}
	return "", "", nil
}

func extractPDFPlainText(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, string, error) {
	text, err := extractWithFitz(data)
	if err != nil {
		return "", "", newParseError(ParseErrCorrupt, err)
	}
	return text, "fitz", nil
}

// extractWithFitz reads the text layer of any MuPDF-supported document.
func extractWithFitz(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// ExtractPDFOCR renders every page and runs it through tesseract.
func ExtractPDFOCR(data []byte) (string, error) {
	if err := checkTesseract(); err != nil {
		return "", fmt.Errorf("tesseract check failed: %w", err)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	log := GetLogger()
	var fullText bytes.Buffer
	var lastErr error

	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to extract image: %w", n+1, err)
			log.Warn(lastErr)
			continue
		}

		pageText, err := ocrImage(img)
		if err != nil {
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			log.Warn(lastErr)
			continue
		}
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", fmt.Errorf("failed to extract text via OCR: %w", lastErr)
		}
		return "", errors.New("no text extracted from PDF")
	}
	return result, nil
}

func ocrImage(img image.Image) (string, error) {
	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	tmpFile.Close()

	out, err := exec.Command("tesseract", tmpPath, "stdout", "-l", "eng").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract error: %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract() error {
	out, err := exec.Command("tesseract", "-v").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tesseract not found or not executable: %w\nOutput: %s", err, string(out))
	}
	return nil
}

func isPasswordError(err error) bool {
	if errors.Is(err, pdf.ErrInvalidPassword) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypted")
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
