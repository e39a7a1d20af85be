package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinPath names standard input as a document source.
const StdinPath = "-"

// Format identifies how a document's text was extracted.
type Format string

// Supported formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// Document is the plain text extracted from one input file.
type Document struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Text   string `json:"text"`
	Hash   string `json:"hash"` // SHA256 hex digest of Text
}

// FormatFor returns the format implied by a file name's extension.
// Files without an extension are treated as plain text.
func FormatFor(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case "", ".txt", ".text":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Path: name, Extension: ext}
	}
}

// ReadDocument reads path and extracts its text according to its extension.
// StdinPath reads plain text from standard input.
func ReadDocument(path string) (*Document, error) {
	if path == StdinPath {
		return Read("stdin.txt", os.Stdin)
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ExtractionError{Path: path, Format: format, Message: "file not found", Cause: err}
		}
		return nil, &ExtractionError{Path: path, Format: format, Message: "failed to read file", Cause: err}
	}
	return FromBytes(path, data)
}

// Read extracts text from r, using name to pick the format.
func Read(name string, r io.Reader) (*Document, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ExtractionError{Path: name, Format: format, Message: "failed to read input", Cause: err}
	}
	return FromBytes(name, data)
}

// FromBytes extracts text from data, using name to pick the format.
func FromBytes(name string, data []byte) (*Document, error) {
	format, err := FormatFor(name)
	if err != nil {
		return nil, err
	}

	var raw string
	switch format {
	case FormatHTML:
		raw, err = htmlText(data)
	case FormatPDF:
		raw, err = pdfText(data)
	case FormatDOCX:
		raw, err = docxText(data)
	default:
		raw = string(data)
	}
	if err != nil {
		return nil, &ExtractionError{Path: name, Format: format, Message: "decode failed", Cause: err}
	}

	text := CleanText(raw)
	return &Document{
		Path:   name,
		Format: format,
		Text:   text,
		Hash:   computeHash(text),
	}, nil
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
