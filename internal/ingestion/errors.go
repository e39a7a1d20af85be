package ingestion

import "fmt"

// UnsupportedFormatError is returned for files whose extension has no extractor.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q for %s (use .txt, .md, .html, .pdf or .docx)", e.Extension, e.Path)
}

// ExtractionError reports a failure reading or decoding a document.
type ExtractionError struct {
	Path    string
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text from %s: %s: %v", e.Format, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text from %s: %s", e.Format, e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
