package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nguyenthenguyen/docx"
)

// paragraphBreaks maps WordprocessingML break elements to text.
var paragraphBreaks = strings.NewReplacer(
	"</w:p>", "</w:p>\n",
	"<w:br/>", "\n",
	"<w:tab/>", "\t",
)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	xml := paragraphBreaks.Replace(doc.Editable().GetContent())

	// The HTML parser drops unknown w: elements and keeps their character data.
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(xml))
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}
	return parsed.Text(), nil
}
