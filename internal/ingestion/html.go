package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractionError reports a failure to parse or extract text from HTML.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// TextFromHTML extracts readable text from an HTML page, skipping script,
// style, and navigation boilerplate, and returns it cleaned. Good enough
// for a saved job-posting page; it makes no attempt at full readability
// extraction.
func TextFromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe, svg").Remove()

	root := doc.Find("main")
	if root.Length() == 0 {
		root = doc.Find("body")
	}
	if root.Length() == 0 {
		return "", &ExtractionError{Message: "HTML document has no body"}
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, p, li, td").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	extracted := sb.String()
	if strings.TrimSpace(extracted) == "" {
		// Fall back to all visible text when the page uses no standard
		// content elements.
		extracted = root.Text()
	}
	return CleanText(extracted), nil
}
