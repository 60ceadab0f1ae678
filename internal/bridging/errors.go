// Package bridging converts between the internal document model and the
// simplified representation exchanged with the generation backend, and
// merges accepted generated content back into the document.
package bridging

import "fmt"

// CountMismatchError reports a batch operation whose result item count does
// not match the request. The whole operation fails; no partial merge is
// attempted.
type CountMismatchError struct {
	SectionID string
	Sent      int
	Received  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("section %s: sent %d items but backend returned %d; no changes applied", e.SectionID, e.Sent, e.Received)
}

// UnknownSectionError reports a merge against a section id the document
// does not contain.
type UnknownSectionError struct {
	SectionID string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("document has no section %s", e.SectionID)
}
