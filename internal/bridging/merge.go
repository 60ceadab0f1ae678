package bridging

import (
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// ItemPatch carries accepted generated values for one item. Only the fields
// present in Data are replaced; everything else on the item is untouched.
type ItemPatch struct {
	ID   string         `json:"id"`
	Data types.ItemData `json:"data"`
}

// MergeBack applies field-level patches to the named section and returns a
// new document; the input document is never mutated. Items without a patch
// and fields absent from a patch pass through unchanged, and ordering is
// preserved. Patched items get an UpdatedAt bump and the AIImproved flag.
// Patches whose item id does not exist in the section are ignored.
func MergeBack(doc *types.Document, sectionID string, patches []ItemPatch) (*types.Document, error) {
	out := doc.Clone()
	section := out.Section(sectionID)
	if section == nil {
		return nil, &UnknownSectionError{SectionID: sectionID}
	}

	byID := make(map[string]types.ItemData, len(patches))
	for _, patch := range patches {
		if len(patch.Data) == 0 {
			continue
		}
		byID[patch.ID] = patch.Data
	}

	now := time.Now().UTC()
	for _, item := range section.Items {
		patch, ok := byID[item.ID]
		if !ok {
			continue
		}
		if item.Data == nil {
			item.Data = make(types.ItemData)
		}
		for fieldID, value := range patch {
			item.Data[fieldID] = value.Clone()
		}
		item.Meta.UpdatedAt = now
		item.Meta.AIImproved = true
	}
	return out, nil
}
