package domain

import "github.com/google/uuid"

const (
	textOnlySchema = "https://json-schemas.lens.dev/posts/text-only/3.0.0.json"
	defaultLocale  = "en"
	mainFocusText  = "TEXT_ONLY"
)

// TextOnlyMetadata is the document uploaded to storage before a text post is submitted.
type TextOnlyMetadata struct {
	Schema string              `json:"$schema"`
	Lens   TextOnlyLensPayload `json:"lens"`
}

type TextOnlyLensPayload struct {
	ID               string `json:"id"`
	Content          string `json:"content"`
	Locale           string `json:"locale"`
	MainContentFocus string `json:"mainContentFocus"`
}

func NewTextOnlyMetadata(content string) TextOnlyMetadata {
	return TextOnlyMetadata{
		Schema: textOnlySchema,
		Lens: TextOnlyLensPayload{
			ID:               uuid.NewString(),
			Content:          content,
			Locale:           defaultLocale,
			MainContentFocus: mainFocusText,
		},
	}
}
