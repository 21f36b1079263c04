package domain

// Character describes the persona the agent writes as.
type Character struct {
	Name           string            `json:"name"`
	Bio            []string          `json:"bio"`
	Lore           []string          `json:"lore"`
	Topics         []string          `json:"topics"`
	Adjectives     []string          `json:"adjectives"`
	PostDirections []string          `json:"postDirections"`
	PostExamples   []string          `json:"postExamples"`
	System         string            `json:"system"`
	Templates      map[string]string `json:"templates"`
}

const (
	TemplatePost           = "post"
	TemplateShouldRespond  = "shouldRespond"
	TemplateMessageHandler = "messageHandler"
)

type KnowledgeChunk struct {
	Source string
	Text   string
	Score  float32
}
