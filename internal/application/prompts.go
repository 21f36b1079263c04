package application

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"strings"
	"text/template"

	"github.com/bnema/lens-agent/internal/domain"
)

const headerTemplate = `{{.Timeline}}

# Knowledge
{{.Knowledge}}

About {{.AgentName}} (@{{.Handle}}):
{{.Bio}}
{{.Lore}}
{{.PostDirections}}

{{.PostExamples}}`

const postTemplate = `{{template "header" .}}
# Task: Generate a post in the voice and style of {{.AgentName}}, aka @{{.Handle}}
Write a single sentence post that is {{.Adjective}} about {{.Topic}} (without mentioning {{.Topic}} directly), from the perspective of {{.AgentName}}.
Try to write something totally different than previous posts. Do not add commentary or acknowledge this request, just write the post.

Your response should not contain any questions. Brief, concise statements only. No emojis. Use \n\n (double spaces) between statements.`

const shouldRespondTemplate = `# Task: Decide if {{.AgentName}} should respond.
About {{.AgentName}}:
{{.Bio}}

# INSTRUCTIONS: Determine if {{.AgentName}} (@{{.Handle}}) should respond to the message and participate in the conversation. Do not comment. Just respond with "RESPOND" or "IGNORE" or "STOP".

Response options are RESPOND, IGNORE and STOP.

{{.AgentName}} has zero tolerance for racism, discrimination, or disrespectful language. {{.AgentName}} should RESPOND to any messages containing discriminatory content, hate speech, or harmful stereotypes to promote respectful dialogue and support affected individuals.
{{.AgentName}} should respond to messages that are directed at them, or participate in conversations that are interesting or relevant to their background, IGNORE messages that are irrelevant to them, and should STOP if the conversation is concluded.

{{.AgentName}} is in a room with other users and wants to be conversational, but not annoying.
{{.AgentName}} should RESPOND when someone shares experiences of discrimination or when support is needed.
{{.AgentName}} should always maintain respectful language and promote positive dialogue.
If a message is not interesting or relevant, {{.AgentName}} should IGNORE.
If a message thread has become repetitive, {{.AgentName}} should IGNORE.
Unless directly RESPONDing to a user, {{.AgentName}} should IGNORE messages that are very short or do not contain much information.
If someone uses disrespectful language or promotes harmful stereotypes, {{.AgentName}} should RESPOND with educational and constructive dialogue.
If a user asks {{.AgentName}} to stop talking, {{.AgentName}} should STOP.
If {{.AgentName}} concludes a conversation and isn't part of the conversation anymore, {{.AgentName}} should STOP.

IMPORTANT: {{.AgentName}} (aka @{{.Handle}}) is particularly sensitive about being annoying, so if there is any doubt, it is better to IGNORE than to RESPOND. However, {{.AgentName}} will not ignore discriminatory content or disrespectful language.

Thread of messages You Are Replying To:
{{.Conversation}}

Current message:
{{.CurrentPost}}

Respond with [RESPOND] if {{.AgentName}} should respond, or [IGNORE] if {{.AgentName}} should not respond to the last message and [STOP] if {{.AgentName}} should stop participating in the conversation.`

const messageHandlerTemplate = `{{template "header" .}}
Thread of posts You Are Replying To:
{{.Conversation}}

# Task: Generate a post in the voice, style and perspective of {{.AgentName}} (@{{.Handle}}):
{{.CurrentPost}}

Reply with the text of the post only. No quotes, no commentary, no emojis.`

const conversationTimeLayout = "Jan 2, 03:04 PM"

type PromptData struct {
	AgentName      string
	Handle         string
	Bio            string
	Lore           string
	PostDirections string
	PostExamples   string
	Timeline       string
	Knowledge      string
	Adjective      string
	Topic          string
	Conversation   string
	CurrentPost    string
}

// Prompts renders the character's prompt templates. Templates named in the character
// replace the built-in ones and may use {{template "header" .}}.
type Prompts struct {
	character domain.Character
	templates map[string]*template.Template
	pick      func(n int) int
}

// NewPrompts parses the templates. pick chooses an index in [0, n) and defaults to
// math/rand.
func NewPrompts(character domain.Character, pick func(n int) int) (*Prompts, error) {
	if pick == nil {
		pick = rand.IntN
	}

	base, err := template.New("header").Parse(headerTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse header template: %w", err)
	}

	defaults := map[string]string{
		domain.TemplatePost:           postTemplate,
		domain.TemplateShouldRespond:  shouldRespondTemplate,
		domain.TemplateMessageHandler: messageHandlerTemplate,
	}

	templates := make(map[string]*template.Template, len(defaults))
	for name, text := range defaults {
		if override := strings.TrimSpace(character.Templates[name]); override != "" {
			text = override
		}

		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone header template: %w", err)
		}
		if _, err := set.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		templates[name] = set
	}

	return &Prompts{character: character, templates: templates, pick: pick}, nil
}

func (p *Prompts) Data(handle string) PromptData {
	return PromptData{
		AgentName:      p.character.Name,
		Handle:         handle,
		Bio:            strings.Join(p.character.Bio, " "),
		Lore:           strings.Join(p.character.Lore, "\n"),
		PostDirections: formatSection("# Post directions for "+p.character.Name, p.character.PostDirections),
		PostExamples:   formatSection("# Example posts for "+p.character.Name, p.character.PostExamples),
		Adjective:      p.choose(p.character.Adjectives),
		Topic:          p.choose(p.character.Topics),
	}
}

func (p *Prompts) Post(data PromptData) (string, error) {
	return p.render(domain.TemplatePost, data)
}

func (p *Prompts) ShouldRespond(data PromptData) (string, error) {
	return p.render(domain.TemplateShouldRespond, data)
}

func (p *Prompts) MessageHandler(data PromptData) (string, error) {
	return p.render(domain.TemplateMessageHandler, data)
}

func (p *Prompts) render(name string, data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := p.templates[name].ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func (p *Prompts) choose(options []string) string {
	if len(options) == 0 {
		return ""
	}

	return options[p.pick(len(options))]
}

func formatSection(title string, lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return title + "\n" + strings.Join(lines, "\n")
}

func FormatPost(post domain.Post) string {
	name := post.Author.Name
	if name == "" {
		name = "Unknown"
	}
	handle := post.Author.LocalName
	if handle == "" {
		handle = "unknown"
	}
	content, ok := post.Text()
	if !ok {
		content = "No content available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\nFrom: %s (@%s)", post.ID, name, handle)
	if post.CommentOn != nil && post.CommentOn.AuthorHandle != "" {
		fmt.Fprintf(&b, "\nIn reply to: @%s", post.CommentOn.AuthorHandle)
	}
	fmt.Fprintf(&b, "\nText: %s", content)

	return b.String()
}

func FormatTimeline(agentName string, posts []domain.Post) string {
	formatted := make([]string, 0, len(posts))
	for _, post := range posts {
		formatted = append(formatted, FormatPost(post))
	}

	return fmt.Sprintf("# %s's Home Timeline\n%s\n", agentName, strings.Join(formatted, "\n"))
}

// FormatConversation renders a thread, oldest first, as "@handle (date):\ntext" blocks.
func FormatConversation(thread []domain.Post) string {
	blocks := make([]string, 0, len(thread))
	for _, post := range thread {
		content, _ := post.Text()
		blocks = append(blocks, fmt.Sprintf("@%s (%s):\n%s", post.Author.Handle(), post.Timestamp.Format(conversationTimeLayout), content))
	}

	return strings.Join(blocks, "\n\n")
}

func FormatKnowledge(chunks []domain.KnowledgeChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		parts = append(parts, strings.TrimSpace(chunk.Text))
	}

	return strings.Join(parts, "\n\n")
}
