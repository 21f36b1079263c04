package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int                `toml:"version"`
	Memories    []memorySchema     `toml:"memories"`
	Connections []connectionSchema `toml:"connections"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported memory schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type memorySchema struct {
	ID        string        `toml:"id"`
	AgentID   string        `toml:"agent_id"`
	UserID    string        `toml:"user_id"`
	RoomID    string        `toml:"room_id"`
	Content   contentSchema `toml:"content"`
	CreatedAt string        `toml:"created_at"`
}

type contentSchema struct {
	Text      string `toml:"text"`
	Source    string `toml:"source"`
	URL       string `toml:"url,omitempty"`
	PostID    string `toml:"post_id"`
	CommentOn string `toml:"comment_on,omitempty"`
	InReplyTo string `toml:"in_reply_to,omitempty"`
	Action    string `toml:"action,omitempty"`
}

type connectionSchema struct {
	UserID  string `toml:"user_id"`
	RoomID  string `toml:"room_id"`
	Address string `toml:"address"`
	Name    string `toml:"name"`
	Source  string `toml:"source"`
}
