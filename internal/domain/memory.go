package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SourceLens tags memories and connections that originate from the social graph.
const SourceLens = "lens"

type (
	MemoryID uuid.UUID
	RoomID   uuid.UUID
	UserID   uuid.UUID
	AgentID  uuid.UUID
)

var idNamespace = uuid.MustParse("6f1c1f4e-3b0a-5d8e-9a51-1b1f7f1c2a10")

func deriveID(parts ...string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(parts, "-")))
}

// NewMemoryID derives the memory id of a post as seen by an agent. The same pair
// always yields the same id, which makes memory creation idempotent.
func NewMemoryID(postID PostID, agentID AgentID) MemoryID {
	return MemoryID(deriveID(string(postID), agentID.String()))
}

// NewRoomID derives the conversation room rooted at a post.
func NewRoomID(postID PostID, agentID AgentID) RoomID {
	return RoomID(deriveID("room", string(postID), agentID.String()))
}

func NewNamedRoomID(name string) RoomID {
	return RoomID(deriveID("room", name))
}

func NewUserID(address EvmAddress) UserID {
	return UserID(deriveID("user", strings.ToLower(string(address))))
}

func NewAgentID(name string) AgentID {
	return AgentID(deriveID("agent", name))
}

func ParseAgentID(raw string) (AgentID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return AgentID{}, err
	}

	return AgentID(id), nil
}

func (id MemoryID) String() string { return uuid.UUID(id).String() }
func (id RoomID) String() string   { return uuid.UUID(id).String() }
func (id UserID) String() string   { return uuid.UUID(id).String() }
func (id AgentID) String() string  { return uuid.UUID(id).String() }

type MemoryContent struct {
	Text      string
	Source    string
	URL       string
	PostID    PostID
	CommentOn *MemoryID
	InReplyTo *MemoryID
	Action    string
}

// Memory mirrors a post for the agent's conversation history. Memories are never
// mutated after creation.
type Memory struct {
	ID        MemoryID
	AgentID   AgentID
	UserID    UserID
	RoomID    RoomID
	Content   MemoryContent
	CreatedAt time.Time
}

// NewPostMemory builds the memory record of an observed or published post.
func NewPostMemory(post Post, agentID AgentID, roomID RoomID, createdAt time.Time) Memory {
	text, ok := post.Text()
	if !ok {
		text = ""
	}

	var commentOn *MemoryID
	if post.IsComment() {
		parent := NewMemoryID(post.CommentOn.ID, agentID)
		commentOn = &parent
	}

	return Memory{
		ID:      NewMemoryID(post.ID, agentID),
		AgentID: agentID,
		UserID:  NewUserID(post.Author.Address),
		RoomID:  roomID,
		Content: MemoryContent{
			Text:      text,
			Source:    SourceLens,
			PostID:    post.ID,
			CommentOn: commentOn,
		},
		CreatedAt: createdAt,
	}
}

// Connection records a participant in a room.
type Connection struct {
	UserID  UserID
	RoomID  RoomID
	Address EvmAddress
	Name    string
	Source  string
}

func NewConnection(account Account, roomID RoomID) Connection {
	return Connection{
		UserID:  NewUserID(account.Address),
		RoomID:  roomID,
		Address: account.Address,
		Name:    account.DisplayName(),
		Source:  SourceLens,
	}
}
