package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabase       = "lensagent"
	memoriesCollection    = "memories"
	connectionsCollection = "connections"
)

var (
	_ ports.MemoryStore  = (*Store)(nil)
	_ ports.RoomRegistry = (*Store)(nil)
)

type memoryDocument struct {
	ID        string    `bson:"_id"`
	AgentID   string    `bson:"agentId"`
	UserID    string    `bson:"userId"`
	RoomID    string    `bson:"roomId"`
	Text      string    `bson:"text"`
	Source    string    `bson:"source"`
	URL       string    `bson:"url,omitempty"`
	PostID    string    `bson:"postId"`
	CommentOn string    `bson:"commentOn,omitempty"`
	InReplyTo string    `bson:"inReplyTo,omitempty"`
	Action    string    `bson:"action,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

type connectionDocument struct {
	ID      string `bson:"_id"`
	UserID  string `bson:"userId"`
	RoomID  string `bson:"roomId"`
	Address string `bson:"address"`
	Name    string `bson:"name"`
	Source  string `bson:"source"`
}

// Store keeps agent memories and room participants in MongoDB.
type Store struct {
	memories    *mongo.Collection
	connections *mongo.Collection
}

// Connect dials uri and returns the client together with a store on database.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("memory: connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, nil, fmt.Errorf("memory: ping mongo: %w", err)
	}

	if database == "" {
		database = DefaultDatabase
	}

	return client, NewStore(client.Database(database)), nil
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		memories:    db.Collection(memoriesCollection),
		connections: db.Collection(connectionsCollection),
	}
}

func (s *Store) GetMemoryByID(ctx context.Context, id domain.MemoryID) (*domain.Memory, error) {
	var doc memoryDocument
	err := s.memories.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("memory: find memory %s: %w", id, err)
	}

	memory, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("memory: decode memory %s: %w", id, err)
	}

	return &memory, nil
}

func (s *Store) CreateMemory(ctx context.Context, memory domain.Memory) error {
	doc := newMemoryDocument(memory)

	_, err := s.memories.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("memory: create memory %s: %w", doc.ID, err)
	}

	return nil
}

func (s *Store) EnsureConnection(ctx context.Context, conn domain.Connection) error {
	doc := newConnectionDocument(conn)

	_, err := s.connections.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("memory: ensure connection %s: %w", doc.ID, err)
	}

	return nil
}

func newMemoryDocument(memory domain.Memory) memoryDocument {
	return memoryDocument{
		ID:        memory.ID.String(),
		AgentID:   memory.AgentID.String(),
		UserID:    memory.UserID.String(),
		RoomID:    memory.RoomID.String(),
		Text:      memory.Content.Text,
		Source:    memory.Content.Source,
		URL:       memory.Content.URL,
		PostID:    string(memory.Content.PostID),
		CommentOn: optionalID(memory.Content.CommentOn),
		InReplyTo: optionalID(memory.Content.InReplyTo),
		Action:    memory.Content.Action,
		CreatedAt: memory.CreatedAt.UTC(),
	}
}

func (d memoryDocument) toDomain() (domain.Memory, error) {
	ids := make([]uuid.UUID, 4)
	for i, raw := range []string{d.ID, d.AgentID, d.UserID, d.RoomID} {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domain.Memory{}, err
		}
		ids[i] = parsed
	}

	commentOn, err := parseOptionalID(d.CommentOn)
	if err != nil {
		return domain.Memory{}, err
	}
	inReplyTo, err := parseOptionalID(d.InReplyTo)
	if err != nil {
		return domain.Memory{}, err
	}

	return domain.Memory{
		ID:      domain.MemoryID(ids[0]),
		AgentID: domain.AgentID(ids[1]),
		UserID:  domain.UserID(ids[2]),
		RoomID:  domain.RoomID(ids[3]),
		Content: domain.MemoryContent{
			Text:      d.Text,
			Source:    d.Source,
			URL:       d.URL,
			PostID:    domain.PostID(d.PostID),
			CommentOn: commentOn,
			InReplyTo: inReplyTo,
			Action:    d.Action,
		},
		CreatedAt: d.CreatedAt,
	}, nil
}

func newConnectionDocument(conn domain.Connection) connectionDocument {
	return connectionDocument{
		ID:      conn.UserID.String() + ":" + conn.RoomID.String(),
		UserID:  conn.UserID.String(),
		RoomID:  conn.RoomID.String(),
		Address: string(conn.Address),
		Name:    conn.Name,
		Source:  conn.Source,
	}
}

func optionalID(id *domain.MemoryID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

func parseOptionalID(raw string) (*domain.MemoryID, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	id := domain.MemoryID(parsed)

	return &id, nil
}
