package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	memoriesFileMode = 0o600
	memoriesDirMode  = 0o700
	tempFilePattern  = ".memories-*.toml.tmp"
)

// Repository is the file-backed memory store used when no MongoDB is configured.
// Every write rewrites the whole file through a temp file and rename.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.MemoryStore  = (*Repository)(nil)
	_ ports.RoomRegistry = (*Repository)(nil)
)

func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("memory path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) GetMemoryByID(ctx context.Context, id domain.MemoryID) (*domain.Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	key := id.String()
	for _, entry := range file.Memories {
		if entry.ID != key {
			continue
		}
		memory, err := fromMemorySchema(entry)
		if err != nil {
			return nil, fmt.Errorf("decode memory %s: %w", key, err)
		}
		return &memory, nil
	}

	return nil, nil
}

func (r *Repository) CreateMemory(ctx context.Context, memory domain.Memory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toMemorySchema(memory)
	for _, entry := range file.Memories {
		if entry.ID == encoded.ID {
			return nil
		}
	}
	file.Memories = append(file.Memories, encoded)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) EnsureConnection(ctx context.Context, conn domain.Connection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toConnectionSchema(conn)
	updated := false
	for i := range file.Connections {
		if file.Connections[i].UserID == encoded.UserID && file.Connections[i].RoomID == encoded.RoomID {
			if file.Connections[i] == encoded {
				return nil
			}
			file.Connections[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Connections = append(file.Connections, encoded)
	}

	return r.writeSchema(file)
}

// Connections lists the participants registered in room.
func (r *Repository) Connections(ctx context.Context, room domain.RoomID) ([]domain.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	var out []domain.Connection
	for _, entry := range file.Connections {
		if entry.RoomID != room.String() {
			continue
		}
		conn, err := fromConnectionSchema(entry)
		if err != nil {
			return nil, fmt.Errorf("decode connection: %w", err)
		}
		out = append(out, conn)
	}

	return out, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read memories file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode memories file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve memory path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), memoriesDirMode); err != nil {
		return fmt.Errorf("create memories directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode memories file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp memories file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp memories file: %w", err)
	}
	if err := tempFile.Chmod(memoriesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp memories file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp memories file: %w", err)
	}
	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace memories file: %w", err)
	}

	cleanup = false

	return nil
}

func toMemorySchema(memory domain.Memory) memorySchema {
	return memorySchema{
		ID:      memory.ID.String(),
		AgentID: memory.AgentID.String(),
		UserID:  memory.UserID.String(),
		RoomID:  memory.RoomID.String(),
		Content: contentSchema{
			Text:      memory.Content.Text,
			Source:    memory.Content.Source,
			URL:       memory.Content.URL,
			PostID:    string(memory.Content.PostID),
			CommentOn: formatOptionalID(memory.Content.CommentOn),
			InReplyTo: formatOptionalID(memory.Content.InReplyTo),
			Action:    memory.Content.Action,
		},
		CreatedAt: formatTime(memory.CreatedAt),
	}
}

func fromMemorySchema(entry memorySchema) (domain.Memory, error) {
	id, err := uuid.Parse(entry.ID)
	if err != nil {
		return domain.Memory{}, err
	}
	agentID, err := uuid.Parse(entry.AgentID)
	if err != nil {
		return domain.Memory{}, err
	}
	userID, err := uuid.Parse(entry.UserID)
	if err != nil {
		return domain.Memory{}, err
	}
	roomID, err := uuid.Parse(entry.RoomID)
	if err != nil {
		return domain.Memory{}, err
	}
	commentOn, err := parseOptionalID(entry.Content.CommentOn)
	if err != nil {
		return domain.Memory{}, err
	}
	inReplyTo, err := parseOptionalID(entry.Content.InReplyTo)
	if err != nil {
		return domain.Memory{}, err
	}

	return domain.Memory{
		ID:      domain.MemoryID(id),
		AgentID: domain.AgentID(agentID),
		UserID:  domain.UserID(userID),
		RoomID:  domain.RoomID(roomID),
		Content: domain.MemoryContent{
			Text:      entry.Content.Text,
			Source:    entry.Content.Source,
			URL:       entry.Content.URL,
			PostID:    domain.PostID(entry.Content.PostID),
			CommentOn: commentOn,
			InReplyTo: inReplyTo,
			Action:    entry.Content.Action,
		},
		CreatedAt: parseTime(entry.CreatedAt),
	}, nil
}

func toConnectionSchema(conn domain.Connection) connectionSchema {
	return connectionSchema{
		UserID:  conn.UserID.String(),
		RoomID:  conn.RoomID.String(),
		Address: string(conn.Address),
		Name:    conn.Name,
		Source:  conn.Source,
	}
}

func fromConnectionSchema(entry connectionSchema) (domain.Connection, error) {
	userID, err := uuid.Parse(entry.UserID)
	if err != nil {
		return domain.Connection{}, err
	}
	roomID, err := uuid.Parse(entry.RoomID)
	if err != nil {
		return domain.Connection{}, err
	}

	return domain.Connection{
		UserID:  domain.UserID(userID),
		RoomID:  domain.RoomID(roomID),
		Address: domain.EvmAddress(entry.Address),
		Name:    entry.Name,
		Source:  entry.Source,
	}, nil
}

func formatOptionalID(id *domain.MemoryID) string {
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

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
