package knowledge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const (
	vectorDim        = 512
	defaultChunkSize = 800
)

var _ ports.KnowledgeBase = (*Index)(nil)

type entry struct {
	source string
	text   string
	vector []float32
}

// Index is an in-memory bag-of-words index over a folder of documents. Words are
// feature-hashed into fixed-size vectors, so no embedding model is required.
type Index struct {
	logger    *zap.Logger
	chunkSize int

	mu      sync.RWMutex
	entries []entry
}

func NewIndex(logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Index{logger: logger, chunkSize: defaultChunkSize}
}

// Load indexes every .txt, .md and .pdf file below dir. A missing directory leaves
// the index empty.
func (i *Index) Load(ctx context.Context, dir string) error {
	if dir == "" {
		return nil
	}

	var loaded []entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == dir {
				return fs.SkipAll
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		text, ok, err := readDocument(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if !ok {
			return nil
		}

		source, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			source = d.Name()
		}
		for _, chunk := range splitChunks(text, i.chunkSize) {
			loaded = append(loaded, entry{source: source, text: chunk, vector: vectorize(chunk)})
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("index knowledge %s: %w", dir, err)
	}

	i.mu.Lock()
	i.entries = append(i.entries, loaded...)
	total := len(i.entries)
	i.mu.Unlock()

	if len(loaded) == 0 {
		i.logger.Info("no knowledge documents found", zap.String("dir", dir))
		return nil
	}
	i.logger.Info("knowledge indexed", zap.String("dir", dir), zap.Int("chunks", len(loaded)), zap.Int("total", total))

	return nil
}

// Add indexes text directly under source.
func (i *Index) Add(source, text string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, chunk := range splitChunks(text, i.chunkSize) {
		i.entries = append(i.entries, entry{source: source, text: chunk, vector: vectorize(chunk)})
	}
}

func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.entries)
}

// Search returns up to topK chunks sharing vocabulary with query, best first.
func (i *Index) Search(ctx context.Context, query string, topK int) ([]domain.KnowledgeChunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	queryVec := vectorize(query)

	i.mu.RLock()
	results := make([]domain.KnowledgeChunk, 0, len(i.entries))
	for _, e := range i.entries {
		score := cosine(queryVec, e.vector)
		if score <= 0 {
			continue
		}
		results = append(results, domain.KnowledgeChunk{Source: e.source, Text: e.text, Score: score})
	}
	i.mu.RUnlock()

	slices.SortStableFunc(results, func(a, b domain.KnowledgeChunk) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results, nil
}

func readDocument(path string) (string, bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	case ".pdf":
		text, err := readPDF(path)
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	default:
		return "", false, nil
	}
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// splitChunks groups paragraphs into chunks of at most maxLen bytes. A single
// paragraph longer than maxLen becomes its own chunk.
func splitChunks(text string, maxLen int) []string {
	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(p)+2 > maxLen {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func vectorize(text string) []float32 {
	vec := make([]float32, vectorDim)
	for _, word := range tokens(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%vectorDim]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm = math.Sqrt(norm); norm > 0 {
		for idx := range vec {
			vec[idx] = float32(float64(vec[idx]) / norm)
		}
	}

	return vec
}

func cosine(a, b []float32) float32 {
	var dot, normA, normB float64
	for idx := range a {
		dot += float64(a[idx]) * float64(b[idx])
		normA += float64(a[idx]) * float64(a[idx])
		normB += float64(b[idx]) * float64(b[idx])
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return float32(dot / denom)
}
