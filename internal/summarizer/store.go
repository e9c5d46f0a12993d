package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
)

// Store is the per-user retrieval capability: upsert new chunks, retrieve
// the chunks most similar to a query.
type Store interface {
	Has(userID string) bool
	Retrieve(ctx context.Context, userID, query string, k int) ([]string, error)
	Upsert(ctx context.Context, userID string, chunks []string) error
}

// chunkRecord is one embedded chunk in a user's store file
type chunkRecord struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
}

// FileStore persists one JSON file of embedded chunks per user identity.
// Concurrent writes for the same user are last-write-wins, matching the
// rest of the system.
type FileStore struct {
	dir      string
	embedder Embedder
}

func NewFileStore(dir string, embedder Embedder) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileStore{dir: dir, embedder: embedder}, nil
}

// Has reports whether the user already has a store file
func (s *FileStore) Has(userID string) bool {
	_, err := os.Stat(s.path(userID))
	return err == nil
}

// Retrieve returns the k stored chunks most similar to the query
func (s *FileStore) Retrieve(ctx context.Context, userID, query string, k int) ([]string, error) {
	records, err := s.load(userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	queryVec := vectors[0]

	type scored struct {
		content string
		score   float64
	}
	ranked := make([]scored, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, scored{content: r.Content, score: cosine(queryVec, r.Embedding)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]string, k)
	for i := 0; i < k; i++ {
		results[i] = ranked[i].content
	}
	return results, nil
}

// Upsert embeds the chunks and appends them to the user's store file
func (s *FileStore) Upsert(ctx context.Context, userID string, chunks []string) error {
	if len(chunks) == 0 {
		return fmt.Errorf("no content to add to the retrieval store")
	}

	vectors, err := s.embedder.Embed(ctx, chunks)
	if err != nil {
		return err
	}

	records, err := s.load(userID)
	if err != nil {
		return err
	}
	for i, chunk := range chunks {
		records = append(records, chunkRecord{
			ID:        uuid.NewString(),
			Content:   chunk,
			Embedding: vectors[i],
		})
	}
	return s.save(userID, records)
}

func (s *FileStore) path(userID string) string {
	// filepath.Base keeps user identities from escaping the store dir
	return filepath.Join(s.dir, filepath.Base(userID)+".json")
}

func (s *FileStore) load(userID string) ([]chunkRecord, error) {
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store for %s: %w", userID, err)
	}
	var records []chunkRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode store for %s: %w", userID, err)
	}
	return records, nil
}

func (s *FileStore) save(userID string, records []chunkRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store for %s: %w", userID, err)
	}
	return os.Rename(tmp, s.path(userID))
}

// cosine similarity; 0 when either vector has no magnitude
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
