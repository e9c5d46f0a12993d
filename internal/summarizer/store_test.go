package summarizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordEmbedder maps known words to fixed two-dimensional vectors so cosine
// ranking is deterministic in tests.
type wordEmbedder struct {
	vectors map[string][]float32
}

func (e *wordEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := e.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0}
		}
	}
	return out, nil
}

func newWordEmbedder() *wordEmbedder {
	return &wordEmbedder{vectors: map[string][]float32{
		"query":     {1, 0},
		"close":     {0.9, 0.1},
		"middling":  {0.5, 0.5},
		"unrelated": {0, 1},
	}}
}

func TestFileStoreHas(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), newWordEmbedder())
	require.NoError(t, err)

	assert.False(t, store.Has("u1"))
	require.NoError(t, store.Upsert(context.Background(), "u1", []string{"close"}))
	assert.True(t, store.Has("u1"))
	assert.False(t, store.Has("u2"))
}

func TestFileStoreRetrieveRanksByCosineSimilarity(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), newWordEmbedder())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "u1", []string{"unrelated", "close", "middling"}))

	got, err := store.Retrieve(ctx, "u1", "query", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "middling"}, got)

	// Asking for more than stored returns everything, best first
	got, err = store.Retrieve(ctx, "u1", "query", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "middling", "unrelated"}, got)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir, newWordEmbedder())
	require.NoError(t, err)
	require.NoError(t, store.Upsert(ctx, "u1", []string{"close"}))

	reopened, err := NewFileStore(dir, newWordEmbedder())
	require.NoError(t, err)
	assert.True(t, reopened.Has("u1"))

	got, err := reopened.Retrieve(ctx, "u1", "query", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"close"}, got)
}

func TestFileStoreUpsertAppends(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), newWordEmbedder())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "u1", []string{"unrelated"}))
	require.NoError(t, store.Upsert(ctx, "u1", []string{"close"}))

	got, err := store.Retrieve(ctx, "u1", "query", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "unrelated"}, got)
}

func TestFileStoreUpsertRejectsEmptyInput(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), newWordEmbedder())
	require.NoError(t, err)
	assert.Error(t, store.Upsert(context.Background(), "u1", nil))
}

func TestFileStoreRetrieveMissingUser(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), newWordEmbedder())
	require.NoError(t, err)

	got, err := store.Retrieve(context.Background(), "ghost", "query", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreSanitizesUserID(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, newWordEmbedder())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "../../evil", []string{"close"}))

	// The traversal prefix is stripped; the data stays inside the store dir
	assert.True(t, store.Has("evil"))
	assert.True(t, store.Has("../../evil"))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Zero(t, cosine([]float32{1, 0}, []float32{0, 0}))
	assert.Zero(t, cosine([]float32{1}, []float32{1, 0}))
}
