package summarizer

import (
	"context"
	"fmt"
	"strings"
)

// retrievalQuery is the fixed similarity query used to pull prior context
const retrievalQuery = "email summary"

// retrievalK is how many stored chunks are pulled into the prompt
const retrievalK = 4

// Service orchestrates the summarization pipeline: chunk the new content,
// retrieve prior context for the user, build the prompt, generate, then
// upsert the new content into the user's store for future retrieval.
type Service struct {
	store        Store
	generator    Generator
	chunkSize    int
	chunkOverlap int
}

func NewService(store Store, generator Generator) *Service {
	return &Service{
		store:        store,
		generator:    generator,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
}

// Summarize produces a summary of docs for the given user identity
func (s *Service) Summarize(ctx context.Context, userID string, docs []string, userInstructions string) (string, error) {
	content := strings.Join(docs, "\n\n")

	var retrievedContext string
	if s.store.Has(userID) {
		retrieved, err := s.store.Retrieve(ctx, userID, retrievalQuery, retrievalK)
		if err != nil {
			return "", fmt.Errorf("failed to retrieve context: %w", err)
		}
		retrievedContext = strings.Join(retrieved, "\n\n")
	}

	prompt := BuildPrompt(content, retrievedContext, userInstructions)

	summary, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	var chunks []string
	for _, doc := range docs {
		chunks = append(chunks, SplitText(doc, s.chunkSize, s.chunkOverlap)...)
	}
	if err := s.store.Upsert(ctx, userID, chunks); err != nil {
		return "", fmt.Errorf("failed to update retrieval store: %w", err)
	}

	return summary, nil
}
