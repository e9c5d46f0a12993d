package summarizer

import "strings"

// Default chunking parameters for the retrieval store
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// separators tried in order when looking for a natural split point
var separators = []string{"\n\n", "\n", " "}

// SplitText splits text into chunks of at most size runes with the given
// overlap between consecutive chunks. Splits prefer paragraph, then line,
// then word boundaries near the chunk limit.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	var chunks []string

	start := 0
	for start < len(runes) {
		end := start + size
		if end >= len(runes) {
			chunk := strings.TrimSpace(string(runes[start:]))
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cut := findSplit(runes, start, end)
		chunk := strings.TrimSpace(string(runes[start:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}

// findSplit looks backwards from end for the best separator within the
// second half of the window, falling back to a hard cut.
func findSplit(runes []rune, start, end int) int {
	window := string(runes[start:end])
	half := (end - start) / 2
	for _, sep := range separators {
		if idx := strings.LastIndex(window, sep); idx > half {
			return start + len([]rune(window[:idx])) + len([]rune(sep))
		}
	}
	return end
}
