package summarizer

import "context"

// Provider condenses raw knowledge (scraped markdown, serialized CSV rows,
// pasted text) into the summary stored as KnowledgeSource content.
type Provider interface {
	Summarize(ctx context.Context, text string) (string, error)
}
