package ports

import "context"

// Recommender turns a prompt into free-form advice text.
type Recommender interface {
	Recommend(ctx context.Context, prompt string) (string, error)
}
