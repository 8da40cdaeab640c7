package embedding

import "context"

// Provider maps text to a fixed-length vector. Implementations are pure
// request/response wrappers around external embedding APIs; the dimensionality
// must match the vector column of the profile index.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
