package service

import "context"

// ModelService is the generative completion collaborator. Implementations
// pin the sampling parameters (low temperature and top_p, bounded output,
// JSON-shaped responses) and return the raw text of the top completion.
// The returned text is untrusted: nothing guarantees it matches the
// schema the prompt asked for.
type ModelService interface {
	GenerateAssessment(ctx context.Context, prompt string) (string, error)
}
