// Package insights talks to the learnings-extraction collaborator: an
// external LLM-backed service that distills what a user takes away from a
// dissolving relationship. Best-effort by contract: callers log failures
// and move on.
package insights

import (
	"context"

	"github.com/google/uuid"
)

// Stub is a no-op learnings extractor used until the real collaborator is
// wired in deployment.
type Stub struct{}

// NewStub creates a new no-op learnings extractor.
func NewStub() *Stub { return &Stub{} }

// ExtractLearnings does nothing and reports success.
func (s *Stub) ExtractLearnings(ctx context.Context, userID, coupleID uuid.UUID) error {
	return nil
}
