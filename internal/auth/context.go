package auth

import (
	"context"
	"fmt"

	"github.com/lawdesk/casetrack-backend/pkg/ctxutil"
)

// AuthorizeContext validates a bearer actor token and returns a context
// carrying the actor ID, ready for the audit trail to stamp changes with.
func (m *JWTManager) AuthorizeContext(ctx context.Context, token string) (context.Context, error) {
	actorID, _, err := m.ValidateActorToken(token)
	if err != nil {
		return nil, fmt.Errorf("authorize: %w", err)
	}
	return ctxutil.WithActorID(ctx, actorID), nil
}
