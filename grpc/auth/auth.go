package auth

import (
	"context"
)

type Auth interface {
	// Verifies a Firebase ID token and returns it on success.
	Verify(ctx context.Context, token string) (string, error)
}
