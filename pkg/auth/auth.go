// Package auth reads bearer credentials off incoming gRPC and HTTP requests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/grpc/metadata"
)

// HeaderName is the header, or gRPC metadata key, carrying the credentials.
const HeaderName = "Authorization"

var ErrMissingToken = errors.New("missing authorization token")

// TokenFromContext returns the bearer token of an incoming gRPC call.
// Exactly one authorization value must be present.
func TokenFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", fmt.Errorf("missing context metadata: %w", ErrMissingToken)
	}
	values := md.Get(HeaderName)
	if len(values) != 1 {
		return "", ErrMissingToken
	}
	return ParseBearer(values[0])
}

// TokenFromRequest returns the bearer token of an HTTP request.
func TokenFromRequest(r *http.Request) (string, error) {
	values := r.Header.Values(HeaderName)
	if len(values) == 0 {
		return "", ErrMissingToken
	}
	if len(values) > 1 {
		return "", fmt.Errorf("%d authorization headers, want 1", len(values))
	}
	return ParseBearer(values[0])
}

// ParseBearer extracts the token from a "Bearer <token>" header value.
// The scheme is matched case-insensitively.
func ParseBearer(header string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", fmt.Errorf("invalid authorization header format, expected 'Bearer <token>'")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	if strings.ContainsAny(token, " \t") {
		return "", fmt.Errorf("authorization token must not contain whitespace")
	}
	return token, nil
}
