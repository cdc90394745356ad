package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	fbAuth "firebase.google.com/go/auth"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/protein-alphabet/proteintext/pkg/utils"
)

type FirebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbAuth.Token, error)
}

type Authenticator struct {
	client FirebaseAuthClient
	// Accepted e-mail domains. Empty accepts any verified account.
	allowedDomains []string
}

func New(client FirebaseAuthClient, allowedDomains []string) *Authenticator {
	return &Authenticator{
		client:         client,
		allowedDomains: utils.Map(allowedDomains, strings.ToLower),
	}
}

func (a *Authenticator) Verify(ctx context.Context, token string) (string, error) {
	decodedToken, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
	}
	if len(a.allowedDomains) == 0 {
		return token, nil
	}

	email, ok := decodedToken.Claims["email"].(string)
	if !ok {
		return "", fmt.Errorf("failed to verify the token: invalid email in claim")
	}

	address, err := mail.ParseAddress(email)
	if err != nil {
		return "", fmt.Errorf("failed to verify the token: invalid email format")
	}
	_, domain, found := strings.Cut(address.Address, "@")
	if !found || strings.Contains(domain, "@") {
		return "", fmt.Errorf("failed to verify the token: malformed email structure (expected single '@')")
	}
	if !utils.Contains(a.allowedDomains, strings.ToLower(domain)) {
		return "", fmt.Errorf("failed to verify the token: invalid email domain")
	}

	return token, nil
}
