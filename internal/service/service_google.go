package service

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/MKhiriev/sheetcharts/models"
)

var errGoogleEmailNotVerified = errors.New("google account e-mail is not verified")

type googleVerifier struct {
	clientID string
	validate func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier returns a GoogleVerifier accepting ID tokens issued for
// clientID, or nil when clientID is empty.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if clientID == "" {
		return nil
	}
	return &googleVerifier{clientID: clientID, validate: idtoken.Validate}
}

func (g *googleVerifier) Verify(ctx context.Context, idToken string) (models.GoogleIdentity, error) {
	payload, err := g.validate(ctx, idToken, g.clientID)
	if err != nil {
		return models.GoogleIdentity{}, fmt.Errorf("validating google id token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" || payload.Subject == "" {
		return models.GoogleIdentity{}, errors.New("google id token has no subject or e-mail")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return models.GoogleIdentity{}, errGoogleEmailNotVerified
	}

	name, _ := payload.Claims["name"].(string)

	return models.GoogleIdentity{Subject: payload.Subject, Email: email, Name: name}, nil
}
