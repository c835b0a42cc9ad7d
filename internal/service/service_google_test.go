package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestNewGoogleVerifier_EmptyClientID(t *testing.T) {
	assert.Nil(t, NewGoogleVerifier(""))
}

func TestGoogleVerifier_Verify(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
		wantErr bool
		wantSub string
	}{
		{
			name: "verified",
			payload: &idtoken.Payload{Subject: "g-1", Claims: map[string]any{
				"email": "ann@example.com", "email_verified": true, "name": "Ann",
			}},
			wantSub: "g-1",
		},
		{
			name:    "unverified email",
			payload: &idtoken.Payload{Subject: "g-1", Claims: map[string]any{"email": "ann@example.com", "email_verified": false}},
			wantErr: true,
		},
		{
			name:    "no email",
			payload: &idtoken.Payload{Subject: "g-1", Claims: map[string]any{}},
			wantErr: true,
		},
		{
			name:    "validation failure",
			err:     errors.New("audience mismatch"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &googleVerifier{
				clientID: "client-1",
				validate: func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
					assert.Equal(t, "raw-token", idToken)
					assert.Equal(t, "client-1", audience)
					return tt.payload, tt.err
				},
			}

			got, err := v.Verify(context.Background(), "raw-token")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, got.Subject)
			assert.Equal(t, "ann@example.com", got.Email)
			assert.Equal(t, "Ann", got.Name)
		})
	}
}
