package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/appquanta/appquanta-backend/config"
)

// SupabaseVerifier validates bearer tokens against the Supabase Auth (GoTrue)
// REST API: GET {url}/auth/v1/user with the token in the Authorization header.
type SupabaseVerifier struct {
	baseURL string
	anonKey string
	client  *http.Client
}

func NewSupabaseVerifier(cfg *config.AuthConfig) *SupabaseVerifier {
	return &SupabaseVerifier{
		baseURL: strings.TrimRight(cfg.SupabaseURL, "/"),
		anonKey: cfg.SupabaseAnonKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verify resolves the token to a Supabase user ID. One round trip, no retries.
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", v.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token verification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token verification failed: status %d: %s", resp.StatusCode, string(body))
	}

	var user supabaseUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return "", fmt.Errorf("decode user response: %w", err)
	}
	if user.ID == "" {
		return "", fmt.Errorf("user response missing id")
	}

	return user.ID, nil
}
