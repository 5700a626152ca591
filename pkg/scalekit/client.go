package scalekit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// ErrMissingOrganization marks an identity response without any organization
// claim. That is a provider contract violation, not a user error.
var ErrMissingOrganization = errors.New("scalekit: no organization id in token claims")

// Identity is the subset of provider claims the application needs.
type Identity struct {
	Email          string
	Name           string
	OrganizationId string
}

// Client bridges the Scalekit-style OAuth provider: authorization URL
// construction and code-for-claims exchange. The environment URL is
// configurable so tests can point it at a local server.
type Client struct {
	conf   *oauth2.Config
	envURL string
	httpc  *http.Client
}

func New(envURL, clientID, clientSecret, redirectURI string, timeout time.Duration) *Client {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"openid", "profile", "email", "offline_access"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  envURL + "/oauth/authorize",
			TokenURL: envURL + "/oauth/token",
		},
	}

	return &Client{
		conf:   conf,
		envURL: envURL,
		httpc:  &http.Client{Timeout: timeout},
	}
}

// AuthorizationURL builds the provider redirect embedding the CSRF state the
// caller stashes in the sk_state cookie.
func (c *Client) AuthorizationURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// AuthenticateWithCode exchanges the authorization code and resolves identity
// claims from the provider's userinfo endpoint.
func (c *Client) AuthenticateWithCode(ctx context.Context, code string) (*Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpc)

	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.envURL+"/oauth/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading user info response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d: %s", resp.StatusCode, truncate(string(body), 500))
	}

	var claims struct {
		Email          string `json:"email"`
		Name           string `json:"name"`
		OrganizationId string `json:"organization_id"`
		OrgId          string `json:"org_id"`
		Oid            string `json:"oid"`
	}
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}

	if claims.Email == "" {
		return nil, errors.New("scalekit: no email in token claims")
	}

	// Providers have shipped the organization claim under several names.
	organizationId := claims.OrganizationId
	if organizationId == "" {
		organizationId = claims.OrgId
	}
	if organizationId == "" {
		organizationId = claims.Oid
	}
	if organizationId == "" {
		return nil, ErrMissingOrganization
	}

	name := claims.Name
	if name == "" {
		name = "anonymous"
	}

	return &Identity{
		Email:          claims.Email,
		Name:           name,
		OrganizationId: organizationId,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
