package simsdk

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/simapi/pkg/httpx"
)

const tokenPath = "/oauth/token"

// BasicCredentials returns base64(clientID:clientSecret), the value sent after
// "Basic " on token requests.
func BasicCredentials(clientID, clientSecret string) string {
	return base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
}

// Header renders the token as an Authorization header value.
func (t *AccessToken) Header() string {
	return t.TokenType + " " + t.Value
}

// Scopes splits the granted scope into its fields.
func (t *AccessToken) Scopes() []string {
	return httpx.ParseSpaceDelimitedFields(t.Scope)
}

// FetchToken requests a new access token using the OAuth2 client_credentials
// grant. Each call performs a full round trip; nothing is cached.
func (c *Client) FetchToken(ctx context.Context) (*AccessToken, error) {
	data := url.Values{
		"grant_type": {"client_credentials"},
	}

	endpoint := c.url(tokenPath)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", httpx.ContentTypeForm)
	req.Header.Set("Authorization", "Basic "+BasicCredentials(c.clientID, c.clientSecret))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: endpoint, Err: err}
	}

	body, err := httpx.ReadBody(resp)
	if err != nil {
		return nil, &AuthError{StatusCode: resp.StatusCode, Err: err}
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, &AuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to decode token response: %w", err),
		}
	}

	if tokenResp.AccessToken == "" {
		c.logger(ctx).Warn("token request rejected",
			"status", resp.StatusCode,
			"error", tokenResp.Error,
		)
		return nil, &AuthError{
			StatusCode:  resp.StatusCode,
			Code:        tokenResp.Error,
			Description: tokenResp.ErrorDescription,
		}
	}

	token := &AccessToken{
		Value:     tokenResp.AccessToken,
		TokenType: tokenResp.TokenType,
		Scope:     tokenResp.Scope,
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}
	if tokenResp.ExpiresIn != "" {
		expiresIn, err := tokenResp.ExpiresIn.Int64()
		if err != nil {
			return nil, &AuthError{
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("invalid expires_in %q: %w", tokenResp.ExpiresIn, err),
			}
		}
		token.ExpiresIn = int(expiresIn)
	}

	return token, nil
}
