// Package api talks to the ERP's HTTP JSON interface.
//
// Every authenticated request carries Basic auth built from the username
// and the MD5 digest of the password; the raw password never goes on the
// wire. Building a client performs no network I/O — credentials are only
// validated when the server answers a real request.
package api

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"apontador/internal/credentials"
)

// Error taxonomy surfaced to commands. ErrMissingCredentials is re-exported
// from the credential store so callers can match every login-path failure
// against this package alone.
var (
	ErrMissingCredentials = credentials.ErrMissingCredentials
	ErrInvalidCredentials = errors.New("usuário ou senha inválidos")
	ErrServerUnreachable  = errors.New("erro ao conectar com o servidor")
)

// Client is an authenticated ERP API client.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// HashSenha derives the transport credential from a raw password.
// The ERP expects md5(password) as the Basic auth password.
func HashSenha(senha string) string {
	sum := md5.Sum([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// NewClient builds a client for baseURL authenticated as usuario with the
// given password digest. Keep-alive is disabled; the ERP front end drops
// idle connections aggressively.
func NewClient(baseURL, usuario, senhaMD5 string) *Client {
	basic := base64.StdEncoding.EncodeToString([]byte(usuario + ":" + senhaMD5))
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authHeader: "Basic " + basic,
		httpClient: &http.Client{
			Transport: &http.Transport{DisableKeepAlives: true},
		},
	}
}

// AuthenticatedClient builds a client from the persisted credential pair.
// It fails with ErrMissingCredentials, without any network call, when no
// pair is stored.
func AuthenticatedClient(creds *credentials.Store, baseURL string) (*Client, error) {
	usuario, senhaMD5, err := creds.Get()
	if err != nil {
		return nil, err
	}
	return NewClient(baseURL, usuario, senhaMD5), nil
}

// get issues an authenticated GET for path and decodes the JSON body into
// out. Failures map onto the package error taxonomy: 401 means the server
// rejected the credentials, everything else is a connectivity problem.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("%w: reading response body: %v", ErrServerUnreachable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrServerUnreachable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
