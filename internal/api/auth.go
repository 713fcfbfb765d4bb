package api

import (
	"context"
	"fmt"
	"net/url"
)

// Usuario is the payload returned by the login verification endpoint.
type Usuario struct {
	Codigo string `json:"USU_CODIGO"`
	Nome   string `json:"USU_NOME"`
}

// Login validates the pair against the ERP with a single attempt. The
// supplied credentials are not persisted; callers save them through the
// credential store only after this succeeds.
//
// A 401 maps to ErrInvalidCredentials; any other failure (network, 5xx,
// timeout) maps to ErrServerUnreachable.
func Login(ctx context.Context, baseURL, usuario, senha string) (*Usuario, error) {
	client := NewClient(baseURL, usuario, HashSenha(senha))

	var u Usuario
	if err := client.get(ctx, "/api/v1/usuario/usuario/"+url.PathEscape(usuario), &u); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &u, nil
}
