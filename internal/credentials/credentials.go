// Package credentials persists the logged-in user's identity.
//
// Only the MD5 transport digest of the password is stored, never the raw
// password: the digest is exactly what Basic auth against the ERP needs,
// so re-authentication on restart keeps working without keeping the
// password recoverable at rest.
package credentials

import (
	"errors"
	"fmt"

	"apontador/internal/kvstore"
)

const (
	chaveUsuario = "usuario"
	chaveSenha   = "senha"
)

// ErrMissingCredentials is returned when no credentials have been stored
// yet, or only one half of the pair is present.
var ErrMissingCredentials = errors.New("credenciais não encontradas")

// Store reads and writes the credential pair in the key-value database.
type Store struct {
	kv *kvstore.Store
}

// NewStore wraps the given key-value store.
func NewStore(kv *kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Set persists the username and password digest, overwriting any prior
// pair. No validation is performed here; callers must authenticate first.
func (s *Store) Set(usuario, senhaMD5 string) error {
	if err := s.kv.Set(chaveUsuario, usuario); err != nil {
		return fmt.Errorf("saving usuario: %w", err)
	}
	if err := s.kv.Set(chaveSenha, senhaMD5); err != nil {
		return fmt.Errorf("saving senha: %w", err)
	}
	return nil
}

// Get returns the stored username and password digest. It fails with
// ErrMissingCredentials when either value is absent.
func (s *Store) Get() (usuario, senhaMD5 string, err error) {
	usuario, ok, err := s.kv.Get(chaveUsuario)
	if err != nil {
		return "", "", fmt.Errorf("reading usuario: %w", err)
	}
	if !ok || usuario == "" {
		return "", "", ErrMissingCredentials
	}
	senhaMD5, ok, err = s.kv.Get(chaveSenha)
	if err != nil {
		return "", "", fmt.Errorf("reading senha: %w", err)
	}
	if !ok || senhaMD5 == "" {
		return "", "", ErrMissingCredentials
	}
	return usuario, senhaMD5, nil
}

// Clear removes the stored pair. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	if err := s.kv.Delete(chaveUsuario); err != nil {
		return err
	}
	return s.kv.Delete(chaveSenha)
}
