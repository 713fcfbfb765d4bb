package credentials_test

import (
	"errors"
	"path/filepath"
	"testing"

	"apontador/internal/credentials"
	"apontador/internal/kvstore"
)

func newStore(t *testing.T) *credentials.Store {
	t.Helper()
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "apontador.db"))
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return credentials.NewStore(kv)
}

func TestGetEmptyStore(t *testing.T) {
	s := newStore(t)

	_, _, err := s.Get()
	if !errors.Is(err, credentials.ErrMissingCredentials) {
		t.Fatalf("Get on empty store = %v, want ErrMissingCredentials", err)
	}
}

func TestSetThenGet(t *testing.T) {
	s := newStore(t)

	if err := s.Set("maria", "0f359740bd1cda994f8b55330c86d845"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	usuario, senha, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if usuario != "maria" {
		t.Errorf("usuario = %q, want %q", usuario, "maria")
	}
	if senha != "0f359740bd1cda994f8b55330c86d845" {
		t.Errorf("senha = %q, want stored digest", senha)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := newStore(t)

	if err := s.Set("maria", "aaa"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("joao", "bbb"); err != nil {
		t.Fatal(err)
	}
	usuario, senha, err := s.Get()
	if err != nil {
		t.Fatal(err)
	}
	if usuario != "joao" || senha != "bbb" {
		t.Errorf("Get = (%q, %q), want (%q, %q)", usuario, senha, "joao", "bbb")
	}
}

func TestClear(t *testing.T) {
	s := newStore(t)

	if err := s.Set("maria", "aaa"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, _, err := s.Get(); !errors.Is(err, credentials.ErrMissingCredentials) {
		t.Fatalf("Get after Clear = %v, want ErrMissingCredentials", err)
	}

	// Clearing again must be a no-op.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
