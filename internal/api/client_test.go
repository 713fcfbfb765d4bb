package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"apontador/internal/api"
	"apontador/internal/credentials"
	"apontador/internal/kvstore"
)

func TestHashSenha(t *testing.T) {
	// md5("senha") — the digest the ERP expects as the Basic auth password.
	got := api.HashSenha("senha")
	want := "e8d95a51f3af4a3b134bf6bb680a213a"
	if got != want {
		t.Errorf("HashSenha(%q) = %q, want %q", "senha", got, want)
	}
}

func TestLoginSuccessSendsBasicAuthDigest(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(api.Usuario{Codigo: "maria", Nome: "Maria Silva"})
	}))
	defer srv.Close()

	u, err := api.Login(context.Background(), srv.URL, "maria", "senha")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Nome != "Maria Silva" {
		t.Errorf("Nome = %q, want %q", u.Nome, "Maria Silva")
	}
	if gotPath != "/api/v1/usuario/usuario/maria" {
		t.Errorf("path = %q, want %q", gotPath, "/api/v1/usuario/usuario/maria")
	}

	// Basic base64("maria:" + md5("senha"))
	want := "Basic bWFyaWE6ZThkOTVhNTFmM2FmNGEzYjEzNGJmNmJiNjgwYTIxM2E="
	if gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := api.Login(context.Background(), srv.URL, "maria", "errada")
	if !errors.Is(err, api.ErrInvalidCredentials) {
		t.Fatalf("Login with 401 = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := api.Login(context.Background(), srv.URL, "maria", "senha")
	if !errors.Is(err, api.ErrServerUnreachable) {
		t.Fatalf("Login with 500 = %v, want ErrServerUnreachable", err)
	}
}

func TestLoginNetworkError(t *testing.T) {
	// Grab a port and close it again so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := api.Login(context.Background(), srv.URL, "maria", "senha")
	if !errors.Is(err, api.ErrServerUnreachable) {
		t.Fatalf("Login against closed server = %v, want ErrServerUnreachable", err)
	}
}

func TestAuthenticatedClientWithoutCredentials(t *testing.T) {
	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "apontador.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, err = api.AuthenticatedClient(credentials.NewStore(kv), srv.URL)
	if !errors.Is(err, api.ErrMissingCredentials) {
		t.Fatalf("AuthenticatedClient = %v, want ErrMissingCredentials", err)
	}
	if calls != 0 {
		t.Errorf("expected no network call, server saw %d", calls)
	}
}

func TestFetchEquipes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/pcm/equipemanutencao/0/0/0/0" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]api.Equipe{
			{
				Codigo:    9,
				Descricao: "Manutenção Mecânica",
				Pessoas: []api.Pessoa{
					{Codigo: 7, Nome: "João", Equipe: 9},
					{Codigo: 8, Nome: "Ana", Equipe: 9},
				},
			},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, "maria", api.HashSenha("senha"))
	equipes, err := client.FetchEquipes(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchEquipes: %v", err)
	}
	if len(equipes) != 1 {
		t.Fatalf("len(equipes) = %d, want 1", len(equipes))
	}
	if equipes[0].Descricao != "Manutenção Mecânica" {
		t.Errorf("Descricao = %q", equipes[0].Descricao)
	}
	if len(equipes[0].Pessoas) != 2 || equipes[0].Pessoas[0].Nome != "João" {
		t.Errorf("Pessoas = %+v", equipes[0].Pessoas)
	}
}

func TestFetchOrdensEncodesFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// base64("ODP_STATUS;IN;A,P,E")
		want := "/api/v1/pcp/ordensproducao/T0RQX1NUQVRVUztJTjtBLFAsRQ==/0/0/0"
		if r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		json.NewEncoder(w).Encode([]api.OrdemProducao{
			{NrPreOrdem: "OP-0001.01", Produto: "Eixo", DataEmissao: 45658},
		})
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, "maria", api.HashSenha("senha"))
	ordens, err := client.FetchOrdens(context.Background(), "ODP_STATUS;IN;A,P,E")
	if err != nil {
		t.Fatalf("FetchOrdens: %v", err)
	}
	if len(ordens) != 1 || ordens[0].NrPreOrdem != "OP-0001.01" {
		t.Errorf("ordens = %+v", ordens)
	}
}
