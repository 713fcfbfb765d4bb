package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"apontador/internal/api"
	"apontador/internal/apontamento"
	"apontador/internal/config"
	"apontador/internal/credentials"
	"apontador/internal/kvstore"
	"apontador/internal/poll"
)

// app bundles the stores every command needs.
type app struct {
	cfg   config.Config
	kv    *kvstore.Store
	creds *credentials.Store
	log   *apontamento.Store
}

func openApp() (*app, error) {
	base, err := config.BaseDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(base)
	if err != nil {
		return nil, err
	}
	kv, err := kvstore.Open(filepath.Join(base, "apontador.db"))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:   cfg,
		kv:    kv,
		creds: credentials.NewStore(kv),
		log:   apontamento.NewStore(kv),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Aviso: closing storage: %v\n", err)
	}
}

// client builds an authenticated API client from the persisted credentials.
func (a *app) client() (*api.Client, error) {
	c, err := api.AuthenticatedClient(a.creds, a.cfg.BaseURL)
	if errors.Is(err, api.ErrMissingCredentials) {
		return nil, fmt.Errorf("%w: execute 'apontador login <usuario>'", err)
	}
	return c, err
}

func (a *app) pollInterval() time.Duration {
	return time.Duration(a.cfg.PollIntervalSeconds) * time.Second
}

// interruptCtx returns a context cancelled by Ctrl-C, so polling sessions
// are torn down instead of leaking their timers.
func interruptCtx() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// fetchEquipes polls the team listing until it is non-empty.
func (a *app) fetchEquipes(ctx context.Context, client *api.Client) ([]api.Equipe, error) {
	sess := poll.New("equipes", a.pollInterval(), func(ctx context.Context) ([]api.Equipe, error) {
		return client.FetchEquipes(ctx, a.cfg.EquipeID)
	})
	sess.Start(ctx)
	defer sess.Stop()

	fmt.Println("Carregando equipes...")
	return sess.Wait(ctx)
}

// fetchOrdens polls the open-order listing until it is non-empty.
func (a *app) fetchOrdens(ctx context.Context, client *api.Client) ([]api.OrdemProducao, error) {
	sess := poll.New("ordens", a.pollInterval(), func(ctx context.Context) ([]api.OrdemProducao, error) {
		return client.FetchOrdens(ctx, a.cfg.OrdemFiltro)
	})
	sess.Start(ctx)
	defer sess.Stop()

	fmt.Println("Carregando ordens...")
	return sess.Wait(ctx)
}
