// Package session tracks what the supervisor currently has selected:
// one maintenance team, one of its members and one production order.
// The selection is transient, in-memory only, and is reset after a
// successful recording.
package session

import (
	"sync"

	"apontador/internal/api"
)

// Selecao holds the current selection.
type Selecao struct {
	mu          sync.Mutex
	equipe      *api.Equipe
	funcionario *api.Pessoa
	ordem       *api.OrdemProducao
}

// New returns an empty selection.
func New() *Selecao {
	return &Selecao{}
}

// SetEquipe selects a team. Changing teams discards the selected member,
// who belongs to the previous team.
func (s *Selecao) SetEquipe(e api.Equipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.equipe == nil || s.equipe.Codigo != e.Codigo {
		s.funcionario = nil
	}
	s.equipe = &e
}

// SetFuncionario selects a team member.
func (s *Selecao) SetFuncionario(p api.Pessoa) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcionario = &p
}

// SetOrdem selects a production order.
func (s *Selecao) SetOrdem(o api.OrdemProducao) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ordem = &o
}

// Equipe returns the selected team, if any.
func (s *Selecao) Equipe() (api.Equipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.equipe == nil {
		return api.Equipe{}, false
	}
	return *s.equipe, true
}

// Funcionario returns the selected member, if any.
func (s *Selecao) Funcionario() (api.Pessoa, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.funcionario == nil {
		return api.Pessoa{}, false
	}
	return *s.funcionario, true
}

// Ordem returns the selected order, if any.
func (s *Selecao) Ordem() (api.OrdemProducao, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ordem == nil {
		return api.OrdemProducao{}, false
	}
	return *s.ordem, true
}

// ProntoParaApontar reports whether a recording can be made: both a
// member and an order must be chosen.
func (s *Selecao) ProntoParaApontar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.funcionario != nil && s.ordem != nil
}

// Reset clears the whole selection. Called after a successful recording.
func (s *Selecao) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipe = nil
	s.funcionario = nil
	s.ordem = nil
}
