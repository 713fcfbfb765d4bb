package session_test

import (
	"testing"

	"apontador/internal/api"
	"apontador/internal/session"
)

func TestProntoParaApontar(t *testing.T) {
	s := session.New()

	if s.ProntoParaApontar() {
		t.Error("empty selection must not be ready")
	}

	s.SetEquipe(api.Equipe{Codigo: 9, Descricao: "Mecânica"})
	s.SetFuncionario(api.Pessoa{Codigo: 7, Nome: "João", Equipe: 9})
	if s.ProntoParaApontar() {
		t.Error("selection without an order must not be ready")
	}

	s.SetOrdem(api.OrdemProducao{NrPreOrdem: "OP1", Produto: "Eixo"})
	if !s.ProntoParaApontar() {
		t.Error("member plus order must be ready")
	}
}

func TestChangingEquipeDiscardsFuncionario(t *testing.T) {
	s := session.New()

	s.SetEquipe(api.Equipe{Codigo: 9})
	s.SetFuncionario(api.Pessoa{Codigo: 7, Equipe: 9})

	s.SetEquipe(api.Equipe{Codigo: 10})
	if _, ok := s.Funcionario(); ok {
		t.Error("member from the previous team must be discarded")
	}

	// Re-selecting the same team keeps the member.
	s.SetEquipe(api.Equipe{Codigo: 10})
	s.SetFuncionario(api.Pessoa{Codigo: 12, Equipe: 10})
	s.SetEquipe(api.Equipe{Codigo: 10})
	if _, ok := s.Funcionario(); !ok {
		t.Error("re-selecting the same team must keep the member")
	}
}

func TestReset(t *testing.T) {
	s := session.New()

	s.SetEquipe(api.Equipe{Codigo: 9})
	s.SetFuncionario(api.Pessoa{Codigo: 7, Equipe: 9})
	s.SetOrdem(api.OrdemProducao{NrPreOrdem: "OP1"})

	s.Reset()

	if _, ok := s.Equipe(); ok {
		t.Error("Reset must clear the team")
	}
	if _, ok := s.Funcionario(); ok {
		t.Error("Reset must clear the member")
	}
	if _, ok := s.Ordem(); ok {
		t.Error("Reset must clear the order")
	}
	if s.ProntoParaApontar() {
		t.Error("Reset selection must not be ready")
	}
}
