// Package apontamento keeps the local log of time-tracking entries.
//
// The log is exclusively owned by the device: entries are created by the
// recording flow, edited by the pause flow and deleted explicitly, but
// never synchronized to the server. It is stored as one JSON array under
// a single key in the key-value database, and every operation is a full
// read-modify-write with no other I/O between load and persist.
package apontamento

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"apontador/internal/kvstore"
)

const chaveApontamentos = "apontamentos"

// Apontamento pairs an employee with a production order and a time window.
type Apontamento struct {
	// ID is assigned at creation. The original data shape had no
	// identity at all; entries were matched only by their field tuple.
	// The generated ID keeps two otherwise identical entries apart.
	ID              string `json:"id"`
	FuncionarioID   int    `json:"funcionarioId"`
	FuncionarioNome string `json:"funcionarioNome"`
	OrdemID         string `json:"ordemId"`
	Data            string `json:"data"`       // DD/MM/AAAA
	HoraInicio      string `json:"horaInicio"` // HH:MM
	HoraFim         string `json:"horaFim"`    // HH:MM
}

// Chave is the structural key used to address an entry for edit and
// delete: the full field tuple, ignoring the generated ID.
type Chave struct {
	FuncionarioID int
	OrdemID       string
	Data          string
	HoraInicio    string
	HoraFim       string
}

// ChaveDe extracts the structural key of an entry.
func ChaveDe(a Apontamento) Chave {
	return Chave{
		FuncionarioID: a.FuncionarioID,
		OrdemID:       a.OrdemID,
		Data:          a.Data,
		HoraInicio:    a.HoraInicio,
		HoraFim:       a.HoraFim,
	}
}

// Store persists the apontamento log.
type Store struct {
	kv *kvstore.Store
}

// NewStore wraps the given key-value store.
func NewStore(kv *kvstore.Store) *Store {
	return &Store{kv: kv}
}

// load reads the full list; an absent key is an empty log.
func (s *Store) load() ([]Apontamento, error) {
	raw, ok, err := s.kv.Get(chaveApontamentos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Apontamento{}, nil
	}
	var lista []Apontamento
	if err := json.Unmarshal([]byte(raw), &lista); err != nil {
		return nil, fmt.Errorf("corrupt apontamento log: %w", err)
	}
	return lista, nil
}

// persist writes the full list back.
func (s *Store) persist(lista []Apontamento) error {
	raw, err := json.Marshal(lista)
	if err != nil {
		return fmt.Errorf("marshalling apontamento log: %w", err)
	}
	return s.kv.Set(chaveApontamentos, string(raw))
}

// Append records a new entry, assigning it a fresh ID, and returns the
// stored entry. No deduplication is performed. On failure the persisted
// log is unchanged.
func (s *Store) Append(a Apontamento) (Apontamento, error) {
	lista, err := s.load()
	if err != nil {
		return Apontamento{}, err
	}
	a.ID = uuid.NewString()
	lista = append(lista, a)
	if err := s.persist(lista); err != nil {
		return Apontamento{}, err
	}
	return a, nil
}

// ListByFuncionario returns the entries for one employee in append order.
func (s *Store) ListByFuncionario(funcionarioID int) ([]Apontamento, error) {
	lista, err := s.load()
	if err != nil {
		return nil, err
	}
	return filtraPorFuncionario(lista, funcionarioID), nil
}

// UpdateHoraFim replaces the end time on the first entry matching chave,
// persists, and returns the refreshed view for that employee. The
// in-memory result is only produced after the write succeeded, so a
// failed write leaves both the log and the caller's view untouched.
func (s *Store) UpdateHoraFim(chave Chave, horaFim string) ([]Apontamento, error) {
	lista, err := s.load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lista {
		if ChaveDe(lista[i]) == chave {
			lista[i].HoraFim = horaFim
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("apontamento not found for funcionário %d, ordem %s", chave.FuncionarioID, chave.OrdemID)
	}

	if err := s.persist(lista); err != nil {
		return nil, err
	}
	return filtraPorFuncionario(lista, chave.FuncionarioID), nil
}

// Delete removes every entry whose full tuple equals a's tuple, persists,
// and returns the refreshed view for a's employee.
func (s *Store) Delete(a Apontamento) ([]Apontamento, error) {
	lista, err := s.load()
	if err != nil {
		return nil, err
	}

	alvo := ChaveDe(a)
	restantes := lista[:0:0]
	for _, e := range lista {
		if ChaveDe(e) != alvo {
			restantes = append(restantes, e)
		}
	}

	if err := s.persist(restantes); err != nil {
		return nil, err
	}
	return filtraPorFuncionario(restantes, a.FuncionarioID), nil
}

func filtraPorFuncionario(lista []Apontamento, funcionarioID int) []Apontamento {
	out := []Apontamento{}
	for _, a := range lista {
		if a.FuncionarioID == funcionarioID {
			out = append(out, a)
		}
	}
	return out
}
