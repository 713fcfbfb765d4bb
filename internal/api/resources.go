package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
)

// Pessoa is a maintenance-team member.
type Pessoa struct {
	Codigo int    `json:"PEQ_CODIGO"`
	Nome   string `json:"PES_RAZAO"`
	Equipe int    `json:"PEQ_EQUIPE"`
}

// Equipe is a maintenance team snapshot as returned by the server.
// Snapshots are immutable on the client and replaced wholesale on each
// successful fetch.
type Equipe struct {
	Codigo    int      `json:"EQM_CODIGO"`
	Descricao string   `json:"EQM_DESCRICAO"`
	Pessoas   []Pessoa `json:"PESSOAS"`
}

// OrdemProducao is an open production order. NrPreOrdem is an opaque
// identifier; its format varies by server version (plain code or
// hierarchical path). DataEmissao is an OLE automation date double.
type OrdemProducao struct {
	NrPreOrdem  string  `json:"ODP_NRPREORDEM"`
	Produto     string  `json:"ODP_PRODUTO"`
	DataEmissao float64 `json:"ODP_DATAEMISSAO"`
}

// FetchEquipes lists maintenance teams with their members. equipeID 0 and
// zero filters mean "all teams".
func (c *Client) FetchEquipes(ctx context.Context, equipeID int) ([]Equipe, error) {
	var equipes []Equipe
	path := fmt.Sprintf("/api/v1/pcm/equipemanutencao/%d/0/0/0", equipeID)
	if err := c.get(ctx, path, &equipes); err != nil {
		return nil, fmt.Errorf("fetching equipes: %w", err)
	}
	return equipes, nil
}

// FetchOrdens lists production orders matching filtro, a server-specific
// expression of the form FIELD;OP;VAL1,VAL2. The expression is opaque to
// the client and travels base64-encoded as a path segment.
func (c *Client) FetchOrdens(ctx context.Context, filtro string) ([]OrdemProducao, error) {
	where := base64.StdEncoding.EncodeToString([]byte(filtro))

	var ordens []OrdemProducao
	path := fmt.Sprintf("/api/v1/pcp/ordensproducao/%s/0/0/0", url.PathEscape(where))
	if err := c.get(ctx, path, &ordens); err != nil {
		return nil, fmt.Errorf("fetching ordens: %w", err)
	}
	return ordens, nil
}
