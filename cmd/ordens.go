package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"apontador/internal/api"
	"apontador/internal/oadate"
)

var ordensCmd = &cobra.Command{
	Use:   "ordens",
	Short: "List open production orders",
	Args:  cobra.NoArgs,
	RunE:  runOrdens,
}

func runOrdens(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	client, err := a.client()
	if err != nil {
		return err
	}

	ctx, stop := interruptCtx()
	defer stop()

	ordens, err := a.fetchOrdens(ctx, client)
	if err != nil {
		return err
	}

	printOrdens(ordens)
	return nil
}

func printOrdens(ordens []api.OrdemProducao) {
	for _, o := range ordens {
		fmt.Printf("OS %s  %s%s\n", o.NrPreOrdem, o.Produto, emissao(o))
	}
}

// emissao renders the order's emission date, an OLE automation double.
// Orders without one (older server versions) render nothing.
func emissao(o api.OrdemProducao) string {
	if o.DataEmissao == 0 {
		return ""
	}
	return "  (emitida " + oadate.FromOADate(o.DataEmissao).Format("02/01/2006") + ")"
}
