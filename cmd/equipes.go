package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"apontador/internal/api"
)

var equipesCmd = &cobra.Command{
	Use:   "equipes",
	Short: "List maintenance teams and their members",
	Args:  cobra.NoArgs,
	RunE:  runEquipes,
}

func runEquipes(cmd *cobra.Command, args []string) error {
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

	equipes, err := a.fetchEquipes(ctx, client)
	if err != nil {
		return err
	}

	printEquipes(equipes)
	return nil
}

func printEquipes(equipes []api.Equipe) {
	for _, e := range equipes {
		fmt.Printf("%d  %s\n", e.Codigo, e.Descricao)
		if len(e.Pessoas) == 0 {
			fmt.Println("    (nenhum funcionário)")
			continue
		}
		for _, p := range e.Pessoas {
			fmt.Printf("    %d  %s\n", p.Codigo, p.Nome)
		}
	}
}
