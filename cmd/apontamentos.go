package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"apontador/internal/apontamento"
)

var apontamentosFuncionario int

var apontamentosCmd = &cobra.Command{
	Use:   "apontamentos",
	Short: "List the recorded apontamentos of one team member",
	Args:  cobra.NoArgs,
	RunE:  runApontamentos,
}

func init() {
	apontamentosCmd.Flags().IntVar(&apontamentosFuncionario, "funcionario", 0, "Employee code (required)")
	apontamentosCmd.MarkFlagRequired("funcionario")
}

func runApontamentos(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lista, err := a.log.ListByFuncionario(apontamentosFuncionario)
	if err != nil {
		return err
	}
	printApontamentos(lista)
	return nil
}

// printApontamentos groups entries by date and prints them in append order.
func printApontamentos(lista []apontamento.Apontamento) {
	if len(lista) == 0 {
		fmt.Println("Nenhum apontamento encontrado.")
		return
	}

	var currentDay string
	for _, e := range lista {
		if e.Data != currentDay {
			fmt.Println(e.Data)
			currentDay = e.Data
		}
		fmt.Printf("%s–%s  OS %s  %s\n", e.HoraInicio, e.HoraFim, e.OrdemID, e.FuncionarioNome)
	}
}

// describeApontamento renders one entry for selection menus.
func describeApontamento(a apontamento.Apontamento) string {
	return fmt.Sprintf("%s %s–%s  OS %s", a.Data, a.HoraInicio, a.HoraFim, a.OrdemID)
}
