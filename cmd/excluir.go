package cmd

import (
	"fmt"
	"strconv"

	"github.com/nexidian/gocliselect"
	"github.com/spf13/cobra"
)

var excluirFuncionario int

var excluirCmd = &cobra.Command{
	Use:   "excluir",
	Short: "Delete a recorded apontamento",
	Args:  cobra.NoArgs,
	RunE:  runExcluir,
}

func init() {
	excluirCmd.Flags().IntVar(&excluirFuncionario, "funcionario", 0, "Employee code (required)")
	excluirCmd.MarkFlagRequired("funcionario")
}

func runExcluir(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lista, err := a.log.ListByFuncionario(excluirFuncionario)
	if err != nil {
		return err
	}
	if len(lista) == 0 {
		fmt.Println("Nenhum apontamento encontrado.")
		return nil
	}

	menu := gocliselect.NewMenu("Excluir apontamento")
	for i, e := range lista {
		menu.AddItem(describeApontamento(e), strconv.Itoa(i))
	}
	i, err := chosenIndex(menu.Display(), len(lista))
	if err != nil {
		return err
	}

	// Removes every entry with the same field tuple; two identical
	// recordings are indistinguishable.
	restantes, err := a.log.Delete(lista[i])
	if err != nil {
		return fmt.Errorf("deleting apontamento: %w", err)
	}

	fmt.Println("Apontamento excluído.")
	printApontamentos(restantes)
	return nil
}
