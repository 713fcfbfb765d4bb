package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/nexidian/gocliselect"
	"github.com/spf13/cobra"

	"apontador/internal/apontamento"
	"apontador/internal/inputmask"
)

var pausarFuncionario int

var pausarCmd = &cobra.Command{
	Use:   "pausar",
	Short: "Change the end time of a recorded apontamento",
	Args:  cobra.NoArgs,
	RunE:  runPausar,
}

func init() {
	pausarCmd.Flags().IntVar(&pausarFuncionario, "funcionario", 0, "Employee code (required)")
	pausarCmd.MarkFlagRequired("funcionario")
}

func runPausar(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lista, err := a.log.ListByFuncionario(pausarFuncionario)
	if err != nil {
		return err
	}
	if len(lista) == 0 {
		fmt.Println("Nenhum apontamento encontrado.")
		return nil
	}

	menu := gocliselect.NewMenu("Apontamento")
	for i, e := range lista {
		menu.AddItem(describeApontamento(e), strconv.Itoa(i))
	}
	i, err := chosenIndex(menu.Display(), len(lista))
	if err != nil {
		return err
	}
	alvo := lista[i]

	reader := bufio.NewReader(os.Stdin)
	fim, err := promptMasked(reader, "Nova hora fim", "HH:MM", inputmask.MascaraHora, inputmask.HoraCompleta)
	if err != nil {
		return err
	}

	atualizados, err := a.log.UpdateHoraFim(apontamento.ChaveDe(alvo), fim)
	if err != nil {
		return fmt.Errorf("updating apontamento: %w", err)
	}

	fmt.Println("Apontamento atualizado.")
	printApontamentos(atualizados)
	return nil
}
