package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nexidian/gocliselect"
	"github.com/spf13/cobra"

	"apontador/internal/apontamento"
	"apontador/internal/inputmask"
	"apontador/internal/session"
)

var errAborted = errors.New("seleção cancelada")

var apontarCmd = &cobra.Command{
	Use:   "apontar",
	Short: "Record an apontamento for a team member on a production order",
	Args:  cobra.NoArgs,
	RunE:  runApontar,
}

func runApontar(cmd *cobra.Command, args []string) error {
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

	sel := session.New()

	// Equipe.
	equipes, err := a.fetchEquipes(ctx, client)
	if err != nil {
		return err
	}
	menu := gocliselect.NewMenu("Equipe")
	for i, e := range equipes {
		menu.AddItem(fmt.Sprintf("%s (%d)", e.Descricao, e.Codigo), strconv.Itoa(i))
	}
	i, err := chosenIndex(menu.Display(), len(equipes))
	if err != nil {
		return err
	}
	sel.SetEquipe(equipes[i])

	// Funcionário.
	equipe, _ := sel.Equipe()
	if len(equipe.Pessoas) == 0 {
		return fmt.Errorf("equipe %s não tem funcionários", equipe.Descricao)
	}
	menu = gocliselect.NewMenu("Funcionário")
	for i, p := range equipe.Pessoas {
		menu.AddItem(fmt.Sprintf("%s (%d)", p.Nome, p.Codigo), strconv.Itoa(i))
	}
	i, err = chosenIndex(menu.Display(), len(equipe.Pessoas))
	if err != nil {
		return err
	}
	sel.SetFuncionario(equipe.Pessoas[i])

	// Ordem.
	ordens, err := a.fetchOrdens(ctx, client)
	if err != nil {
		return err
	}
	menu = gocliselect.NewMenu("Ordem de produção")
	for i, o := range ordens {
		menu.AddItem(fmt.Sprintf("OS %s — %s", o.NrPreOrdem, o.Produto), strconv.Itoa(i))
	}
	i, err = chosenIndex(menu.Display(), len(ordens))
	if err != nil {
		return err
	}
	sel.SetOrdem(ordens[i])

	if !sel.ProntoParaApontar() {
		return errAborted
	}

	// Time window.
	reader := bufio.NewReader(os.Stdin)
	data, err := promptMasked(reader, "Data", "DD/MM/AAAA", inputmask.MascaraData, inputmask.DataCompleta)
	if err != nil {
		return err
	}
	inicio, err := promptMasked(reader, "Hora início", "HH:MM", inputmask.MascaraHora, inputmask.HoraCompleta)
	if err != nil {
		return err
	}
	fim, err := promptMasked(reader, "Hora fim", "HH:MM", inputmask.MascaraHora, inputmask.HoraCompleta)
	if err != nil {
		return err
	}

	funcionario, _ := sel.Funcionario()
	ordem, _ := sel.Ordem()
	saved, err := a.log.Append(apontamento.Apontamento{
		FuncionarioID:   funcionario.Codigo,
		FuncionarioNome: funcionario.Nome,
		OrdemID:         ordem.NrPreOrdem,
		Data:            data,
		HoraInicio:      inicio,
		HoraFim:         fim,
	})
	if err != nil {
		return fmt.Errorf("saving apontamento: %w", err)
	}

	// Recording done; the selection starts over.
	sel.Reset()

	fmt.Println("Apontamento registrado:")
	fmt.Printf("  Funcionário: %d - %s\n", saved.FuncionarioID, saved.FuncionarioNome)
	fmt.Printf("  Ordem: %s\n", saved.OrdemID)
	fmt.Printf("  Data: %s  Início: %s  Fim: %s\n", saved.Data, saved.HoraInicio, saved.HoraFim)
	return nil
}

// chosenIndex validates a menu choice against the item count. An empty
// choice means the user backed out.
func chosenIndex(choice string, n int) (int, error) {
	if choice == "" {
		return 0, errAborted
	}
	i, err := strconv.Atoi(choice)
	if err != nil || i < 0 || i >= n {
		return 0, errAborted
	}
	return i, nil
}

// promptMasked reads a line, applies the typing mask and repeats until the
// value is complete.
func promptMasked(reader *bufio.Reader, label, placeholder string, mask func(string) string, complete func(string) bool) (string, error) {
	for {
		fmt.Printf("%s (%s): ", label, placeholder)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", label, err)
		}
		v := mask(strings.TrimSpace(line))
		if complete(v) {
			return v, nil
		}
		fmt.Printf("Valor incompleto %q, tente novamente.\n", v)
	}
}
