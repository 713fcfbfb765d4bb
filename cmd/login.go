package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/term"
	"github.com/spf13/cobra"

	"apontador/internal/api"
)

var loginSenha string

var loginCmd = &cobra.Command{
	Use:   "login <usuario>",
	Short: "Authenticate against the ERP and persist the credentials",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginSenha, "senha", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	usuario := args[0]

	senha := loginSenha
	if senha == "" {
		fmt.Print("Senha: ")
		s, err := readSenha()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		senha = s
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := interruptCtx()
	defer stop()

	// Single attempt; credentials are only persisted after the server
	// accepted them.
	u, err := api.Login(ctx, a.cfg.BaseURL, usuario, senha)
	if err != nil {
		return err
	}

	if err := a.creds.Set(usuario, api.HashSenha(senha)); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	nome := u.Nome
	if nome == "" {
		nome = usuario
	}
	fmt.Printf("Login realizado com sucesso. Bem-vindo, %s.\n", nome)
	return nil
}

// readSenha reads the password from the terminal without echoing it.
// Without a controlling terminal (pipes, tests) it falls back to a plain
// stdin line read.
func readSenha() (string, error) {
	tty, err := term.Open("/dev/tty")
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
	defer tty.Close()

	if err := term.RawMode(tty); err != nil {
		return "", err
	}
	defer tty.Restore()

	var senha []byte
	buf := make([]byte, 1)
	for {
		n, err := tty.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		switch buf[0] {
		case '\r', '\n':
			fmt.Print("\r\n")
			return string(senha), nil
		case 3: // ctrl-c
			fmt.Print("\r\n")
			return "", errAborted
		case 8, 127: // backspace
			if len(senha) > 0 {
				senha = senha[:len(senha)-1]
			}
		default:
			senha = append(senha, buf[0])
		}
	}
}
