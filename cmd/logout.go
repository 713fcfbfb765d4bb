package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted credentials",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.creds.Clear(); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	fmt.Println("Credenciais removidas.")
	return nil
}
