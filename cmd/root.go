package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apontador",
	Short: "Apontador – registro de apontamentos das equipes de manutenção",
	Long: `apontador is a terminal front-end for maintenance-team work tracking.
It authenticates against the ERP, lists maintenance teams and open
production orders, and records apontamentos (employee × order × time
window) in a local log under ~/.apontador/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(equipesCmd)
	rootCmd.AddCommand(ordensCmd)
	rootCmd.AddCommand(apontarCmd)
	rootCmd.AddCommand(apontamentosCmd)
	rootCmd.AddCommand(pausarCmd)
	rootCmd.AddCommand(excluirCmd)
}
