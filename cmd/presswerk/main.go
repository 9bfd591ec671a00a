// Command presswerk inspects and exercises the print-router contract layer:
// reference struct layouts, job state transitions, content hashing, and the
// audit trail.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// appConfig is loaded once by the root PersistentPreRunE.
	appConfig presswerk.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "presswerk",
	Short: "Presswerk contract-layer inspection tool",
	Long: `Presswerk exposes the print router's boundary contract from the
command line: dump the frozen struct layouts, validate job status
transitions, hash document content, and read the audit trail.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := presswerk.LoadConfig(configFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: built-in defaults)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(configCmd)
}
