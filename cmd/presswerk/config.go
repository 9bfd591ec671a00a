package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		rec := appConfig.ServerConfigRecord()
		fmt.Printf("server_port:              %d\n", appConfig.ServerPort)
		fmt.Printf("server_require_tls:       %t\n", appConfig.ServerRequireTLS)
		fmt.Printf("auto_start_server:        %t\n", appConfig.AutoStartServer)
		fmt.Printf("auto_accept_network_jobs: %t\n", appConfig.AutoAcceptNetworkJobs)
		fmt.Printf("audit_enabled:            %t\n", appConfig.AuditEnabled)
		fmt.Printf("encryption_enabled:       %t\n", appConfig.EncryptionEnabled)
		fmt.Printf("print_timeout_secs:       %d\n", appConfig.PrintTimeoutSecs)
		fmt.Printf("query_timeout_secs:       %d\n", appConfig.QueryTimeoutSecs)
		fmt.Printf("boundary record:          port=%d require_tls=%t\n", rec.Port, rec.RequireTLS)
	},
}
