package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk/audit"
)

var (
	auditPath  string
	auditLimit int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent audit log entries",
	Long: `Audit prints the most recent entries of the security audit trail,
newest first.

Example:
  presswerk audit --db audit.db --limit 20`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditPath, "db", "audit.db", "audit database file")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 20, "maximum entries to show")
}

func runAudit(cmd *cobra.Command, args []string) error {
	if !appConfig.AuditEnabled {
		return fmt.Errorf("audit logging is disabled in the configuration")
	}

	log, err := audit.Open(auditPath, nil)
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.Recent(auditLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("audit log is empty")
		return nil
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "FAILED"
		}
		fmt.Printf("%6d  %s  %-16s %-6s %s\n",
			e.ID, e.Timestamp.Format(time.RFC3339), e.Action, status, e.Details)
	}
	return nil
}
