package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
)

var hashCmd = &cobra.Command{
	Use:   "hash <file>",
	Short: "Print the content hash of a document",
	Long: `Hash computes the designated content hash of a file, the same
digest recorded in the audit trail and verified on decryption.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func runHash(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var digest [presswerk.HashSize]byte
	if r := presswerk.HashContent(data, &digest); r != presswerk.ResultOk {
		return fmt.Errorf("hash failed: %s (%s)", r, presswerk.LastError())
	}
	fmt.Printf("%s  %s\n", hex.EncodeToString(digest[:]), args[0])
	return nil
}
