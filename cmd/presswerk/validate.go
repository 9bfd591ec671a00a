package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
)

var validateCmd = &cobra.Command{
	Use:   "validate <from> <to>",
	Short: "Check whether a job status transition is legal",
	Long: `Validate checks one job status transition against the lifecycle
rules and reports the boundary result code.

Example:
  presswerk validate pending processing
  presswerk validate completed pending`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	from, ok := presswerk.ParseJobStatus(args[0])
	if !ok {
		return fmt.Errorf("unknown status %q (known: %s)", args[0], knownStatuses())
	}
	to, ok := presswerk.ParseJobStatus(args[1])
	if !ok {
		return fmt.Errorf("unknown status %q (known: %s)", args[1], knownStatuses())
	}

	r := presswerk.ValidateTransition(from, to)
	if r == presswerk.ResultOk {
		fmt.Printf("%s -> %s: ok\n", from, to)
		return nil
	}
	fmt.Printf("%s -> %s: %s (%s)\n", from, to, r, presswerk.LastError())
	if next := presswerk.LegalNextStatuses(from); len(next) > 0 {
		names := make([]string, len(next))
		for i, s := range next {
			names[i] = s.String()
		}
		fmt.Printf("legal from %s: %s\n", from, strings.Join(names, ", "))
	} else {
		fmt.Printf("%s is terminal\n", from)
	}
	return nil
}

func knownStatuses() string {
	var names []string
	for _, s := range presswerk.AllJobStatuses() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
