package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(presswerk.BuildInfo())
	},
}
