package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presswerk/presswerk-go/pkg/presswerk"
	"github.com/presswerk/presswerk-go/pkg/presswerk/abi"
)

var layoutPlatform string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Dump the reference struct layouts and check platform compliance",
	Long: `Layout prints every boundary struct with its field offsets, total
size, and alignment, then verifies the layouts against the pointer width of
the selected platform.

Example:
  presswerk layout
  presswerk layout job_info
  presswerk layout --platform wasm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&layoutPlatform, "platform", "linux", "target platform (linux, macos, ios, android, wasm)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	platform, ok := parsePlatform(layoutPlatform)
	if !ok {
		return fmt.Errorf("unknown platform %q", layoutPlatform)
	}

	layouts := abi.ReferenceLayouts()
	if len(args) == 1 {
		layouts = nil
		for _, l := range abi.ReferenceLayouts() {
			if l.Name() == args[0] {
				layouts = append(layouts, l)
			}
		}
		if len(layouts) == 0 {
			return fmt.Errorf("unknown layout %q", args[0])
		}
	}

	for _, layout := range layouts {
		fmt.Printf("%s (size=%d align=%d)\n", layout.Name(), layout.Size(), layout.Align())
		for _, f := range layout.Fields() {
			kind := ""
			if f.Pointer {
				kind = " ptr"
			}
			fmt.Printf("  %-16s offset=%-3d size=%-2d align=%d%s\n",
				f.Name, f.Offset, f.Size, f.Align, kind)
		}
		if err := layout.Compliant(platform.PointerWidth()); err != nil {
			fmt.Printf("  NOT compliant on %s: %v\n", platform, err)
		} else {
			fmt.Printf("  compliant on %s\n", platform)
		}
		fmt.Println()
	}
	return nil
}

func parsePlatform(name string) (presswerk.Platform, bool) {
	for _, p := range presswerk.AllPlatforms() {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}
