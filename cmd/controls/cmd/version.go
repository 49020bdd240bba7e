package cmd

import (
	"fmt"

	"github.com/go-drift/controls/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Print the CLI version, build time and the newest theme file version it reads.`,
		Usage: "controls version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Printf("controls version %s (built %s)\n", Version, BuildTime)
	fmt.Printf("theme files up to %s\n", theme.SupportedVersion)
}
