// Package cmd implements the controls CLI commands.
//
// A root command dispatches to subcommands (preview, demo, version), each
// registered from its own file.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/theme"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "controls",
	Short: "Render and try out selection controls",
	Long: `controls renders radio button panels and three-way selectors described
by scene files, either to PNG or interactively in the terminal.

Use "controls <command> --help" for more information about a command.`,
	Usage: "controls <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	subcommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subcommands = append(subcommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the CLI with args, which exclude the program name.
func ExecuteArgs(args []string) error {
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp()
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version":
			if len(filtered) == 0 {
				printVersion()
				return nil
			}
			filtered = append(filtered, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		default:
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	if len(args) == 0 {
		printHelp()
		return nil
	}

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp()
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range subcommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Report errors with kind and stack")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  controls preview --scene panel.yaml --out panel.png")
	fmt.Println("  controls demo --scene switch.yaml --theme ocean.toml")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// flagValue returns the value of a "--name value" or "--name=value" flag at
// args[i], and how many extra arguments it consumed. Single-dash spellings
// are accepted too.
func flagValue(args []string, i int, name string) (value string, skip int, ok bool, err error) {
	arg := args[i]
	for _, prefix := range []string{"--" + name, "-" + name} {
		if arg == prefix {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
				return "", 0, true, fmt.Errorf("%s requires a value", prefix)
			}
			return args[i+1], 1, true, nil
		}
		if v, found := strings.CutPrefix(arg, prefix+"="); found {
			return v, 0, true, nil
		}
	}
	return "", 0, false, nil
}

// loadTheme returns the theme at path, or the light default when path is
// empty.
func loadTheme(path string) (*theme.ThemeData, error) {
	if path == "" {
		return theme.DefaultLightTheme(), nil
	}
	return theme.Load(path)
}
