// Package cli provides command-line interface functionality for numdelta.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/numdelta/internal/errors"
	"github.com/AndreyAkinshin/numdelta/internal/output"
	"github.com/AndreyAkinshin/numdelta/internal/version"
)

// out is the shared output writer for all commands.
var out = output.New()

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return errors.ExitSuccess
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return errors.ExitSuccess
	case "--version", "version":
		fmt.Println(version.String())
		return errors.ExitSuccess
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}

	if len(remaining) == 0 {
		printUsage()
		return errors.ExitSuccess
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(cmdArgs, opts)
	case "validate":
		return cmdValidate(cmdArgs)
	default:
		out.ErrorPrefix("unknown command %q (run 'numdelta help' for usage)", cmd)
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	ConfigPath string
	Quiet      bool
	NoColor    bool
}

// parseGlobalFlags manually parses global flags from arguments.
// Manual parsing keeps flags position-independent: "numdelta run -q file.yaml"
// and "numdelta -q run file.yaml" are equivalent.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	return opts, remaining, nil
}

func printUsage() {
	w := output.New()

	w.Println("numdelta - tolerance-based numeric assertions")
	w.Println("")
	w.Println("Usage:")
	w.Println("  numdelta run [files...]      Run case files and emit TAP output")
	w.Println("  numdelta validate <files>    Validate config or case files against their schemas")
	w.Println("  numdelta version             Show version information")
	w.Println("")
	w.Println("Global Flags:")
	w.Println("  --config=<path>   Configuration file (default: %s)", "numdelta.json")
	w.Println("  -q, --quiet       Minimal output (TAP and errors only)")
	w.Println("  --no-color        Disable ANSI colors")
	w.Println("  -h, --help        Show this help")
	w.Println("  --version         Show version")
	w.Println("")
	w.Println("Examples:")
	w.Println("  numdelta run                       Run all case files from the cases directory")
	w.Println("  numdelta run cases/matrix.yaml     Run a single case file")
	w.Println("  numdelta validate numdelta.json    Validate the configuration")
}
