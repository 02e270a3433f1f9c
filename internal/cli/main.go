package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/backend/memory"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/console"
	"todo/internal/exitcode"
	"todo/internal/logging"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// Main parses flags, builds an empty store and runs one session over in.
// Returns the exit code.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, code, ok := parseFlags(args, errOut)
	if !ok {
		return code
	}

	if cfg.ShowVersion {
		fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
		return exitcode.Success
	}

	log := logging.New(errOut, cfg.Debug)
	log.Debug().Bool("no_pause", cfg.NoPause).Msg("session starting")

	store := memory.New()
	session := NewSession(commands.DefaultRegistry, cfg, store, console.NewReader(in), log)
	code = session.Run(ctx, out)

	log.Debug().Int("code", code).Int("tasks", store.Len()).Msg("session ended")
	return code
}

func parseFlags(args []string, errOut io.Writer) (*config.Config, int, bool) {
	cfg := config.New()

	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	cfg.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError, false
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return nil, exitcode.UserError, false
	}

	return cfg, exitcode.Success, true
}
