package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/signgate/cmd/signgate/commands"
	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
	"git.home.luguber.info/inful/signgate/internal/logfields"
	"git.home.luguber.info/inful/signgate/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("signgate"),
		kong.Description("Release-signing gate for Android builds: validates key.properties before release tasks run."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	// AfterApply has installed the default logger by now.
	logger := slog.Default().With(logfields.InvocationID(uuid.NewString()))

	err := ctx.Run(&commands.Global{Logger: logger, Out: os.Stdout}, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, logger).HandleError(err)
}
