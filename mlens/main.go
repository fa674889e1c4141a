package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/macrolens/cmd"
	"github.com/etnz/macrolens/logging"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// .env is optional, used for API keys in local dev.
	godotenv.Load()
	logging.Init()

	// Shell completion (bash, zsh, fish). Handles its own exit when invoked
	// by the completion hook.
	cmp := &complete.Command{Sub: map[string]*complete.Command{
		"report": {Flags: map[string]complete.Predictor{
			"from": predict.Nothing, "to": predict.Nothing,
			"ticker": predict.Nothing, "macro": predict.Set{"fred", "insee"}, "id": predict.Nothing,
			"raw": predict.Nothing, "quote": predict.Nothing, "rows": predict.Nothing,
		}},
		"table": {Flags: map[string]complete.Predictor{
			"from": predict.Nothing, "to": predict.Nothing,
			"ticker": predict.Nothing, "macro": predict.Set{"fred", "insee"}, "id": predict.Nothing,
		}},
		"quote":  {Flags: map[string]complete.Predictor{"instrument": predict.Nothing}},
		"assist": {},
	}}
	cmp.Complete("mlens")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
