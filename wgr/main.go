// Command wgr computes gambling winnings and losses from crypto CSV exports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wager/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// An optional .env file may hold the API keys (COINGECKO_API_KEY,
	// GEMINI_API_KEY); flags and real environment variables win.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately in a
// normal run.
func completion() {
	csvFiles := map[string]complete.Predictor{
		"p": predict.Files("*.csv"),
		"r": predict.Files("*.csv"),
	}
	reportFlags := map[string]complete.Predictor{
		"p": csvFiles["p"],
		"r": csvFiles["r"],
		"o": predict.Files("*"),
	}
	wgr := &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {Flags: reportFlags},
			"assist": {Flags: csvFiles},
			"rates":  {Flags: map[string]complete.Predictor{"c": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing}},
			"topic":  {Args: predict.Set{"readme", "csv-format", "rate-filling", "reporting"}},
		},
	}
	wgr.Complete("wgr")
}
