/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/go-reversi/engine/cli"
	"github.com/go-reversi/engine/config"
	"github.com/go-reversi/engine/evaluator"
	"github.com/go-reversi/engine/position"
)

const usage = `usage: othello-engine <command> [flags]

commands:
  perft <depth>                               leaf-count benchmark from the start position
  play                                        interactive REPL
  cs2l <Black|White>                          line-protocol driver
  gen-training-data <empties> <count> <file> [depth]
                                              dump labeled positions
  self-play <games> <lr> <eps>                train a pattern evaluator
  version                                     print version info and exit
`

// commonFlags are accepted by every subcommand: which config file to
// read, which evaluator weight file to score with (empty falls back to
// the piece-square evaluator), and whether to capture a CPU profile of
// the run.
type commonFlags struct {
	configFile   string
	evalFile     string
	profileOn    bool
	logLvl       string
	searchLogLvl string
}

func bindCommonFlags(fs *flag.FlagSet) *commonFlags {
	cf := &commonFlags{}
	fs.StringVar(&cf.configFile, "config", "config.toml", "path to configuration settings file")
	fs.StringVar(&cf.evalFile, "eval", "", "path to a pattern or staged evaluator weight file\n(empty uses the piece-square evaluator)")
	fs.BoolVar(&cf.profileOn, "profile", false, "capture a CPU profile of this run to the current directory")
	fs.StringVar(&cf.logLvl, "loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	fs.StringVar(&cf.searchLogLvl, "searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	return cf
}

func (cf *commonFlags) applyLogLevels() {
	if lvl, found := config.LogLevels[cf.logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[cf.searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
}

func (cf *commonFlags) setup() (evaluator.Evaluator, func()) {
	config.Setup(cf.configFile)
	cf.applyLogLevels()
	stop := func() {}
	if cf.profileOn {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		stop = p.Stop
	}
	eval, err := loadEvaluator(cf.evalFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	return eval, stop
}

// loadEvaluator loads path as a Staged evaluator file, falling back to a
// plain Pattern file, falling back to the piece-square evaluator if path
// is empty. A path that is neither valid JSON shape is reported as an
// error rather than silently falling back, matching the "unreadable
// JSON is non-zero exit" rule.
func loadEvaluator(path string) (evaluator.Evaluator, error) {
	if path == "" {
		return evaluator.NewPieceSquare(), nil
	}
	if staged, err := evaluator.LoadStaged(path); err == nil {
		return staged, nil
	}
	pattern, err := evaluator.LoadPattern(path)
	if err != nil {
		return nil, fmt.Errorf("othello-engine: loading evaluator file %s: %w", path, err)
	}
	return pattern, nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		printVersionInfo()
	case "perft":
		cmdPerft(os.Args[2:])
	case "play":
		cmdPlay(os.Args[2:])
	case "cs2l":
		cmdCS2L(os.Args[2:])
	case "gen-training-data":
		cmdGenTrainingData(os.Args[2:])
	case "self-play":
		cmdSelfPlay(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func cmdPerft(args []string) {
	fs := flag.NewFlagSet("perft", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	fen := fs.String("fen", "", "accepted but not parsed: perft always runs from the standard start")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: othello-engine perft <depth>")
		os.Exit(2)
	}
	depth := atoiOrExit(fs.Arg(0))

	_, stop := cf.setup()
	defer stop()

	p := position.New()
	if *fen != "" {
		fmt.Fprintln(os.Stderr, "othello-engine: perft -fen is not yet wired to a parser, using the standard start")
	}
	cli.RunPerft(p, depth)
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	_ = fs.Parse(args)

	eval, stop := cf.setup()
	defer stop()

	game := cli.NewGame(eval)
	game.Loop(os.Stdin)
}

func cmdCS2L(args []string) {
	fs := flag.NewFlagSet("cs2l", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: othello-engine cs2l <Black|White>")
		os.Exit(2)
	}
	color := fs.Arg(0)

	eval, stop := cf.setup()
	defer stop()

	if err := cli.RunCS2L(color, eval, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdGenTrainingData(args []string) {
	fs := flag.NewFlagSet("gen-training-data", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	depth := fs.Int("depth", 0, "search depth to score each dumped position at (0 leaves it unscored)")
	_ = fs.Parse(args)
	if fs.NArg() != 3 && fs.NArg() != 4 {
		fmt.Fprintln(os.Stderr, "usage: othello-engine gen-training-data <empties> <count> <file> [depth]")
		os.Exit(2)
	}
	empties := atoiOrExit(fs.Arg(0))
	count := atoiOrExit(fs.Arg(1))
	file := fs.Arg(2)
	if fs.NArg() == 4 {
		*depth = atoiOrExit(fs.Arg(3))
	}

	eval, stop := cf.setup()
	defer stop()

	if err := cli.RunGenTrainingData(empties, count, *depth, file, eval); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdSelfPlay(args []string) {
	fs := flag.NewFlagSet("self-play", flag.ExitOnError)
	cf := bindCommonFlags(fs)
	input := fs.String("input", "", "pattern weight file to continue training from (required)")
	output := fs.String("output", "trained.json", "path to write the trained pattern weights to")
	_ = fs.Parse(args)
	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: othello-engine self-play <games> <lr> <eps> -input <file> -output <file>")
		os.Exit(2)
	}
	games := atoiOrExit(fs.Arg(0))
	lr := atofOrExit(fs.Arg(1))
	eps := atofOrExit(fs.Arg(2))

	config.Setup(cf.configFile)
	cf.applyLogLevels()
	stop := func() {}
	if cf.profileOn {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		stop = p.Stop
	}
	defer stop()

	if err := cli.RunSelfPlay(games, lr, eps, *input, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func atoiOrExit(s string) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		fmt.Fprintf(os.Stderr, "othello-engine: invalid integer argument %q\n", s)
		os.Exit(2)
	}
	return n
}

func atofOrExit(s string) float64 {
	var f float64
	if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
		fmt.Fprintf(os.Stderr, "othello-engine: invalid numeric argument %q\n", s)
		os.Exit(2)
	}
	return f
}

func printVersionInfo() {
	fmt.Println("othello-engine")
}
