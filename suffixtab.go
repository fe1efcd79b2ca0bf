// Copyright 2023 The suffixtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mriling/suffixtab/cnf"
	"github.com/mriling/suffixtab/library"
	"github.com/mriling/suffixtab/neighbor"
	"github.com/mriling/suffixtab/phon"
	"github.com/mriling/suffixtab/proc"
	"github.com/mriling/suffixtab/validation"
)

var (
	version   = "1.0.0"
	buildDate = "unknown"
	gitCommit = "unknown"
)

func setupLog(verbosity int) {
	level := zerolog.InfoLevel
	if verbosity > 0 {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func loadConfOrExit(confPath string) *cnf.AnalysisConf {
	if confPath == "" {
		fmt.Fprintln(os.Stderr, "missing configuration file argument")
		os.Exit(1)
	}
	conf, err := cnf.LoadConf(confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	return conf
}

func runAnalysis(confPath string, appendData bool) {
	conf := loadConfOrExit(confPath)
	setupLog(conf.Verbosity)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		s, ok := <-signalChan
		if ok {
			log.Warn().Str("signal", s.String()).Msg("received stop signal")
			cancel()
		}
	}()

	statusChan, err := library.RunAnalysis(ctx, conf, appendData)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start the analysis")
	}
	var lastErr error
	for status := range statusChan {
		if status.Error != nil {
			lastErr = status.Error
			log.Error().Err(status.Error).Str("file", status.File).Msg("analysis problem")

		} else {
			log.Info().
				Str("file", status.File).
				Int("processedRows", status.ProcessedRows).
				Int("irregularRows", status.IrregularRows).
				Msg("progress")
		}
	}
	signal.Stop(signalChan)
	close(signalChan)
	if lastErr != nil {
		log.Fatal().Err(lastErr).Msg("analysis finished with errors")
	}
}

func runValidation(confPath string) {
	conf := loadConfOrExit(confPath)
	setupLog(conf.Verbosity)
	if conf.Input.Format != "pairs" {
		log.Fatal().Msg("the validate command supports pair corpora only")
	}
	validator, err := validation.NewPairValidator(proc.SuffixMode(conf.Input.SuffixMode))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create validator")
	}
	report, err := validator.Run(conf.Input.Files)
	if err != nil {
		log.Fatal().Err(err).Msg("validation failed")
	}
	for _, p := range report.Problems {
		fmt.Printf("%s:%d\t%s\n", p.File, p.Line, p.Message)
	}
	if !report.OK() {
		os.Exit(1)
	}
	fmt.Printf("OK (%d rows)\n", report.CheckedRows)
}

func runNeighbor(confPath, query string) {
	conf := loadConfOrExit(confPath)
	setupLog(conf.Verbosity)
	if query == "" {
		log.Fatal().Msg("missing query stem argument")
	}
	if conf.Input.Format != "pairs" {
		log.Fatal().Msg("the neighbor command supports pair corpora only")
	}
	files, err := library.ResolveInputFiles(conf.Input.Files)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve input files")
	}
	stems := make([]string, 0, 1000)
	src := proc.PairFileSource{Paths: files}
	err = src.ForEach(context.Background(), func(row proc.Row) error {
		stems = append(stems, row.Stem)
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read the corpus")
	}
	match, err := neighbor.NewIndex(stems).Nearest(query)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	fmt.Printf("%s\t%d\n", match.Word, match.Distance)
}

func dumpTemplate() {
	b, err := sonic.ConfigDefault.MarshalIndent(cnf.SampleConf(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to dump a new config")
	}
	fmt.Println(string(b))
}

func listRules() {
	for _, name := range phon.RuleNames() {
		fmt.Println(name)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Println("\n+------------------------------------------------------------+")
		fmt.Println("| Suffixtab - passive suffix statistics for Māori corpora    |")
		fmt.Println("|   descriptor extraction, frequency tables, p(sfx|desc)     |")
		fmt.Printf("|                       version %-6s                       |\n", version)
		fmt.Println("+------------------------------------------------------------+")
		fmt.Printf("\nKnown suffixes:\n%s\n", strings.Join(phon.Suffixes(), ", "))
		fmt.Println("\nUsage:")
		fmt.Println("suffixtab analyze config.json\n\t(run an analysis, write tables to a new output)")
		fmt.Println("suffixtab append config.json\n\t(run an analysis, add data to an existing output)")
		fmt.Println("suffixtab validate config.json\n\t(check the input corpus and report problems)")
		fmt.Println("suffixtab neighbor config.json stem\n\t(find the closest attested stem)")
		fmt.Println("suffixtab rules\n\t(list available descriptor rules)")
		fmt.Println("suffixtab template\n\t(write a sample config to stdout)")
		fmt.Println("suffixtab version\n\t(print version information)")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	setupLog(0)
	switch flag.Arg(0) {
	case "analyze":
		runAnalysis(flag.Arg(1), false)
	case "append":
		runAnalysis(flag.Arg(1), true)
	case "validate":
		runValidation(flag.Arg(1))
	case "neighbor":
		runNeighbor(flag.Arg(1), flag.Arg(2))
	case "rules":
		listRules()
	case "template":
		dumpTemplate()
	case "version":
		fmt.Printf("suffixtab %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
	default:
		log.Fatal().Msgf("unknown command '%s'", flag.Arg(0))
	}
}
