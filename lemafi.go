// Copyright 2025 The lemafi authors
//   This file is part of LEMAFI.
//
//  LEMAFI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LEMAFI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LEMAFI.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lemafi/cnf"
)

var (
	version   string
	buildDate string
	gitCommit string
)

// cmdOpts are per-invocation options; any value set here overrides
// its config file counterpart.
type cmdOpts struct {
	limit       int
	freqList    string
	lemmaCSV    string
	lookupCSV   string
	rankCSV     string
	input       string
	output      string
	key         string
	minify      bool
	replace     bool
	includeFreq bool
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func main() {
	var opts cmdOpts
	flag.IntVar(&opts.limit, "limit", 0, "process at most this many unique surface forms (0 = no limit)")
	flag.StringVar(&opts.freqList, "freq-list", "", "surface frequency list (whitespace-separated `form count` lines)")
	flag.StringVar(&opts.lemmaCSV, "lemma-csv", "", "lemma lookup table CSV (rank action input)")
	flag.StringVar(&opts.lookupCSV, "lookup-csv", "", "lookup CSV for the sqlite action")
	flag.StringVar(&opts.rankCSV, "rank-csv", "", "rank CSV for the sqlite action")
	flag.StringVar(&opts.input, "input", "", "source CSV for the json/jsonl actions")
	flag.StringVar(&opts.output, "output", "", "output file path (default: derived from config)")
	flag.StringVar(&opts.key, "key", "", "root key of the exported JSON object")
	flag.BoolVar(&opts.minify, "minify", false, "produce compact JSON output")
	flag.BoolVar(&opts.replace, "replace", false, "drop and recreate existing database tables")
	flag.BoolVar(&opts.includeFreq, "include-freq", false, "include the freq column in the rank CSV")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "LEMAFI - a lemma lookup and frequency rank dataset builder\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] extract [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] rank [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] json [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] jsonl [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] sqlite [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] run [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf(
			"lemafi %s\nbuild date: %s\nlast commit: %s\n",
			cleanVersionInfo(version), cleanVersionInfo(buildDate), cleanVersionInfo(gitCommit),
		)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(logging.LoggingConf{Path: conf.LogFile, Level: conf.LogLevel})

	if action == "test" {
		cnf.ValidateAndDefaults(conf)
		log.Info().Msg("config OK")
		return
	}
	cnf.ValidateAndDefaults(conf)
	log.Logger = log.Logger.With().Str("runId", uuid.New().String()).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch action {
	case "extract":
		err = actionExtract(ctx, conf, opts)
	case "rank":
		err = actionRank(conf, opts)
	case "json":
		err = actionJSON(conf, opts)
	case "jsonl":
		err = actionJSONL(conf, opts)
	case "sqlite":
		err = actionSQLite(conf, opts)
	case "run":
		err = actionPipeline(ctx, conf, opts)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("Action %s failed", action)
	}
}
