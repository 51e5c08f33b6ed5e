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

package cnf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"lemafi/analyzer"
)

const (
	dfltLanguage  = "fi"
	dfltLocale    = "fi_FI"
	dfltFreqList  = "freqwords/fi_100k.txt"
	dfltOutputDir = "output"
)

var localeRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type AnalyzersConf struct {
	Voikko analyzer.VoikkoConf `json:"voikko"`
	UDPipe analyzer.UDPipeConf `json:"udpipe"`
}

// Conf is a global configuration of the app
type Conf struct {
	Language  string           `json:"language"`
	Locale    string           `json:"locale"`
	FreqList  string           `json:"freqList"`
	OutputDir string           `json:"outputDir"`
	Analyzers AnalyzersConf    `json:"analyzers"`
	LogFile   string           `json:"logFile"`
	LogLevel  logging.LogLevel `json:"logLevel"`

	srcPath string
}

func (conf *Conf) IsDebugMode() bool {
	return conf.LogLevel == "debug"
}

// TablePrefix returns the locale-derived prefix used for database
// table names and JSON root keys (e.g. fi_FI => fi_FI_lemma_rank).
func (conf *Conf) TablePrefix() string {
	return conf.Locale
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" || filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LoadConfig reads a JSON configuration file. The path may be empty
// in which case an empty config is returned and all values come from
// defaults and CLI flags (the pipeline is expected to run without a
// config file in common setups).
func LoadConfig(path string) *Conf {
	var conf Conf
	if path == "" {
		return &conf
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func ValidateAndDefaults(conf *Conf) {
	if conf.Language == "" {
		conf.Language = dfltLanguage
		log.Warn().Msgf("language not specified, using default: %s", dfltLanguage)
	}
	if conf.Locale == "" {
		conf.Locale = dfltLocale
		log.Warn().Msgf("locale not specified, using default: %s", dfltLocale)
	}
	if !localeRegexp.MatchString(conf.Locale) {
		log.Fatal().Msgf(
			"invalid locale %s - it is used as a table name prefix and must be a plain identifier",
			conf.Locale,
		)
		return
	}
	if conf.FreqList == "" {
		conf.FreqList = dfltFreqList
		log.Warn().Msgf("freqList not specified, using default: %s", dfltFreqList)
	}
	if conf.OutputDir == "" {
		conf.OutputDir = dfltOutputDir
		log.Warn().Msgf("outputDir not specified, using default: %s", dfltOutputDir)
	}
}
