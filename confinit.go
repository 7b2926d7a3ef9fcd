// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Department of Linguistics,
//                Faculty of Arts, Charles University
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
	"strings"

	"github.com/czcorpus/woordwijzer/config"
	"github.com/czcorpus/woordwijzer/wiktionary"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

// findAndLoadConfig loads the configuration either from an explicitly
// provided path (a missing file is fatal then) or from one of the
// default locations. With no file found at all the tool still runs -
// every item has a usable default so the plain `analyze` action works
// out of the box.
func findAndLoadConfig(explicitPath string, cmdOpts *CmdOptions) *config.Configuration {
	var conf *config.Configuration
	srcPath := explicitPath
	if srcPath != "" {
		conf = config.LoadConfig(srcPath)

	} else {
		srchPaths := []string{
			"./woordwijzer.json",
			"/usr/local/etc/woordwijzer/conf.json",
			"/usr/local/etc/woordwijzer.json",
		}
		for _, path := range srchPaths {
			isFile, err := fs.IsFile(path)
			if err != nil {
				log.Fatal().Msgf(
					"error when searching for a suitable configuration file (searched in: %s): %s",
					strings.Join(srchPaths, ", "),
					err,
				)
			}
			if isFile {
				conf = config.LoadConfig(path)
				srcPath = path
				break
			}
		}
	}
	if conf == nil {
		conf = new(config.Configuration)
	}
	if cmdOpts.LogLevel != "" {
		conf.Logging.Level = logging.LogLevel(cmdOpts.LogLevel)

	} else if conf.Logging.Level == "" {
		conf.Logging.Level = "info"
	}
	logging.SetupLogging(conf.Logging)
	if srcPath != "" {
		log.Info().Msgf("loaded configuration from %s", srcPath)

	} else {
		log.Warn().Msg("no configuration file found, using defaults")
	}
	log.Info().Msgf("using logging level '%s'", conf.Logging.Level)
	applyDefaults(conf)
	err := overrideConfWithCmd(conf, cmdOpts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize configuration")
	}
	validErr := conf.Validate()
	if validErr != nil {
		log.Fatal().Err(validErr).Msg("")
	}
	return conf
}

// applyDefaults applies default values for optional config items
// not handled by overrideConfWithCmd (i.e. items not configurable
// via command line arguments).
func applyDefaults(conf *config.Configuration) {
	if conf.Wiktionary.APIBaseURL == "" {
		conf.Wiktionary.APIBaseURL = wiktionary.DfltAPIBaseURL
		log.Warn().Msgf("wiktionary.apiBaseURL not specified, using default: %s", conf.Wiktionary.APIBaseURL)
	}
	if conf.Wiktionary.PageBaseURL == "" {
		conf.Wiktionary.PageBaseURL = wiktionary.DfltPageBaseURL
		log.Warn().Msgf("wiktionary.pageBaseURL not specified, using default: %s", conf.Wiktionary.PageBaseURL)
	}
	if conf.Wiktionary.ClientUserAgent == "" {
		conf.Wiktionary.ClientUserAgent = wiktionary.DfltClientUserAgent
		log.Warn().Msg("wiktionary.clientUserAgent not specified, using default")
	}
	if conf.Wiktionary.RequestTimeoutSecs == 0 {
		conf.Wiktionary.RequestTimeoutSecs = wiktionary.DfltRequestTimeoutSecs
		log.Warn().Msgf(
			"wiktionary.requestTimeoutSecs not specified, using default: %d",
			conf.Wiktionary.RequestTimeoutSecs,
		)
	}
	if conf.Wiktionary.ReqIntervalMs == 0 {
		conf.Wiktionary.ReqIntervalMs = wiktionary.DfltReqIntervalMs
		log.Warn().Msgf(
			"wiktionary.reqIntervalMs not specified, using default: %d",
			conf.Wiktionary.ReqIntervalMs,
		)
	}
	if conf.MaxQueries == 0 {
		conf.MaxQueries = config.DfltMaxQueries
	}
}

func overrideConfWithCmd(origConf *config.Configuration, cmdConf *CmdOptions) error {
	if cmdConf.Host != "" {
		origConf.ServerHost = cmdConf.Host

	} else if origConf.ServerHost == "" {
		log.Warn().Msgf(
			"serverHost not specified, using default value %s",
			config.DfltServerHost,
		)
		origConf.ServerHost = config.DfltServerHost
	}
	if cmdConf.Port != 0 {
		origConf.ServerPort = cmdConf.Port

	} else if origConf.ServerPort == 0 {
		log.Warn().Msgf(
			"serverPort not specified, using default value %d",
			config.DfltServerPort,
		)
		origConf.ServerPort = config.DfltServerPort
	}
	if cmdConf.ReadTimeoutSecs != 0 {
		origConf.ServerReadTimeoutSecs = cmdConf.ReadTimeoutSecs

	} else if origConf.ServerReadTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default value %d",
			config.DfltServerReadTimeoutSecs,
		)
		origConf.ServerReadTimeoutSecs = config.DfltServerReadTimeoutSecs
	}
	if cmdConf.WriteTimeoutSecs != 0 {
		origConf.ServerWriteTimeoutSecs = cmdConf.WriteTimeoutSecs

	} else if origConf.ServerWriteTimeoutSecs == 0 {
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default value %d",
			config.DfltServerWriteTimeoutSecs,
		)
		origConf.ServerWriteTimeoutSecs = config.DfltServerWriteTimeoutSecs
	}
	if cmdConf.LogPath != "" {
		origConf.Logging.Path = cmdConf.LogPath

	} else if origConf.Logging.Path == "" {
		log.Warn().Msg("logPath not specified, using stderr")
	}
	return nil
}
