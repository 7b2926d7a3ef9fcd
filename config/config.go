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

// Package config defines the configuration of woordwijzer along
// with functions to load and validate it. A single file covers both
// the batch 'analyze' mode and the HTTP service mode; the server*
// items are ignored in batch mode.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/woordwijzer/wiktionary"
	"github.com/rs/zerolog/log"
)

const (
	DfltServerReadTimeoutSecs  = 10
	DfltServerWriteTimeoutSecs = 30
	DfltServerPort             = 8080
	DfltServerHost             = "localhost"

	// DfltMaxQueries limits the number of words a single /analyze
	// call may ask for.
	DfltMaxQueries = 10
)

type Configuration struct {
	ServerHost             string              `json:"serverHost"`
	ServerPort             int                 `json:"serverPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	MaxQueries             int                 `json:"maxQueries"`
	Logging                logging.LoggingConf `json:"logging"`
	Wiktionary             wiktionary.Conf     `json:"wiktionary"`
}

func (c *Configuration) Validate() error {
	if c.MaxQueries <= 0 {
		return fmt.Errorf("maxQueries must be a positive number")
	}
	if err := c.Wiktionary.Validate("wiktionary"); err != nil {
		return err
	}
	return nil
}

func LoadConfig(path string) *Configuration {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Configuration
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}
