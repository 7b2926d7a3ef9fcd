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

package config

import (
	"testing"

	"github.com/czcorpus/woordwijzer/wiktionary"
	"github.com/stretchr/testify/assert"
)

func validConf() *Configuration {
	return &Configuration{
		ServerHost: DfltServerHost,
		ServerPort: DfltServerPort,
		MaxQueries: DfltMaxQueries,
		Wiktionary: wiktionary.Conf{
			APIBaseURL:         wiktionary.DfltAPIBaseURL,
			PageBaseURL:        wiktionary.DfltPageBaseURL,
			ClientUserAgent:    wiktionary.DfltClientUserAgent,
			RequestTimeoutSecs: wiktionary.DfltRequestTimeoutSecs,
			ReqIntervalMs:      wiktionary.DfltReqIntervalMs,
		},
	}
}

func TestValidateAcceptsFilledConfig(t *testing.T) {
	assert.NoError(t, validConf().Validate())
}

func TestValidateRejectsNegativeMaxQueries(t *testing.T) {
	conf := validConf()
	conf.MaxQueries = -1
	err := conf.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "maxQueries")
}

func TestValidateRejectsZeroMaxQueries(t *testing.T) {
	conf := validConf()
	conf.MaxQueries = 0
	assert.Error(t, conf.Validate())
}

func TestValidatePropagatesWiktionarySection(t *testing.T) {
	conf := validConf()
	conf.Wiktionary.APIBaseURL = ""
	err := conf.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wiktionary.apiBaseURL")
}
