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

package wiktionary

import (
	"fmt"
	"time"
)

const (
	DfltAPIBaseURL         = "https://en.wiktionary.org/api/rest_v1"
	DfltPageBaseURL        = "https://nl.wiktionary.org/wiki"
	DfltClientUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DfltRequestTimeoutSecs = 5
	DfltReqIntervalMs      = 500
)

// Conf configures access to the Wiktionary REST API and to the wiki
// article HTML used as a fallback source of inflection tables.
type Conf struct {

	// APIBaseURL is the root of the Wiktionary REST API
	APIBaseURL string `json:"apiBaseURL"`

	// PageBaseURL is the root of Dutch Wiktionary article URLs;
	// article HTML is fetched from there when the REST API provides
	// no inflection data
	PageBaseURL string `json:"pageBaseURL"`

	ClientUserAgent string `json:"clientUserAgent"`

	RequestTimeoutSecs int `json:"requestTimeoutSecs"`

	// ReqIntervalMs is a minimum pause between two requests so the
	// public service is not hammered
	ReqIntervalMs int `json:"reqIntervalMs"`
}

func (conf *Conf) Validate(context string) error {
	if conf.APIBaseURL == "" {
		return fmt.Errorf("%s.apiBaseURL is missing/empty", context)
	}
	if conf.PageBaseURL == "" {
		return fmt.Errorf("%s.pageBaseURL is missing/empty", context)
	}
	if conf.ClientUserAgent == "" {
		return fmt.Errorf("%s.clientUserAgent is missing/empty", context)
	}
	if conf.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("%s.requestTimeoutSecs must be a positive number", context)
	}
	if conf.ReqIntervalMs < 0 {
		return fmt.Errorf("%s.reqIntervalMs must not be negative", context)
	}
	return nil
}

func (conf *Conf) RequestTimeout() time.Duration {
	return time.Duration(conf.RequestTimeoutSecs) * time.Second
}

func (conf *Conf) ReqInterval() time.Duration {
	return time.Duration(conf.ReqIntervalMs) * time.Millisecond
}
