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
	"context"
	"os"

	"github.com/czcorpus/woordwijzer/annotate"
	"github.com/czcorpus/woordwijzer/config"
	"github.com/czcorpus/woordwijzer/wiktionary"
	"github.com/rs/zerolog/log"
)

// runAnalyze annotates a word list file and prints the text report to
// the standard output. With a non-empty jsonPath the entries are also
// stored as a JSON array. Words are processed strictly one by one, in
// the file order.
func runAnalyze(conf *config.Configuration, wordsPath, jsonPath string) {
	words, err := annotate.ReadWordList(wordsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read the words file")
	}
	if len(words) == 0 {
		log.Warn().Msg("no words to process")
		return
	}
	log.Info().Msgf("found %d words to process", len(words))
	ctx := context.Background()
	annotator := annotate.NewAnnotator(wiktionary.NewClient(&conf.Wiktionary))
	entries := make([]annotate.WordEntry, 0, len(words))
	for i, word := range words {
		log.Info().Msgf("processing [%d/%d]: %s", i+1, len(words), word)
		entries = append(entries, annotator.Annotate(ctx, word))
	}
	if err := annotate.WriteReport(os.Stdout, entries); err != nil {
		log.Fatal().Err(err).Msg("failed to write the report")
	}
	if jsonPath != "" {
		if err := annotate.SaveJSON(jsonPath, entries); err != nil {
			log.Fatal().Err(err).Msg("failed to save the JSON output")
		}
		log.Info().Msgf("results saved to %s", jsonPath)
	}
}
