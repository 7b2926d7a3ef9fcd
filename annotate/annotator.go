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

package annotate

import (
	"context"
	"errors"
	"strings"

	"github.com/czcorpus/woordwijzer/morph"
	"github.com/czcorpus/woordwijzer/wiktionary"
	"github.com/rs/zerolog/log"
)

const noteLookupFailed = "remote lookup failed - entry is based on local data only"

// Lookup is a remote dictionary source. Implementations signal a
// plain data-absence via wiktionary.ErrNotFound; any other error is
// understood as a (possibly transient) failure of the source.
type Lookup interface {
	FetchDefinitions(ctx context.Context, word string) (*wiktionary.DefinedWord, error)
	FetchInflections(ctx context.Context, word string) (morph.Forms, error)
}

// formResolver tries to provide inflected forms of a word. The bool
// return value signals the word is considered handled and the
// resolver chain should stop.
type formResolver func(ctx context.Context, word string, wc morph.WordClass, forms *morph.Forms) (bool, error)

// Annotator runs the per-word annotation pipeline: definitions
// lookup, word class resolution, form resolution going from the most
// to the least authoritative source (irregular verb table, remote
// inflection tables, suffix rules) and a final cleanup dropping the
// forms not applicable to the detected class.
//
// A single failed word never aborts the pipeline - the corresponding
// entry is emitted with whatever local data is available plus a note
// describing the degradation.
type Annotator struct {
	lookup Lookup
}

// NewAnnotator creates an Annotator on top of a remote dictionary
// source. A nil lookup is legal and results in purely rule-based
// annotation.
func NewAnnotator(lookup Lookup) *Annotator {
	return &Annotator{lookup: lookup}
}

// Annotate produces the complete annotation of a single word. The
// word is normalized (trimmed, lowercase) first.
func (a *Annotator) Annotate(ctx context.Context, word string) WordEntry {
	word = strings.ToLower(strings.TrimSpace(word))
	entry := WordEntry{Word: word, Meanings: []string{}}
	var apiTag string
	remoteOK := a.lookup != nil
	if a.lookup != nil {
		def, err := a.lookup.FetchDefinitions(ctx, word)
		switch {
		case errors.Is(err, wiktionary.ErrNotFound):
			log.Debug().Str("word", word).Msg("word has no definitions")
		case err != nil:
			log.Warn().Err(err).Str("word", word).Msg("definitions lookup failed")
			entry.Note = noteLookupFailed
			remoteOK = false
		default:
			entry.Meanings = def.Meanings
			apiTag = def.PartOfSpeech
		}
	}
	entry.Class = morph.Classify(word, apiTag)
	for _, resolve := range a.formResolvers(remoteOK) {
		done, err := resolve(ctx, word, entry.Class, &entry.Forms)
		if err != nil {
			log.Warn().Err(err).Str("word", word).Msg("form resolution failed, trying next source")
			if entry.Note == "" {
				entry.Note = noteLookupFailed
			}
			continue
		}
		if done {
			break
		}
	}
	entry.Forms.Restrict(entry.Class)
	return entry
}

// formResolvers returns the ordered chain of form sources. The first
// resolver to succeed ends the resolution; a failing resolver is
// skipped so the chain degrades towards rule-based inference.
func (a *Annotator) formResolvers(remoteOK bool) []formResolver {
	return []formResolver{
		a.resolveFromIrregularTable,
		a.resolveFromRemoteTables(remoteOK),
		a.resolveByPattern,
	}
}

func (a *Annotator) resolveFromIrregularTable(
	_ context.Context,
	word string,
	_ morph.WordClass,
	forms *morph.Forms,
) (bool, error) {
	vf, ok := morph.LookupIrregular(word)
	if !ok {
		return false, nil
	}
	forms.PastTense = vf.PastTense
	forms.PastParticiple = vf.PastParticiple
	return true, nil
}

// resolveFromRemoteTables creates a resolver reading inflection
// tables from the remote source. With enabled == false (no remote
// source or its definitions lookup already failed for this word) the
// resolver is an inactive placeholder.
func (a *Annotator) resolveFromRemoteTables(enabled bool) formResolver {
	return func(ctx context.Context, word string, _ morph.WordClass, forms *morph.Forms) (bool, error) {
		if !enabled || a.lookup == nil {
			return false, nil
		}
		fetched, err := a.lookup.FetchInflections(ctx, word)
		if err != nil {
			if errors.Is(err, wiktionary.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		if fetched.IsZero() {
			return false, nil
		}
		forms.FillFrom(fetched)
		return true, nil
	}
}

func (a *Annotator) resolveByPattern(
	_ context.Context,
	word string,
	wc morph.WordClass,
	forms *morph.Forms,
) (bool, error) {
	switch wc {
	case morph.ClassVerb:
		inferred, ok := morph.InferVerbForms(word)
		if !ok {
			return false, nil
		}
		forms.FillFrom(inferred)
		return true, nil
	case morph.ClassNoun:
		inferred := morph.InferNounForms(word)
		if inferred.IsZero() {
			return false, nil
		}
		forms.FillFrom(inferred)
		return true, nil
	case morph.ClassAdjective:
		inferred, ok := morph.InferAdjectiveForms(word)
		if !ok {
			return false, nil
		}
		forms.FillFrom(inferred)
		return true, nil
	}
	return false, nil
}
