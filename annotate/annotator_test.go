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
	"testing"

	"github.com/czcorpus/woordwijzer/morph"
	"github.com/czcorpus/woordwijzer/wiktionary"
	"github.com/stretchr/testify/assert"
)

// fakeLookup is a scripted stand-in for the Wiktionary client. With
// failing == true every call fails; failWord limits the failure to a
// single word.
type fakeLookup struct {
	defs        map[string]*wiktionary.DefinedWord
	inflections map[string]morph.Forms
	failing     bool
	failWord    string
	numInfCalls int
}

func (fl *fakeLookup) fails(word string) bool {
	return fl.failing || (fl.failWord != "" && word == fl.failWord)
}

func (fl *fakeLookup) FetchDefinitions(_ context.Context, word string) (*wiktionary.DefinedWord, error) {
	if fl.fails(word) {
		return nil, errors.New("connection refused")
	}
	if def, ok := fl.defs[word]; ok {
		return def, nil
	}
	return nil, wiktionary.ErrNotFound
}

func (fl *fakeLookup) FetchInflections(_ context.Context, word string) (morph.Forms, error) {
	fl.numInfCalls++
	if fl.fails(word) {
		return morph.Forms{}, errors.New("connection refused")
	}
	if forms, ok := fl.inflections[word]; ok {
		return forms, nil
	}
	return morph.Forms{}, wiktionary.ErrNotFound
}

func TestAnnotateIrregularVerbWinsOverRemote(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"lezen": {Word: "lezen", PartOfSpeech: "Verb", Meanings: []string{"to read"}},
		},
		inflections: map[string]morph.Forms{
			"lezen": {PastTense: "leesde", PastParticiple: "geleesd"},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "lezen")
	assert.Equal(t, morph.ClassVerb, entry.Class)
	assert.Equal(t, []string{"to read"}, entry.Meanings)
	assert.Equal(t, "las", entry.Forms.PastTense)
	assert.Equal(t, "gelezen", entry.Forms.PastParticiple)
	assert.Equal(t, 0, lookup.numInfCalls)
}

func TestAnnotateUsesRemoteTables(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"zwemmen": {Word: "zwemmen", PartOfSpeech: "Verb", Meanings: []string{"to swim"}},
		},
		inflections: map[string]morph.Forms{
			"zwemmen": {PastTense: "zwom", PastParticiple: "gezwommen"},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "zwemmen")
	assert.Equal(t, "zwom", entry.Forms.PastTense)
	assert.Equal(t, "gezwommen", entry.Forms.PastParticiple)
	assert.Equal(t, 1, lookup.numInfCalls)
}

func TestAnnotateRemoteTablesStopTheChain(t *testing.T) {
	// remote data resolves the word even when partial; the pattern
	// rules must not chime in with made-up values
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"zwemmen": {Word: "zwemmen", PartOfSpeech: "Verb"},
		},
		inflections: map[string]morph.Forms{
			"zwemmen": {PastTense: "zwom"},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "zwemmen")
	assert.Equal(t, "zwom", entry.Forms.PastTense)
	assert.Empty(t, entry.Forms.PastParticiple)
}

func TestAnnotateFallsBackToVerbInference(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"fietsen": {Word: "fietsen", PartOfSpeech: "Verb", Meanings: []string{"to cycle"}},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "fietsen")
	assert.Equal(t, morph.ClassVerb, entry.Class)
	assert.Equal(t, "fietste", entry.Forms.PastTense)
	assert.Equal(t, "gefietst", entry.Forms.PastParticiple)
}

func TestAnnotateNounPluralInference(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"boek": {Word: "boek", PartOfSpeech: "Noun", Meanings: []string{"book"}},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "boek")
	assert.Equal(t, morph.ClassNoun, entry.Class)
	assert.Equal(t, "boeken", entry.Forms.Plural)
	assert.Empty(t, entry.Forms.PastTense)
}

func TestAnnotateAdjectiveRestrictsRemoteForms(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"snel": {Word: "snel", PartOfSpeech: "Adjective", Meanings: []string{"fast"}},
		},
		inflections: map[string]morph.Forms{
			"snel": {
				PastTense:   "snelde",
				Comparative: "sneller",
				Superlative: "snelst",
			},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "snel")
	assert.Equal(t, morph.ClassAdjective, entry.Class)
	assert.Equal(t, "sneller", entry.Forms.Comparative)
	assert.Equal(t, "snelst", entry.Forms.Superlative)
	assert.Empty(t, entry.Forms.PastTense)
}

func TestAnnotateUnknownClassSkipsInference(t *testing.T) {
	lookup := &fakeLookup{
		defs: map[string]*wiktionary.DefinedWord{
			"toch": {Word: "toch", PartOfSpeech: "Adverb", Meanings: []string{"nevertheless"}},
		},
	}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "toch")
	assert.Equal(t, morph.ClassUnknown, entry.Class)
	assert.Equal(t, []string{"nevertheless"}, entry.Meanings)
	assert.True(t, entry.Forms.IsZero())
}

func TestAnnotateToleratesLookupFailure(t *testing.T) {
	anno := NewAnnotator(&fakeLookup{failing: true})
	entry := anno.Annotate(context.Background(), "werken")
	assert.Equal(t, "werken", entry.Word)
	assert.NotEmpty(t, entry.Note)
	assert.Empty(t, entry.Meanings)
	assert.Equal(t, morph.ClassVerb, entry.Class)
	assert.Equal(t, "werkte", entry.Forms.PastTense)
	assert.Equal(t, "gewerkt", entry.Forms.PastParticiple)
}

func TestAnnotateFailureDoesNotAffectLaterWords(t *testing.T) {
	// a word list is processed in order by a single annotator, so a
	// failure hitting one word must leave the following ones intact
	lookup := &fakeLookup{
		failWord: "fietsen",
		defs: map[string]*wiktionary.DefinedWord{
			"boek": {Word: "boek", PartOfSpeech: "Noun", Meanings: []string{"book"}},
		},
	}
	anno := NewAnnotator(lookup)
	var entries []WordEntry
	for _, word := range []string{"fietsen", "boek"} {
		entries = append(entries, anno.Annotate(context.Background(), word))
	}
	assert.NotEmpty(t, entries[0].Note)
	assert.Equal(t, "fietste", entries[0].Forms.PastTense)
	assert.Empty(t, entries[1].Note)
	assert.Equal(t, morph.ClassNoun, entries[1].Class)
	assert.Equal(t, []string{"book"}, entries[1].Meanings)
	assert.Equal(t, "boeken", entries[1].Forms.Plural)
	// remote lookups stay enabled for the words after the failed one
	assert.Equal(t, 1, lookup.numInfCalls)
}

func TestAnnotateFailedDefinitionsDisableRemoteTables(t *testing.T) {
	lookup := &fakeLookup{failing: true}
	anno := NewAnnotator(lookup)
	entry := anno.Annotate(context.Background(), "lezen")
	assert.Equal(t, 0, lookup.numInfCalls)
	// the irregular table still applies
	assert.Equal(t, "las", entry.Forms.PastTense)
	assert.Equal(t, "gelezen", entry.Forms.PastParticiple)
}

func TestAnnotateNormalizesInput(t *testing.T) {
	anno := NewAnnotator(nil)
	entry := anno.Annotate(context.Background(), "  Lezen\t")
	assert.Equal(t, "lezen", entry.Word)
	assert.Equal(t, morph.ClassVerb, entry.Class)
}

func TestAnnotateWithoutLookup(t *testing.T) {
	anno := NewAnnotator(nil)
	entry := anno.Annotate(context.Background(), "tafel")
	assert.Equal(t, morph.ClassNoun, entry.Class)
	assert.Equal(t, "tafels", entry.Forms.Plural)
	assert.Empty(t, entry.Meanings)
	assert.Empty(t, entry.Note)
}
