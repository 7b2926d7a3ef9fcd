// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
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

// Package morph provides a small morphology model for Dutch - word
// classes, inflected form sets, a table of frequent irregular verbs
// and rule-based inference of regular forms. The inference follows
// schoolbook spelling rules ('t kofschip etc.) and is intentionally
// approximate; authoritative data should always be preferred when
// available.
package morph

// WordClass is a coarse part-of-speech category. Only the classes
// relevant for form generation are distinguished, everything else
// maps to ClassUnknown.
type WordClass string

const (
	ClassVerb      WordClass = "verb"
	ClassNoun      WordClass = "noun"
	ClassAdjective WordClass = "adjective"
	ClassUnknown   WordClass = "unknown"
)

func (wc WordClass) IsKnown() bool {
	return wc == ClassVerb || wc == ClassNoun || wc == ClassAdjective
}

func (wc WordClass) String() string {
	return string(wc)
}

// Forms groups all the inflected forms a word entry can carry. Which
// slots are actually meaningful depends on the word class (see
// Restrict). Empty string means "not available".
type Forms struct {
	PastTense      string `json:"pastTense,omitempty"`
	PastParticiple string `json:"pastParticiple,omitempty"`
	PresentTense   string `json:"presentTense,omitempty"`
	Plural         string `json:"plural,omitempty"`
	Comparative    string `json:"comparative,omitempty"`
	Superlative    string `json:"superlative,omitempty"`
}

func (f Forms) IsZero() bool {
	return f == Forms{}
}

// FillFrom copies form values from src into f, skipping the slots f
// already has filled.
func (f *Forms) FillFrom(src Forms) {
	if f.PastTense == "" {
		f.PastTense = src.PastTense
	}
	if f.PastParticiple == "" {
		f.PastParticiple = src.PastParticiple
	}
	if f.PresentTense == "" {
		f.PresentTense = src.PresentTense
	}
	if f.Plural == "" {
		f.Plural = src.Plural
	}
	if f.Comparative == "" {
		f.Comparative = src.Comparative
	}
	if f.Superlative == "" {
		f.Superlative = src.Superlative
	}
}

// Restrict removes the forms which cannot apply to a word of the
// provided class (a noun has no past tense, a verb has no plural).
// For ClassUnknown all collected forms are kept as they may be the
// only hint about the word's nature.
func (f *Forms) Restrict(wc WordClass) {
	switch wc {
	case ClassVerb:
		f.Plural = ""
		f.Comparative = ""
		f.Superlative = ""
	case ClassNoun:
		f.PastTense = ""
		f.PastParticiple = ""
		f.PresentTense = ""
		f.Comparative = ""
		f.Superlative = ""
	case ClassAdjective:
		f.PastTense = ""
		f.PastParticiple = ""
		f.PresentTense = ""
		f.Plural = ""
	}
}

// LabeledForm is a single form value along with its human-readable
// label as used in the text report.
type LabeledForm struct {
	Label string
	Value string
}

// Labeled returns the non-empty forms in a stable presentation order.
func (f Forms) Labeled() []LabeledForm {
	ans := make([]LabeledForm, 0, 6)
	add := func(label, value string) {
		if value != "" {
			ans = append(ans, LabeledForm{label, value})
		}
	}
	add("Past Tense", f.PastTense)
	add("Past Participle", f.PastParticiple)
	add("Present Tense", f.PresentTense)
	add("Plural", f.Plural)
	add("Comparative", f.Comparative)
	add("Superlative", f.Superlative)
	return ans
}
