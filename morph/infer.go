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

package morph

import "strings"

const vowels = "aeiou"

// voicelessFinals is the 't kofschip consonant set. A weak verb stem
// ending in one of these takes -te / ge...-t, all other stems take
// -de / ge...-d.
const voicelessFinals = "ptkfsxc"

// unstressedNounEndings take the plural -s instead of the default -en.
var unstressedNounEndings = []string{"el", "er", "en", "je"}

// unprefixedParticipleStems lists inseparable verb prefixes; a stem
// starting with one of them forms its past participle without ge-
// (vertellen -> verteld).
var unprefixedParticipleStems = []string{"ge", "be", "ver", "ont", "her", "er"}

func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

func isVoiceless(c byte) bool {
	return strings.IndexByte(voicelessFinals, c) >= 0
}

// verbStem strips the infinitive ending -en and reduces a doubled
// final consonant (pakken -> pak). It expects a word already known
// to end in -en.
func verbStem(infinitive string) string {
	stem := strings.TrimSuffix(infinitive, "en")
	if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] && !isVowel(stem[len(stem)-1]) {
		stem = stem[:len(stem)-1]
	}
	return stem
}

func takesGePrefix(stem string) bool {
	for _, pref := range unprefixedParticipleStems {
		if strings.HasPrefix(stem, pref) && len(stem) > len(pref)+1 {
			return false
		}
	}
	return true
}

// InferVerbForms derives the regular ("weak") past forms of a verb
// from its infinitive. It reports false for words which do not look
// like an infinitive. The rules are approximate - they do not model
// long-vowel stems (praten) or f/s voicing (leven) - so results for
// such verbs should be treated as a fallback of last resort.
func InferVerbForms(infinitive string) (Forms, bool) {
	if !strings.HasSuffix(infinitive, "en") {
		return Forms{}, false
	}
	stem := verbStem(infinitive)
	if stem == "" {
		return Forms{}, false
	}
	gePref := ""
	if takesGePrefix(stem) {
		gePref = "ge"
	}
	var forms Forms
	last := stem[len(stem)-1]
	switch {
	case last == 't':
		// the stem-final t absorbs the participle suffix (zetten -> gezet)
		forms.PastTense = stem + "te"
		forms.PastParticiple = gePref + stem
	case last == 'd':
		forms.PastTense = stem + "de"
		forms.PastParticiple = gePref + stem
	case isVoiceless(last):
		forms.PastTense = stem + "te"
		forms.PastParticiple = gePref + stem + "t"
	default:
		forms.PastTense = stem + "de"
		forms.PastParticiple = gePref + stem + "d"
	}
	return forms, true
}

// InferNounForms derives the plural of a regular noun. Words with an
// unstressed final syllable (-el, -er, -en) and diminutives (-je)
// take -s, anything else the default -en.
func InferNounForms(word string) Forms {
	if word == "" {
		return Forms{}
	}
	for _, suff := range unstressedNounEndings {
		if strings.HasSuffix(word, suff) {
			return Forms{Plural: word + "s"}
		}
	}
	return Forms{Plural: word + "en"}
}

// InferAdjectiveForms derives the comparative (-er) and superlative
// (-st) of an adjective with the usual spelling adjustments: a final
// -r takes -der (duur -> duurder), a final -e the bare -r
// (moe -> moer), a closed syllable doubles its final consonant
// (dik -> dikker), a doubled long vowel drops one letter in the
// resulting open syllable (groot -> groter) and a final -s takes the
// bare -t (boos -> boost). Words too short to be plausible adjectives
// report false.
func InferAdjectiveForms(word string) (Forms, bool) {
	if len(word) <= 2 {
		return Forms{}, false
	}
	var forms Forms
	last := word[len(word)-1]
	n := len(word)
	switch {
	case last == 'r':
		forms.Comparative = word + "der"
	case last == 'e':
		forms.Comparative = word + "r"
	case !isVowel(last) && n >= 3 && word[n-2] == word[n-3] && isVowel(word[n-2]):
		forms.Comparative = word[:n-2] + string(last) + "er"
	case !isVowel(last) && n >= 3 && isVowel(word[n-2]) && !isVowel(word[n-3]):
		forms.Comparative = word + string(last) + "er"
	default:
		forms.Comparative = word + "er"
	}
	if last == 's' {
		forms.Superlative = word + "t"
	} else {
		forms.Superlative = word + "st"
	}
	return forms, true
}
