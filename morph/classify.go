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

// posTagMap translates part-of-speech labels as used by Wiktionary
// into word classes. Labels without a counterpart here (adverb,
// pronoun, numeral, ...) resolve to ClassUnknown.
var posTagMap = map[string]WordClass{
	"verb":        ClassVerb,
	"noun":        ClassNoun,
	"proper noun": ClassNoun,
	"adjective":   ClassAdjective,
}

// adjectiveSuffixes are derivational endings which almost always
// mark a Dutch adjective.
var adjectiveSuffixes = []string{"ig", "lijk", "baar", "zaam", "loos"}

// ClassFromPOSTag maps a raw part-of-speech label (case-insensitive)
// to a word class. Unrecognized or empty labels give ClassUnknown.
func ClassFromPOSTag(tag string) WordClass {
	if wc, ok := posTagMap[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return wc
	}
	return ClassUnknown
}

// Classify decides the word class of a normalized (lowercase,
// trimmed) word. The decision policy, in order of precedence:
//
//  1. membership in the irregular verb table implies ClassVerb,
//  2. a recognized part-of-speech tag (apiTag, as obtained from a
//     dictionary API) wins over any guessing; an unrecognized
//     non-empty tag yields ClassUnknown,
//  3. with no tag at all, the class is guessed from the ending:
//     the infinitive ending -en suggests a verb, typical adjectival
//     suffixes an adjective and anything else is treated as a noun
//     which is the most common word class in running vocabulary.
func Classify(word, apiTag string) WordClass {
	if IsIrregular(word) {
		return ClassVerb
	}
	if strings.TrimSpace(apiTag) != "" {
		return ClassFromPOSTag(apiTag)
	}
	if strings.HasSuffix(word, "en") && len(word) > 3 {
		return ClassVerb
	}
	for _, suff := range adjectiveSuffixes {
		if strings.HasSuffix(word, suff) && len(word) > len(suff)+1 {
			return ClassAdjective
		}
	}
	if word == "" {
		return ClassUnknown
	}
	return ClassNoun
}
