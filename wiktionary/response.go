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

// definitionsPayload mirrors the /page/definition/{word} REST
// response - usage entries grouped by language code.
type definitionsPayload map[string][]usageEntry

type usageEntry struct {
	PartOfSpeech string            `json:"partOfSpeech"`
	Language     string            `json:"language"`
	Definitions  []usageDefinition `json:"definitions"`
}

type usageDefinition struct {
	Definition string `json:"definition"`
}

// DefinedWord is the digest of a definition lookup: cleaned-up Dutch
// meanings in their original order plus the first part-of-speech
// label the source provides.
type DefinedWord struct {
	Word         string
	PartOfSpeech string
	Meanings     []string
}

// definedWord extracts the Dutch section of the payload. It returns
// nil if the payload contains no usable Dutch data which callers
// should handle as a not-found condition.
func (dp definitionsPayload) definedWord(word string) *DefinedWord {
	usages, ok := dp["nl"]
	if !ok {
		return nil
	}
	ans := &DefinedWord{Word: word, Meanings: []string{}}
	for _, usage := range usages {
		if ans.PartOfSpeech == "" {
			ans.PartOfSpeech = usage.PartOfSpeech
		}
		for _, def := range usage.Definitions {
			if meaning := stripTags(def.Definition); meaning != "" {
				ans.Meanings = append(ans.Meanings, meaning)
			}
		}
	}
	if ans.PartOfSpeech == "" && len(ans.Meanings) == 0 {
		return nil
	}
	return ans
}
