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

// Package annotate implements the word annotation pipeline - reading
// a word list, enriching each word with its class, meanings and
// inflected forms and rendering the result either as a plain text
// report or as JSON.
package annotate

import "github.com/czcorpus/woordwijzer/morph"

// WordEntry is the complete annotation of a single input word. Once
// returned by the Annotator the value is not modified anymore.
type WordEntry struct {
	Word     string          `json:"word"`
	Class    morph.WordClass `json:"wordType"`
	Meanings []string        `json:"meanings"`
	Forms    morph.Forms     `json:"forms"`

	// Note carries a remark about a degraded lookup (typically a
	// network failure); it stays empty for clean entries.
	Note string `json:"note,omitempty"`
}
