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

// VerbForms holds the two principal past forms of a verb.
type VerbForms struct {
	PastTense      string `json:"pastTense"`
	PastParticiple string `json:"pastParticiple"`
}

// irregularVerbs maps infinitives of frequent Dutch strong and
// otherwise irregular verbs to their past forms. Keys are lowercase
// and matched exactly.
var irregularVerbs = map[string]VerbForms{
	"lezen":     {"las", "gelezen"},
	"schrijven": {"schreef", "geschreven"},
	"begrijpen": {"begreep", "begrepen"},
	"komen":     {"kwam", "gekomen"},
	"gaan":      {"ging", "gegaan"},
	"zien":      {"zag", "gezien"},
	"doen":      {"deed", "gedaan"},
	"hebben":    {"had", "gehad"},
	"zijn":      {"was", "geweest"},
	"worden":    {"werd", "geworden"},
	"nemen":     {"nam", "genomen"},
	"geven":     {"gaf", "gegeven"},
	"blijven":   {"bleef", "gebleven"},
	"krijgen":   {"kreeg", "gekregen"},
	"zeggen":    {"zei", "gezegd"},
	"weten":     {"wist", "geweten"},
	"eten":      {"at", "gegeten"},
	"drinken":   {"dronk", "gedronken"},
	"lopen":     {"liep", "gelopen"},
	"staan":     {"stond", "gestaan"},
	"zitten":    {"zat", "gezeten"},
	"liggen":    {"lag", "gelegen"},
	"vinden":    {"vond", "gevonden"},
	"denken":    {"dacht", "gedacht"},
	"brengen":   {"bracht", "gebracht"},
	"kopen":     {"kocht", "gekocht"},
	"verkopen":  {"verkocht", "verkocht"},
	"helpen":    {"hielp", "geholpen"},
	"spreken":   {"sprak", "gesproken"},
}

// LookupIrregular returns the past forms of the provided infinitive
// if it is one of the known irregular verbs. The word is expected to
// be normalized (lowercase, trimmed) by the caller.
func LookupIrregular(word string) (VerbForms, bool) {
	vf, ok := irregularVerbs[word]
	return vf, ok
}

// IsIrregular tests whether the word is a known irregular verb.
func IsIrregular(word string) bool {
	_, ok := irregularVerbs[word]
	return ok
}
