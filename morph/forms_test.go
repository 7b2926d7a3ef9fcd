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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormsFillFromKeepsExisting(t *testing.T) {
	f := Forms{PastTense: "las"}
	f.FillFrom(Forms{PastTense: "leesde", PastParticiple: "gelezen"})
	assert.Equal(t, "las", f.PastTense)
	assert.Equal(t, "gelezen", f.PastParticiple)
}

func TestFormsRestrictVerb(t *testing.T) {
	f := Forms{
		PastTense:   "werkte",
		Plural:      "werken",
		Comparative: "werker",
		Superlative: "werkst",
	}
	f.Restrict(ClassVerb)
	assert.Equal(t, "werkte", f.PastTense)
	assert.Empty(t, f.Plural)
	assert.Empty(t, f.Comparative)
	assert.Empty(t, f.Superlative)
}

func TestFormsRestrictNoun(t *testing.T) {
	f := Forms{PastTense: "fietste", Plural: "fietsen"}
	f.Restrict(ClassNoun)
	assert.Empty(t, f.PastTense)
	assert.Equal(t, "fietsen", f.Plural)
}

func TestFormsRestrictAdjective(t *testing.T) {
	f := Forms{PastTense: "snelde", Plural: "snellen", Comparative: "sneller"}
	f.Restrict(ClassAdjective)
	assert.Empty(t, f.PastTense)
	assert.Empty(t, f.Plural)
	assert.Equal(t, "sneller", f.Comparative)
}

func TestFormsRestrictUnknownKeepsAll(t *testing.T) {
	f := Forms{PastTense: "was", Plural: "zijnen"}
	f.Restrict(ClassUnknown)
	assert.Equal(t, "was", f.PastTense)
	assert.Equal(t, "zijnen", f.Plural)
}

func TestFormsIsZero(t *testing.T) {
	assert.True(t, Forms{}.IsZero())
	assert.False(t, Forms{Plural: "boeken"}.IsZero())
}

func TestFormsLabeledOrderAndFiltering(t *testing.T) {
	f := Forms{PastTense: "las", Superlative: "leest"}
	labeled := f.Labeled()
	assert.Equal(
		t,
		[]LabeledForm{{"Past Tense", "las"}, {"Superlative", "leest"}},
		labeled,
	)
	assert.Empty(t, Forms{}.Labeled())
}
