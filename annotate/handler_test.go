// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Department of Linguistics,
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
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/woordwijzer/morph"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callAnalyze(t *testing.T, actions *Actions, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", target, nil)
	actions.Analyze(ctx)
	return w
}

func TestAnalyzeAction(t *testing.T) {
	actions := NewActions(NewAnnotator(nil), 10)
	w := callAnalyze(t, actions, "/analyze?q=werken&q=tafel")
	require.Equal(t, 200, w.Code)

	var resp Response
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "werken", resp.Entries[0].Word)
	assert.Equal(t, morph.ClassVerb, resp.Entries[0].Class)
	assert.Equal(t, "werkte", resp.Entries[0].Forms.PastTense)
	assert.Equal(t, "tafel", resp.Entries[1].Word)
	assert.Equal(t, "tafels", resp.Entries[1].Forms.Plural)
}

func TestAnalyzeActionRequiresQuery(t *testing.T) {
	actions := NewActions(NewAnnotator(nil), 10)
	w := callAnalyze(t, actions, "/analyze")
	assert.Equal(t, 422, w.Code)
}

func TestAnalyzeActionRejectsBlankQuery(t *testing.T) {
	actions := NewActions(NewAnnotator(nil), 10)
	w := callAnalyze(t, actions, "/analyze?q=%20%20")
	assert.Equal(t, 422, w.Code)
}

func TestAnalyzeActionLimitsQueryCount(t *testing.T) {
	actions := NewActions(NewAnnotator(nil), 2)
	w := callAnalyze(t, actions, "/analyze?q=een&q=twee&q=drie")
	assert.Equal(t, 422, w.Code)
}
