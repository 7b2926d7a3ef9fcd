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
	"strings"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

// Actions provides the HTTP handlers of the analysis service.
type Actions struct {
	annotator  *Annotator
	maxQueries int
}

func NewActions(annotator *Annotator, maxQueries int) *Actions {
	return &Actions{
		annotator:  annotator,
		maxQueries: maxQueries,
	}
}

// Response wraps the entries returned by the Analyze action.
type Response struct {
	Entries []WordEntry `json:"entries"`
}

// Analyze handles `GET /analyze?q=word1&q=word2`. Each q argument is
// annotated independently, in the order of appearance.
func (aa *Actions) Analyze(ctx *gin.Context) {
	queries, ok := ctx.Request.URL.Query()["q"]
	if !ok {
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError("empty query"), 422)
		return
	}
	if len(queries) > aa.maxQueries {
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError("too many queries"), 422)
		return
	}
	response := Response{Entries: make([]WordEntry, 0, len(queries))}
	for _, query := range queries {
		if strings.TrimSpace(query) == "" {
			continue
		}
		response.Entries = append(
			response.Entries,
			aa.annotator.Annotate(ctx.Request.Context(), query),
		)
	}
	if len(response.Entries) == 0 {
		uniresp.WriteJSONErrorResponse(ctx.Writer, uniresp.NewActionError("empty query"), 422)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, response)
}
