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

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/czcorpus/woordwijzer/morph"
	"golang.org/x/net/html"
)

// tableCell is a single cell of a wiki grammar table reduced to the
// properties the label matching needs.
type tableCell struct {
	text     string
	isHeader bool
}

// ParseInflectionTables scans the grammar tables of a Dutch
// Wiktionary article and collects inflected forms based on the Dutch
// labels the inflection templates use ("verleden tijd", "voltooid
// deelwoord", "meervoud", "vergrotende trap", ...). Both layouts
// found on the site are supported: a label cell followed by its
// value within a row and a column header with the value in the row
// below. The first value found for a slot wins which matches how the
// tables are ordered on the site (singular and base forms first).
func ParseInflectionTables(src string) morph.Forms {
	var forms morph.Forms
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return forms
	}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		grid := extractGrid(table)
		for r, row := range grid {
			for c, cell := range row {
				slot := slotForLabel(normalizeLabel(cell.text), &forms)
				if slot == nil || *slot != "" {
					continue
				}
				if v := grid.valueFor(r, c); v != "" {
					*slot = v
				}
			}
		}
	})
	return forms
}

type tableGrid [][]tableCell

func extractGrid(table *goquery.Selection) tableGrid {
	var grid tableGrid
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []tableCell
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, tableCell{
				text:     cell.Text(),
				isHeader: cell.Is("th"),
			})
		})
		grid = append(grid, cells)
	})
	return grid
}

// valueFor finds the form value belonging to a label at grid
// position [r][c]: the right neighbor for row-oriented tables, the
// cell below for column-oriented ones. Header cells never hold
// values.
func (g tableGrid) valueFor(r, c int) string {
	row := g[r]
	if c+1 < len(row) && !row[c+1].isHeader {
		if v := cleanFormValue(row[c+1].text); v != "" {
			return v
		}
	}
	if r+1 < len(g) && c < len(g[r+1]) && !g[r+1][c].isHeader {
		if v := cleanFormValue(g[r+1][c].text); v != "" {
			return v
		}
	}
	return ""
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// labelHasWord tests for a whole-word occurrence; plain substring
// matching cannot tell 'voltooid' from 'onvoltooid' or 'perfectum'
// from 'imperfectum'.
func labelHasWord(label, word string) bool {
	for _, field := range strings.Fields(label) {
		if field == word {
			return true
		}
	}
	return false
}

// slotForLabel picks the Forms field a table label refers to, nil
// for labels carrying no single-word form.
func slotForLabel(label string, forms *morph.Forms) *string {
	switch {
	case strings.Contains(label, "voltooid deelwoord") || labelHasWord(label, "perfectum"):
		return &forms.PastParticiple
	case labelHasWord(label, "voltooid"):
		// 'voltooid (verleden) tijd' rows combine an auxiliary verb
		// with the participle, there is no single form to take
		return nil
	case strings.Contains(label, "verleden tijd") || labelHasWord(label, "imperfectum"):
		return &forms.PastTense
	case strings.Contains(label, "tegenwoordige tijd") || labelHasWord(label, "presens"):
		return &forms.PresentTense
	case strings.Contains(label, "vergrotende trap") || labelHasWord(label, "comparatief"):
		return &forms.Comparative
	case strings.Contains(label, "overtreffende trap") || labelHasWord(label, "superlatief"):
		return &forms.Superlative
	case labelHasWord(label, "meervoud"):
		return &forms.Plural
	}
	return nil
}

// cleanFormValue reduces a table cell text to its first word; cells
// often carry footnote markers or alternative spellings which are of
// no use here. Single characters are rejected as markup remnants.
func cleanFormValue(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	if v := fields[0]; len(v) > 1 {
		return v
	}
	return ""
}

// stripTags removes HTML markup from a definition snippet and
// collapses all whitespace. Character entities are decoded along the
// way.
func stripTags(src string) string {
	tkn := html.NewTokenizer(strings.NewReader(src))
	var buf strings.Builder
	for {
		tt := tkn.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			buf.WriteString(tkn.Token().Data)
		}
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}
