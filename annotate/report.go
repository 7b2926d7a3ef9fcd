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

package annotate

import (
	"fmt"
	"io"
	"strings"

	"github.com/czcorpus/woordwijzer/morph"
)

const (
	reportLineWidth = 80

	// maxShownMeanings limits the meanings per entry in the text
	// report; the JSON output always carries all of them
	maxShownMeanings = 3
)

// WriteReport renders entries as a numbered plain text report in
// their original order.
func WriteReport(w io.Writer, entries []WordEntry) error {
	var buf strings.Builder
	sep := strings.Repeat("=", reportLineWidth)
	buf.WriteString("\n" + sep + "\n")
	buf.WriteString("DUTCH WORD ANALYSIS RESULTS\n")
	buf.WriteString(sep + "\n\n")
	for i, entry := range entries {
		writeEntry(&buf, i+1, entry)
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func writeEntry(buf *strings.Builder, num int, entry WordEntry) {
	fmt.Fprintf(buf, "%d. %s\n", num, strings.ToUpper(entry.Word))
	buf.WriteString(strings.Repeat("-", reportLineWidth) + "\n")
	if entry.Class.IsKnown() {
		fmt.Fprintf(buf, "Type: %s\n", entry.Class)
	}
	if len(entry.Meanings) > 0 {
		buf.WriteString("Meanings:\n")
		for i, meaning := range entry.Meanings {
			if i >= maxShownMeanings {
				break
			}
			fmt.Fprintf(buf, "  • %s\n", meaning)
		}
	} else {
		buf.WriteString("Meanings: (not found - may need to be added manually)\n")
	}
	if labeled := entry.Forms.Labeled(); len(labeled) > 0 {
		buf.WriteString("Forms:\n")
		for _, lf := range labeled {
			fmt.Fprintf(buf, "  %s: %s\n", lf.Label, lf.Value)
		}
		if entry.Class == morph.ClassVerb && entry.Forms.PastTense == "" {
			buf.WriteString("  Note: this may be an irregular verb - forms may need verification\n")
		}
	} else {
		buf.WriteString("Forms: (not found - may need manual lookup)\n")
	}
	if entry.Note != "" {
		fmt.Fprintf(buf, "Note: %s\n", entry.Note)
	}
	buf.WriteString("\n")
}
