// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// stringWidth calculates the rendered width of text, accounting for tabstops
// and for characters that occupy more (or less) than one terminal cell.
func stringWidth(text string) int {
	return uniseg.StringWidth(expandTabs(text))
}

// expandTabs replaces every tab in text with enough spaces to reach the next
// tabstop.
func expandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}

	var out strings.Builder
	var column int
	for gs := uniseg.NewGraphemes(text); gs.Next(); {
		g := gs.Str()
		if g == "\t" {
			pad := TabstopWidth - column%TabstopWidth
			out.WriteString(strings.Repeat(" ", pad))
			column += pad
			continue
		}
		out.WriteString(g)
		column += gs.Width()
	}
	return out.String()
}
