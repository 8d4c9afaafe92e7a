// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prsync

import (
	"strconv"
	"strings"
	"unicode"
)

const slugSeparator = '-'

// Slugify lowercases title, turns every run of characters that are not
// alphanumeric into a single '-', and trims '-' from both ends. A title with
// no alphanumeric characters yields "".
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingSep := false
	for _, r := range lowerTitle(title) {
		if isSlugRune(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

// isSlugRune reports whether r survives into a slug: letters, every number
// category (so superscripts and roman numerals count) and the combining
// vowel signs of scripts such as Devanagari.
func isSlugRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// lowerTitle is strings.ToLower plus the final sigma rule: a capital sigma
// that ends a word lowercases to 'ς' instead of 'σ'.
func lowerTitle(title string) string {
	if !strings.ContainsRune(title, 'Σ') {
		return strings.ToLower(title)
	}

	runes := []rune(title)
	var b strings.Builder
	b.Grow(len(title))
	for i, r := range runes {
		if r == 'Σ' && isFinalSigma(runes, i) {
			b.WriteRune('ς')
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isFinalSigma(runes []rune, i int) bool {
	before := false
	for j := i - 1; j >= 0; j-- {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		before = isCased(runes[j])
		break
	}
	if !before {
		return false
	}
	for j := i + 1; j < len(runes); j++ {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		return !isCased(runes[j])
	}
	return true
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

func isCaseIgnorable(r rune) bool {
	switch r {
	case '\'', '.', ':', '\u00b7', '\u2019':
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
}

// Filename returns the extension-less output name "<number>-<slug>".
func Filename(number int, title string) string {
	return strconv.Itoa(number) + string(slugSeparator) + Slugify(title)
}
