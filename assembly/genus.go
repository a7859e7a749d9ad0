// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"regexp"
	"strings"
	"unicode"
)

// NoDate is used in place of a date when none can be found in a file name.
const NoDate = "None"

var dateToken = regexp.MustCompile(`[0-9]{2}-[0-9]{2}-[0-9]{4}`)

// Date returns the first DD-MM-YYYY token in name, as written.
func Date(name string) (date string, ok bool) {
	date = dateToken.FindString(name)
	return date, date != ""
}

// DateOrPlaceholder returns the date token in name, or NoDate.
func DateOrPlaceholder(name string) string {
	if d, ok := Date(name); ok {
		return d
	}
	return NoDate
}

// Exclude is the organism name fragment marking records dropped by Filter.
const Exclude = "Salmonella"

// qualifiers are removed from organism names before genus extraction.
var qualifiers = []string{"aff.", "cf.", "Candidatus "}

// Genus returns the genus of the organism name: the first word remaining
// after removing taxonomic qualifiers and any character that is not an
// ASCII letter, ASCII digit or space. Genus returns the empty string if
// no word remains.
func Genus(name string) string {
	for _, q := range qualifiers {
		name = strings.ReplaceAll(name, q, "")
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		}
		return -1
	}, name)
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// Excluded returns whether the organism name is excluded from splitting.
func Excluded(name string) bool {
	return strings.Contains(name, Exclude)
}

// Filter returns the records of recs that are not Excluded, in order.
func Filter(recs []Record) []Record {
	var kept []Record
	for _, r := range recs {
		if !Excluded(r.Organism) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Annotate sets the Genus field of each record from its organism name.
func Annotate(recs []Record) {
	for i := range recs {
		recs[i].Genus = Genus(recs[i].Organism)
	}
}
