// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides, per file name, whether a file is exported to the
// sync directory and under which name.
package classify

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/igig-sync/pkg/types"
)

const (
	// TargetSuffix is the only extension exported, compared case-insensitively.
	TargetSuffix = ".pdf"

	// BookListMaxLen is the exclusive upper bound on book-list stem length.
	BookListMaxLen = 12

	// Marker starts stems that need a sync-safe rewrite.
	Marker = "!"

	markerReplacement = "_"
)

// junkSuffixes lists sidecar extensions that are never exported.
// Matched case-sensitively.
var junkSuffixes = map[string]bool{
	".bookmark": true,
	".inote":    true,
	".idraw":    true,
	".plist":    true,
}

// JunkSuffixes returns the junk extension set, sorted.
func JunkSuffixes() []string {
	out := make([]string, 0, len(junkSuffixes))
	for s := range junkSuffixes {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SplitName splits a file name into stem and final extension. A leading dot
// does not start an extension (".hidden" has no suffix) and a name ending in
// a dot has no suffix.
func SplitName(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsJunk reports whether suffix is a junk sidecar extension.
func IsJunk(suffix string) bool {
	return junkSuffixes[suffix]
}

// IsPDF reports whether suffix is ".pdf" in any letter case.
func IsPDF(suffix string) bool {
	return strings.EqualFold(suffix, TargetSuffix)
}

// IsBookListStem detects the short cryptic names used by book-list files
// (e.g. "crealbk1"): fewer than BookListMaxLen characters, no uppercase
// letters, no spaces. A stem without letters qualifies.
func IsBookListStem(stem string) bool {
	if utf8.RuneCountInString(stem) >= BookListMaxLen {
		return false
	}
	if strings.Contains(stem, " ") {
		return false
	}
	return strings.IndexFunc(stem, unicode.IsUpper) < 0
}

// SafeName returns the sync-safe file name for stem+suffix. Stems starting
// with Marker have every marker in their first word replaced ("!b draft"
// becomes "_b draft"); other stems are returned unchanged.
func SafeName(stem, suffix string) string {
	if !strings.HasPrefix(stem, Marker) {
		return stem + suffix
	}

	first, rest := stem, ""
	if i := strings.IndexFunc(stem, isSpace); i >= 0 {
		first = stem[:i]
		rest = strings.TrimLeftFunc(stem[i:], isSpace)
	}
	first = strings.ReplaceAll(first, Marker, markerReplacement)

	return strings.TrimFunc(first+" "+rest, isSpace) + suffix
}

// isSpace reports whether r separates words in a stem: Unicode white
// space plus the ASCII information separators U+001C to U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Classify applies the export rules to a file name in order: junk
// extensions, the PDF filter, book-list pass-through, then the marker
// rewrite.
func Classify(name string) types.Decision {
	stem, suffix := SplitName(name)
	d := types.Decision{Name: name, Stem: stem, Suffix: suffix}

	switch {
	case IsJunk(suffix):
		d.Outcome = types.OutcomeJunk
	case !IsPDF(suffix):
		d.Outcome = types.OutcomeNonPDF
	case IsBookListStem(stem):
		d.Outcome = types.OutcomeBookList
		d.DestName = name
	default:
		d.DestName = SafeName(stem, suffix)
		if d.DestName == name {
			d.Outcome = types.OutcomeUnchanged
		} else {
			d.Outcome = types.OutcomeRenamed
		}
	}
	return d
}
