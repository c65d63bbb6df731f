// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Outcome tags the classification of a single file name.
type Outcome string

const (
	OutcomeJunk      Outcome = "junk"
	OutcomeNonPDF    Outcome = "non_pdf"
	OutcomeBookList  Outcome = "book_list"
	OutcomeRenamed   Outcome = "renamed"
	OutcomeUnchanged Outcome = "unchanged"
)

// Decision is the classification of one file and, for files that are
// copied, the name they receive in the sync directory.
type Decision struct {
	// Name is the original file name (stem + suffix).
	Name string `json:"name" yaml:"name"`

	// Stem is Name without its final extension.
	Stem string `json:"stem" yaml:"stem"`

	// Suffix is the final extension including the leading dot, or empty.
	Suffix string `json:"suffix" yaml:"suffix"`

	// Outcome determines whether and how the file is exported.
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// DestName is the file name in the sync directory. Empty for skipped files.
	DestName string `json:"dest_name,omitempty" yaml:"dest_name,omitempty"`
}

// Copies reports whether the exporter writes this file to the sync directory.
func (d Decision) Copies() bool {
	return d.Outcome != OutcomeJunk && d.Outcome != OutcomeNonPDF
}
