// Package corpus models a collection of UD sentences grouped by source
// document, the unit the storage backends persist and the CLI batches over.
package corpus

import "github.com/oiextractor/core/ud"

// Doc is one source document: its metadata plus the sentences parsed from
// it. Content (Sentences) is not necessarily loaded by every repository
// method — List returns metadata only, Read loads content.
type Doc struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Labels []string `json:"labels,omitempty"`

	Sentences []*ud.Sentence `json:"sentences,omitempty"`
}

// Library is a collection of Doc.
type Library []Doc
