package redline

import (
	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/oxml"
)

// RevisionBuilder emits <w:ins>/<w:del> wrapper elements carrying a
// monotonically increasing id, a fixed author, and a fixed timestamp. The
// id/author/date are engine-wide constants threaded in by the Engine at
// construction.
type RevisionBuilder struct {
	author string
	date   string
	nextID int
}

// NewRevisionBuilder creates a builder whose first emitted id is 1.
func NewRevisionBuilder(author, date string) *RevisionBuilder {
	return &RevisionBuilder{author: author, date: date, nextID: 1}
}

func (b *RevisionBuilder) allocID() int {
	id := b.nextID
	b.nextID++
	return id
}

// TrackInsert builds a detached <w:ins> wrapping text, styled from
// anchorRPr (nil permitted — unstyled insertion).
func (b *RevisionBuilder) TrackInsert(text string, anchorRPr *etree.Element) *etree.Element {
	return oxml.BuildIns(b.allocID(), b.author, b.date, text, anchorRPr)
}

// TrackDeleteRun replaces run in its parent with a <w:del> wrapping its
// formatting and text (renamed to <w:delText>), and returns the wrapper.
func (b *RevisionBuilder) TrackDeleteRun(run *oxml.CT_R) *etree.Element {
	del := oxml.BuildDel(b.allocID(), b.author, b.date, run)
	run.ReplaceWith(del)
	return del
}
