package oxml

import (
	"strconv"

	"github.com/beevik/etree"
)

// CT_Comments wraps the root <w:comments> element of word/comments.xml.
type CT_Comments struct{ Element }

// NewCT_Comments wraps an existing <w:comments> element.
func NewCT_Comments(e *etree.Element) *CT_Comments { return &CT_Comments{Element{e: e}} }

// NewComments builds a fresh, empty <w:comments> document root, with the
// namespace declarations a standalone comments part needs.
func NewComments() *CT_Comments {
	e := OxmlElement("w:comments")
	e.CreateAttr("xmlns:w", Nsmap["w"])
	return &CT_Comments{Element{e: e}}
}

// Comments returns every <w:comment> child, in document order.
func (cs *CT_Comments) Comments() []*CT_Comment {
	var result []*CT_Comment
	for _, e := range childElements(cs.e, "w", "comment") {
		result = append(result, &CT_Comment{Element{e: e}})
	}
	return result
}

// NextID returns one more than the highest existing comment id, or 0 if
// there are none — mirrors the revision builder's own monotonic-id
// convention, applied to the separate comments id space.
func (cs *CT_Comments) NextID() int {
	max := -1
	for _, c := range cs.Comments() {
		if id, err := strconv.Atoi(c.e.SelectAttrValue("w:id", "-1")); err == nil && id > max {
			max = id
		}
	}
	return max + 1
}

// AddComment appends a new <w:comment id=id author=author date=date>
// holding a single paragraph of text and returns it.
//
// Generalized from Comments.AddComment (go-docx/pkg/docx/comments.go),
// narrowed to the single-paragraph case the redline core needs — one
// comment per commented edit, never multi-paragraph comment bodies.
func (cs *CT_Comments) AddComment(id int, author, date, text string) *CT_Comment {
	c := OxmlElement("w:comment")
	c.CreateAttr("w:id", strconv.Itoa(id))
	c.CreateAttr("w:author", author)
	c.CreateAttr("w:date", date)

	p := OxmlElement("w:p")
	r := OxmlElement("w:r")
	t := OxmlElement("w:t")
	t.SetText(text)
	ensurePreserveSpace(t)
	r.AddChild(t)
	p.AddChild(r)
	c.AddChild(p)

	cs.e.AddChild(c)
	return &CT_Comment{Element{e: c}}
}

// CT_Comment wraps a single <w:comment> element.
type CT_Comment struct{ Element }

// ID returns this comment's w:id attribute.
func (c *CT_Comment) ID() int {
	id, _ := strconv.Atoi(c.e.SelectAttrValue("w:id", "0"))
	return id
}

// MarkCommentRange wraps run with a <w:commentRangeStart>/<w:commentRangeEnd>
// pair and a trailing reference run, anchoring commentID to exactly that run.
//
// Generalized from CT_R.InsertCommentRangeStartAbove /
// InsertCommentRangeEndAndReferenceBelow (text_run_custom.go), called
// together here since the redline core always wants both markers placed
// around one run in a single step.
func MarkCommentRange(run *CT_R, commentID int) {
	parent := run.Parent()
	if parent == nil {
		return
	}
	idStr := strconv.Itoa(commentID)

	start := OxmlElement("w:commentRangeStart")
	start.CreateAttr("w:id", idStr)
	idx := childIndex(parent, run.e)
	parent.InsertChildAt(idx, start)

	end := OxmlElement("w:commentRangeEnd")
	end.CreateAttr("w:id", idStr)
	insertAfter(parent, run.e, end)

	refRun := OxmlElement("w:r")
	rPr := OxmlElement("w:rPr")
	rStyle := OxmlElement("w:rStyle")
	rStyle.CreateAttr("w:val", "CommentReference")
	rPr.AddChild(rStyle)
	refRun.AddChild(rPr)
	ref := OxmlElement("w:commentReference")
	ref.CreateAttr("w:id", idStr)
	refRun.AddChild(ref)
	insertAfter(parent, end, refRun)
}
