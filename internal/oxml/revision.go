package oxml

import (
	"strconv"

	"github.com/beevik/etree"
)

// CT_Ins wraps a <w:ins> revision wrapper.
type CT_Ins struct{ Element }

// CT_Del wraps a <w:del> revision wrapper.
type CT_Del struct{ Element }

// CT_DelText wraps a <w:delText> leaf.
type CT_DelText struct{ Element }

// BuildIns constructs a detached <w:ins id=id author=author date=date>
// wrapping a single synthesized run holding text, with rPr cloned from
// anchorRPr (may be nil). xml:space="preserve" is set on the <w:t> whenever
// text has leading/trailing whitespace.
//
// Resulting shape:
//
//	<w:ins w:id="N" w:author="A" w:date="...">
//	  <w:r>[<w:rPr>...</w:rPr>]<w:t [xml:space="preserve"]>TEXT</w:t></w:r>
//	</w:ins>
func BuildIns(id int, author, date, text string, anchorRPr *etree.Element) *etree.Element {
	ins := OxmlElement("w:ins")
	setRevisionAttrs(ins, id, author, date)

	run := OxmlElement("w:r")
	if anchorRPr != nil {
		run.AddChild(anchorRPr.Copy())
	}
	t := OxmlElement("w:t")
	t.SetText(text)
	ensurePreserveSpace(t)
	run.AddChild(t)
	ins.AddChild(run)
	return ins
}

// BuildDel constructs a detached <w:del id=id author=author date=date>
// wrapping a clone of run's formatting and a <w:delText> holding run's
// text — the <w:t> → <w:delText> rename is structural, etree has no
// in-place element rename.
func BuildDel(id int, author, date string, run *CT_R) *etree.Element {
	del := OxmlElement("w:del")
	setRevisionAttrs(del, id, author, date)

	newRun := OxmlElement("w:r")
	if rPr := run.CloneRPr(); rPr != nil {
		newRun.AddChild(rPr)
	}
	delText := OxmlElement("w:delText")
	delText.SetText(run.Text())
	ensurePreserveSpace(delText)
	newRun.AddChild(delText)
	del.AddChild(newRun)
	return del
}

// WrapperRun returns the single <w:r> child of a <w:ins> or <w:del>
// wrapper built by BuildIns/BuildDel, or nil if absent.
func WrapperRun(wrapper *etree.Element) *CT_R {
	e := firstChildElement(wrapper, "w", "r")
	if e == nil {
		return nil
	}
	return NewCT_R(e)
}

func setRevisionAttrs(e *etree.Element, id int, author, date string) {
	e.CreateAttr("w:id", strconv.Itoa(id))
	e.CreateAttr("w:author", author)
	e.CreateAttr("w:date", date)
}
