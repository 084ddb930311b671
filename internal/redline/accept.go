package redline

import (
	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/docmodel"
)

// Reject removes every <w:ins> subtree and unwraps every <w:del> back into
// a live run (renaming <w:delText> back to <w:t>), restoring the document
// to its pre-redline flat text.
func Reject(doc *docmodel.Document) {
	walkRevisions(doc, func(parent, e *etree.Element) {
		switch {
		case e.Space == "w" && e.Tag == "ins":
			parent.RemoveChild(e)
		case e.Space == "w" && e.Tag == "del":
			unwrapDel(parent, e)
		}
	})
}

// Accept unwraps every <w:ins> back to a live run and removes every
// <w:del> subtree entirely, resolving the document to its post-redline
// text with no tracked-change markup remaining.
func Accept(doc *docmodel.Document) {
	walkRevisions(doc, func(parent, e *etree.Element) {
		switch {
		case e.Space == "w" && e.Tag == "ins":
			unwrapIns(parent, e)
		case e.Space == "w" && e.Tag == "del":
			parent.RemoveChild(e)
		}
	})
}

// walkRevisions applies fn to every direct <w:ins>/<w:del> child of every
// paragraph in the document. fn is responsible for removing or replacing
// the element in its parent.
func walkRevisions(doc *docmodel.Document, fn func(parent, e *etree.Element)) {
	for _, p := range doc.Paragraphs() {
		for _, child := range directRevisionChildren(p.Raw()) {
			fn(p.Raw(), child)
		}
	}
}

func directRevisionChildren(p *etree.Element) []*etree.Element {
	var result []*etree.Element
	for _, c := range p.ChildElements() {
		if c.Space == "w" && (c.Tag == "ins" || c.Tag == "del") {
			result = append(result, c)
		}
	}
	return result
}

// unwrapIns splices ins's inner <w:r> children directly into parent at
// ins's position, then removes the now-empty wrapper.
func unwrapIns(parent, ins *etree.Element) {
	spliceChildrenInPlace(parent, ins)
}

// unwrapDel splices del's inner <w:r> children into parent, renaming each
// <w:delText> leaf back to <w:t>, then removes the wrapper.
func unwrapDel(parent, del *etree.Element) {
	for _, run := range del.ChildElements() {
		if run.Space != "w" || run.Tag != "r" {
			continue
		}
		for _, leaf := range run.ChildElements() {
			if leaf.Space == "w" && leaf.Tag == "delText" {
				leaf.Tag = "t"
			}
		}
	}
	spliceChildrenInPlace(parent, del)
}

func spliceChildrenInPlace(parent, wrapper *etree.Element) {
	idx := childIndexOf(parent, wrapper)
	if idx < 0 {
		return
	}
	children := wrapper.ChildElements()
	parent.RemoveChild(wrapper)
	for i, c := range children {
		wrapper.RemoveChild(c)
		parent.InsertChildAt(idx+i, c)
	}
}

func childIndexOf(parent, child *etree.Element) int {
	for i, c := range parent.Child {
		if el, ok := c.(*etree.Element); ok && el == child {
			return i
		}
	}
	return -1
}
