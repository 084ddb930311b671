package redline

import (
	"github.com/corvid/redline-docx/internal/docmodel"
	"github.com/corvid/redline-docx/internal/oxml"
)

// Normalize canonicalizes doc prior to mapping: adjacent runs with
// structurally equal run-properties are coalesced, runs with empty text
// are dropped, and <w:smartTag> wrappers are flattened. Run once, at
// engine construction.
func Normalize(doc *docmodel.Document) {
	for _, p := range doc.Paragraphs() {
		p.UnwrapSmartTags()
		dropEmptyRuns(p)
		coalesceRuns(p)
	}
}

func coalesceRuns(p *oxml.CT_P) {
	runs := p.Runs()
	var i int
	for i < len(runs)-1 {
		a, b := runs[i], runs[i+1]
		if oxml.RPrEqual(a.RPrElement(), b.RPrElement()) {
			a.SetText(a.Text() + b.Text())
			p.RemoveRun(b)
			runs = append(runs[:i+1], runs[i+2:]...)
			continue
		}
		i++
	}
}

func dropEmptyRuns(p *oxml.CT_P) {
	for _, r := range p.Runs() {
		if r.Text() == "" {
			p.RemoveRun(r)
		}
	}
}
