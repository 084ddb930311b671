// Package extract implements the read-only flat-text extractor (`redline
// extract`). It shares BuildFlatView with internal/redline so the text it
// produces is always byte-identical to what the Mapper sees — the surest
// way to hold that identity is to never have two implementations of the
// flattening rule.
package extract

import (
	"github.com/corvid/redline-docx/internal/docmodel"
	"github.com/corvid/redline-docx/internal/opc"
	"github.com/corvid/redline-docx/internal/redline"
)

// Text opens blob as an OPC package, parses its main document part, and
// returns its flat text view. It does not normalize the document first —
// extraction is read-only. Only the direct <w:r> children of each
// paragraph contribute text, so runs inside pre-existing <w:ins>/<w:del>
// wrappers do not appear in the result.
func Text(blob []byte) (string, error) {
	pkg, err := opc.OpenBytes(blob)
	if err != nil {
		return "", err
	}
	doc, err := docmodel.Parse(pkg.DocumentXML())
	if err != nil {
		return "", err
	}
	flat, _ := redline.BuildFlatView(doc.Paragraphs())
	return flat, nil
}
