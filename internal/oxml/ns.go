// Package oxml provides low-level XML element manipulation for the
// wordprocessing subset of Office Open XML that the redline engine needs:
// paragraphs, runs, tables, and tracked-change revision wrappers.
package oxml

import (
	"fmt"
	"strings"
)

// Nsmap maps namespace prefixes to their URIs.
var Nsmap = map[string]string{
	"cp":  "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
	"dc":  "http://purl.org/dc/elements/1.1/",
	"r":   "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"w":   "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"w14": "http://schemas.microsoft.com/office/word/2010/wordml",
	"xml": "http://www.w3.org/XML/1998/namespace",
}

// Pfxmap is the reverse mapping of URI → prefix.
var Pfxmap map[string]string

func init() {
	Pfxmap = make(map[string]string, len(Nsmap))
	for pfx, uri := range Nsmap {
		Pfxmap[uri] = pfx
	}
}

// Relationship type URIs used to resolve the main document and comments parts.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeComments       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
)

// Content types for the parts this package reads or writes.
const (
	ContentTypeDocumentMain = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeComments     = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"
)

// TryQn converts a namespace-prefixed tag to Clark notation, e.g.
// TryQn("w:p") returns "{http://schemas.openxmlformats.org/wordprocessingml/2006/main}p".
func TryQn(tag string) (string, error) {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return tag, nil
	}
	uri, exists := Nsmap[prefix]
	if !exists {
		return "", fmt.Errorf("oxml: unknown namespace prefix %q in tag %q", prefix, tag)
	}
	return "{" + uri + "}" + local, nil
}

// Qn converts a namespace-prefixed tag to Clark notation, panicking on an
// unknown prefix. Use only with compile-time known tags.
func Qn(tag string) string {
	s, err := TryQn(tag)
	if err != nil {
		panic(err)
	}
	return s
}
