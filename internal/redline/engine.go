package redline

import (
	"log/slog"
	"sort"
	"time"

	"github.com/beevik/etree"
	"github.com/corvid/redline-docx/internal/docmodel"
	"github.com/corvid/redline-docx/internal/opc"
	"github.com/corvid/redline-docx/internal/oxml"
)

// Engine is the top-level orchestrator: normalize → map → apply per edit →
// rebuild → save. It owns the document tree exclusively for its lifetime;
// Mapper handles it returns are invalidated by every mutation.
//
// Grounded on original_source/src/adeu/redline/engine.py's RedlineEngine:
// same construction order, same sort-by-length apply_edits, same
// per-operation dispatch table. The comment attachment step is this
// repo's own extension.
type Engine struct {
	pkg      *opc.Package
	doc      *docmodel.Document
	comments *docmodel.Comments
	mapper   *Mapper
	builder  *RevisionBuilder
	author   string
	date     string
	log      *slog.Logger
}

// NewEngine opens blob as an OPC package, parses its main document part,
// normalizes it, and builds the Mapper. author names the party track
// changes are attributed to; the construction timestamp is recorded at
// second resolution in UTC, RFC3339 form.
func NewEngine(blob []byte, author string, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	pkg, err := opc.OpenBytes(blob)
	if err != nil {
		return nil, err
	}
	doc, err := docmodel.Parse(pkg.DocumentXML())
	if err != nil {
		return nil, err
	}
	Normalize(doc)

	var comments *docmodel.Comments
	if cBlob, ok := pkg.CommentsXML(); ok {
		comments, err = docmodel.ParseComments(cBlob)
		if err != nil {
			return nil, err
		}
	}

	timestamp := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	return &Engine{
		pkg:      pkg,
		doc:      doc,
		comments: comments,
		mapper:   NewMapper(doc),
		builder:  NewRevisionBuilder(author, timestamp),
		author:   author,
		date:     timestamp,
		log:      log,
	}, nil
}

// ApplyEdits applies edits in descending target-text-length order (ties
// keep input order) — longer, more specific targets bind before shorter
// ones that might be substrings of them. Returns the counts of applied
// and skipped edits.
func (e *Engine) ApplyEdits(edits []Edit) (applied, skipped int) {
	ordered := make([]int, len(edits))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(edits[ordered[i]].TargetText) > len(edits[ordered[j]].TargetText)
	})

	for _, idx := range ordered {
		if e.applySingleEdit(edits[idx]) {
			applied++
		} else {
			skipped++
		}
	}
	return applied, skipped
}

func (e *Engine) resolve(edit Edit) ([]*oxml.CT_R, error) {
	if edit.MatchStartIndex != nil {
		return e.mapper.FindTargetRunsAt(edit.TargetText, *edit.MatchStartIndex)
	}
	return e.mapper.FindTargetRuns(edit.TargetText)
}

func (e *Engine) applySingleEdit(edit Edit) bool {
	switch edit.Operation {
	case Deletion:
		runs, err := e.resolve(edit)
		if err != nil {
			e.log.Warn("skipping edit", "operation", edit.Operation, "target", truncate(edit.TargetText, 20), "error", err)
			return false
		}
		var lastDel *etree.Element
		for _, run := range runs {
			lastDel = e.builder.TrackDeleteRun(run)
		}
		e.attachComment(edit, lastDel)
		e.mapper.Rebuild()
		return true

	case Modification:
		if edit.NewText == "" {
			e.log.Warn("skipping edit: empty new_text on MODIFICATION", "target", truncate(edit.TargetText, 20))
			return false
		}
		runs, err := e.resolve(edit)
		if err != nil {
			e.log.Warn("skipping edit", "operation", edit.Operation, "target", truncate(edit.TargetText, 20), "error", err)
			return false
		}
		anchorRPr := runs[len(runs)-1].CloneRPr()
		var lastDel *etree.Element
		for _, run := range runs {
			lastDel = e.builder.TrackDeleteRun(run)
		}
		ins := e.builder.TrackInsert(edit.NewText, anchorRPr)
		oxml.InsertAfter(lastDel, ins)
		e.attachComment(edit, ins)
		e.mapper.Rebuild()
		return true

	case Insertion:
		if edit.NewText == "" {
			err := newEmptyInsertionError()
			e.log.Warn("skipping edit", "operation", edit.Operation, "target", truncate(edit.TargetText, 20), "error", err)
			return false
		}
		runs, err := e.resolve(edit)
		if err != nil {
			e.log.Warn("skipping edit", "operation", edit.Operation, "target", truncate(edit.TargetText, 20), "error", err)
			return false
		}
		anchor := runs[len(runs)-1]
		ins := e.builder.TrackInsert(edit.NewText, anchor.CloneRPr())
		oxml.InsertAfter(anchor.Raw(), ins)
		e.attachComment(edit, ins)
		e.mapper.Rebuild()
		return true

	default:
		e.log.Warn("skipping edit: unknown operation", "operation", edit.Operation)
		return false
	}
}

// attachComment handles an edit's optional review comment: when edit
// carries a non-empty Comment, it is appended to word/comments.xml
// (created lazily on first use) and the revision wrapper's inner run is
// bracketed with commentRangeStart/commentRangeEnd/commentReference
// markers. A failure here never undoes the underlying edit — it is logged
// and skipped.
func (e *Engine) attachComment(edit Edit, wrapper *etree.Element) {
	if edit.Comment == "" || wrapper == nil {
		return
	}
	run := oxml.WrapperRun(wrapper)
	if run == nil {
		e.log.Warn("skipping comment: revision wrapper has no run", "comment", truncate(edit.Comment, 20))
		return
	}
	if e.comments == nil {
		e.comments = docmodel.NewComments()
	}
	id := e.comments.Root().NextID()
	e.comments.Root().AddComment(id, e.author, e.date, edit.Comment)
	oxml.MarkCommentRange(run, id)
}

// Save serializes the (possibly mutated) document back to archive bytes.
func (e *Engine) Save() ([]byte, error) {
	docBytes, err := e.doc.Serialize()
	if err != nil {
		return nil, err
	}
	e.pkg.SetDocumentXML(docBytes)

	if e.comments != nil {
		cBytes, err := e.comments.Serialize()
		if err != nil {
			return nil, err
		}
		if err := e.pkg.SetCommentsXML(cBytes); err != nil {
			return nil, err
		}
	}

	return e.pkg.SaveToBytes()
}
