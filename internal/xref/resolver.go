package xref

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"substation/internal/ass"
)

// refName is the Name field value that marks a placeholder event.
const refName = "ref"

// ErrReference marks an unresolvable cross-reference: a placeholder whose
// Effect lacks the "!" separator, or one naming a document that is not in
// the collection.
var ErrReference = errors.New("unresolvable cross-reference")

// Resolve expands every placeholder event in every document, in place.
// Documents are processed in sorted key order so runs are deterministic.
//
// Each placeholder is replaced by zero or more clones of itself, one per
// event in the target document whose Effect equals the reference key, taken
// in target order. A clone keeps the placeholder's timing, style, and
// margins, but takes its line type, Name, and Text from the matched event,
// and its Effect is cleared. Replacements are not re-scanned, so there is no
// transitive expansion; resolving an already-resolved set is a no-op.
//
// Any malformed or dangling reference aborts the whole pass.
func Resolve(documents map[string]*ass.Document) error {
	ids := make([]string, 0, len(documents))
	for id := range documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := resolveDocument(id, documents[id], documents); err != nil {
			return err
		}
	}
	return nil
}

func resolveDocument(id string, doc *ass.Document, documents map[string]*ass.Document) error {
	// Rebuild the event list instead of splicing in place; every event is
	// visited exactly once and replacements are never re-scanned.
	resolved := make([]*ass.Event, 0, len(doc.Events))
	for _, event := range doc.Events {
		if event.Name() != refName {
			resolved = append(resolved, event)
			continue
		}

		targetID, key, ok := strings.Cut(event.Effect(), "!")
		if !ok {
			return fmt.Errorf("%w: document %q: effect %q lacks '!' separator", ErrReference, id, event.Effect())
		}
		target := doc
		if targetID != "" {
			target, ok = documents[targetID]
			if !ok {
				return fmt.Errorf("%w: document %q: unknown target document %q", ErrReference, id, targetID)
			}
		}

		for _, match := range target.Events {
			if match.Effect() != key {
				continue
			}
			clone := event.Clone()
			clone.Type = match.Type
			clone.SetName(match.Name())
			clone.SetEffect("")
			clone.SetText(match.Text())
			resolved = append(resolved, clone)
		}
	}
	doc.Events = resolved
	return nil
}
