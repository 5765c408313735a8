package extract

import (
	"strings"

	"substation/internal/ass"
)

// titleStyle is the style name that marks on-screen episode title events.
const titleStyle = "TitleEP"

// chapterName is the event Name that marks a chapter Comment.
const chapterName = "chapter"

// Title returns the episode title for the given language, assembled from the
// master document's TitleEP events.
//
// The first TitleEP event fixes the reference (start, end) pair; later
// TitleEP events count only when their pair matches it exactly, so stray
// title cards elsewhere in the file are ignored while multi-part titles at
// the same timestamp are joined. Of the matching events, those tagged with
// the language are joined with single spaces. Returns "" when nothing
// matches; fails only when a TitleEP timestamp cannot be decoded.
func Title(doc *ass.Document, language string) (string, error) {
	var refStart, refEnd float64
	var parts []string
	seen := false
	for _, event := range doc.Events {
		if event.StyleName() != titleStyle {
			continue
		}
		start, err := event.Start()
		if err != nil {
			return "", err
		}
		end, err := event.End()
		if err != nil {
			return "", err
		}
		if !seen {
			refStart, refEnd = start, end
			seen = true
		} else if start != refStart || end != refEnd {
			continue
		}
		if event.Name() == language {
			parts = append(parts, event.Text())
		}
	}
	return strings.Join(parts, " "), nil
}

// Language builds a fresh single-language document from the master.
//
// Script info is copied with Title overwritten by Title(doc, language);
// field orders are reset to the canonical defaults rather than inherited;
// styles are cloned unfiltered. Events are kept when tagged with the
// language and either spoken dialogue or, for the Japanese track only,
// comments (untranslated notes stay with the source language). Relative
// event order is preserved.
func Language(doc *ass.Document, language string) (*ass.Document, error) {
	title, err := Title(doc, language)
	if err != nil {
		return nil, err
	}

	out := ass.NewDocument()
	out.ScriptInfo = doc.ScriptInfo.Clone()
	out.ScriptInfo.Set("Title", title)

	for _, style := range doc.Styles {
		out.Styles = append(out.Styles, style.Clone())
	}
	for _, event := range doc.Events {
		if event.Name() != language {
			continue
		}
		switch {
		case event.Type == "Dialogue":
		case event.Type == "Comment" && language == "ja":
		default:
			continue
		}
		out.Events = append(out.Events, event.Clone())
	}
	return out, nil
}
