package pipeline

import (
	"strings"

	"substation/internal/ass"
	"substation/internal/catalog"
	"substation/internal/extract"
)

// ReleaseMetadata builds the ffmetadata side input for an episode's remux:
// the episode title in the chapter language followed by its chapter blocks.
// Extras carry no title line.
func ReleaseMetadata(doc *ass.Document, episode, chapterLanguage string) (string, error) {
	var b strings.Builder
	if !catalog.IsExtra(episode) {
		title, err := extract.Title(doc, chapterLanguage)
		if err != nil {
			return "", err
		}
		b.WriteString("title=" + title + "\n")
	}
	chapters, err := extract.Chapters(doc)
	if err != nil {
		return "", err
	}
	b.WriteString(chapters)
	return b.String(), nil
}
