package extract

import (
	"fmt"
	"strings"

	"substation/internal/ass"
)

// Chapters renders the document's chapter markers as ffmetadata chapter
// blocks, in event order.
//
// A chapter marker is a Comment event whose Name is "chapter"; its timing
// becomes the chapter range (milliseconds, truncated) and its text the
// chapter title. The result feeds ffmpeg's `-f ffmetadata` side input during
// remuxing. Returns "" when the document carries no markers.
func Chapters(doc *ass.Document) (string, error) {
	var lines []string
	for _, event := range doc.Events {
		if event.Type != "Comment" || event.Name() != chapterName {
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
		lines = append(lines,
			"[CHAPTER]",
			"TIMEBASE=1/1000",
			fmt.Sprintf("START=%d", int64(start*1000)),
			fmt.Sprintf("END=%d", int64(end*1000)),
			"title="+event.Text(),
			"",
		)
	}
	return strings.Join(lines, "\n"), nil
}
