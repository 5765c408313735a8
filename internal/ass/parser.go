package ass

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section names the parser interprets. Lines inside any other section fall
// through every dispatch rule and are dropped, which is the permissive
// behavior fansub tooling relies on ([Aegisub Project Garbage] and friends).
const (
	sectionScriptInfo = "Script Info"
	sectionStyles     = "V4+ Styles"
	sectionEvents     = "Events"
)

// Parse reads ASS text from r and builds a Document. Input is expected to be
// UTF-8 with any byte order mark already stripped.
//
// Parsing is line oriented with two pieces of state: the current section and
// the pending Format header (cleared at every section boundary). Blank lines
// and ;/# comment lines are skipped. Any structural violation aborts the
// whole parse with ErrFormat; a malformed file never yields a truncated
// document.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{ScriptInfo: NewScriptInfo()}

	var section string
	var header []string

	lineNum := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			header = nil
			continue
		}

		sep := strings.Index(line, ":")
		if sep < 0 {
			return nil, fmt.Errorf("%w: line %d: missing ':' separator", ErrFormat, lineNum)
		}
		lineType := line[:sep]
		rest := line[sep+1:]

		if lineType == "Format" {
			if header != nil {
				return nil, fmt.Errorf("%w: line %d: duplicate Format header in section %q", ErrFormat, lineNum, section)
			}
			header = splitFields(rest, -1)
			switch section {
			case sectionStyles:
				doc.StyleFormat = header
			case sectionEvents:
				doc.EventFormat = header
			}
			continue
		}

		switch section {
		case sectionScriptInfo:
			doc.ScriptInfo.Set(lineType, strings.TrimSpace(rest))
		case sectionStyles:
			fields, err := zipFields(header, rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc.Styles = append(doc.Styles, NewStyle(fields))
		case sectionEvents:
			fields, err := zipFields(header, rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc.Events = append(doc.Events, NewEvent(lineType, fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ass input: %w", err)
	}
	return doc, nil
}

// ParseString parses ASS text held in memory.
func ParseString(text string) (*Document, error) {
	return Parse(strings.NewReader(text))
}

// splitFields splits a comma-separated remainder into at most limit trimmed
// tokens. A negative limit means no cap. Capping at the header length keeps
// the trailing Text field intact when it contains commas.
func splitFields(rest string, limit int) []string {
	parts := strings.SplitN(strings.TrimSpace(rest), ",", limit)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// zipFields pairs a data line's values with the pending Format header.
func zipFields(header []string, rest string) (map[string]string, error) {
	if header == nil {
		return nil, fmt.Errorf("%w: data line before Format header", ErrFormat)
	}
	values := splitFields(rest, len(header))
	fields := make(map[string]string, len(header))
	for i := 0; i < len(header) && i < len(values); i++ {
		fields[header[i]] = values[i]
	}
	return fields, nil
}
