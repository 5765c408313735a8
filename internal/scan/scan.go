package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"substation/internal/ass"
)

const subtitleExt = ".ass"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Documents reads every subtitle file in dir and returns the parsed
// documents keyed by episode identifier, the file name without its
// extension. Non-subtitle files are ignored; subdirectories are not
// descended into.
func Documents(dir string) (map[string]*ass.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan subtitles: %w", err)
	}

	documents := make(map[string]*ass.Document)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), subtitleExt) {
			continue
		}
		episode := strings.TrimSuffix(entry.Name(), subtitleExt)
		doc, err := ReadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("scan subtitles: episode %s: %w", episode, err)
		}
		documents[episode] = doc
	}
	return documents, nil
}

// Episodes returns the sorted episode identifiers present in documents.
func Episodes(documents map[string]*ass.Document) []string {
	ids := make([]string, 0, len(documents))
	for id := range documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ReadDocument parses a single subtitle file, tolerating a leading byte
// order mark of any flavor.
func ReadDocument(path string) (*ass.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	doc, err := ass.Parse(transform.NewReader(file, decoder))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// WriteDocument renders doc to path with a UTF-8 byte order mark, creating
// parent directories as needed.
func WriteDocument(path string, doc *ass.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload := append(append([]byte{}, utf8BOM...), doc.Render()...)
	return os.WriteFile(path, payload, 0o644)
}
