package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locale is the only locale the export carries field values for.
const Locale = "en-US"

const snapshotPrefix = "contentful-export"

// Snapshot is the full deserialized content export. It is loaded once and
// never mutated.
type Snapshot struct {
	Entries []Entry `json:"entries"`
	Assets  []Asset `json:"assets"`
}

type Sys struct {
	ID          string `json:"id"`
	ContentType *Link  `json:"contentType,omitempty"`
}

type LinkSys struct {
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
	ID       string `json:"id"`
}

// Link is a reference to another record by id.
type Link struct {
	Sys LinkSys `json:"sys"`
}

// Fields maps a field name to its locale-keyed values.
type Fields map[string]map[string]json.RawMessage

// Raw returns the en-US value of a field, or false when the field or locale
// is absent or null.
func (f Fields) Raw(name string) (json.RawMessage, bool) {
	raw, ok := f[name][Locale]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	return raw, true
}

// Text returns a string-valued field, or false when absent or not a string.
func (f Fields) Text(name string) (string, bool) {
	raw, ok := f.Raw(name)
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// Links returns a reference-array field, or nil when absent or malformed.
func (f Fields) Links(name string) []Link {
	raw, ok := f.Raw(name)
	if !ok {
		return nil
	}
	var links []Link
	if err := json.Unmarshal(raw, &links); err != nil {
		return nil
	}
	return links
}

type Entry struct {
	Sys    Sys    `json:"sys"`
	Fields Fields `json:"fields"`
}

// ContentType returns the entry's content type tag, empty when absent.
func (e *Entry) ContentType() string {
	if e.Sys.ContentType == nil {
		return ""
	}
	return e.Sys.ContentType.Sys.ID
}

type Asset struct {
	Sys    Sys    `json:"sys"`
	Fields Fields `json:"fields"`
}

// File is an asset's file descriptor. The URL may be protocol-relative.
type File struct {
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
}

// File returns the asset's file descriptor, or false when the asset has none.
func (a *Asset) File() (File, bool) {
	raw, ok := a.Fields.Raw("file")
	if !ok {
		return File{}, false
	}
	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return File{}, false
	}
	return file, true
}

// Title returns the asset title, empty when absent.
func (a *Asset) Title() string {
	title, _ := a.Fields.Text("title")
	return title
}

// Load locates the contentful-export*.json snapshot in dir and deserializes
// it. A missing snapshot or a parse failure is fatal to the run.
func Load(dir string) (*Snapshot, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		name := dirEntry.Name()
		if strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, ".json") {
			return loadFile(filepath.Join(dir, name))
		}
	}
	return nil, fmt.Errorf("no %s*.json snapshot found in %s", snapshotPrefix, dir)
}

func loadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}
