package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/adrg/frontmatter"
	"github.com/stretchr/testify/require"

	"github.com/lasaglide/glide-docs/export"
	"github.com/lasaglide/glide-docs/service/vo"
)

func textField(value string) map[string]json.RawMessage {
	data, _ := json.Marshal(value)
	return map[string]json.RawMessage{export.Locale: data}
}

func rawField(raw string) map[string]json.RawMessage {
	return map[string]json.RawMessage{export.Locale: json.RawMessage(raw)}
}

func pageEntry(id string, fields export.Fields) export.Entry {
	return export.Entry{
		Sys: export.Sys{
			ID:          id,
			ContentType: &export.Link{Sys: export.LinkSys{ID: "page"}},
		},
		Fields: fields,
	}
}

func blockEntry(id string, fields export.Fields) export.Entry {
	return export.Entry{
		Sys: export.Sys{
			ID:          id,
			ContentType: &export.Link{Sys: export.LinkSys{ID: "contentBlock"}},
		},
		Fields: fields,
	}
}

func convertOne(t *testing.T, snapshot *export.Snapshot) vo.Result {
	t.Helper()
	results := New(export.NewIndex(snapshot)).ConvertAll()
	require.Len(t, results, 1)
	return results[0]
}

func TestConvertEndToEnd(t *testing.T) {
	richText := `{
		"nodeType": "document",
		"content": [
			{
				"nodeType": "paragraph",
				"content": [
					{"nodeType": "text", "value": "Hi "},
					{"nodeType": "text", "value": "there", "marks": [{"type": "bold"}]}
				]
			}
		]
	}`
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("p1", export.Fields{
				"title":       textField("Intro"),
				"description": textField("Welcome"),
				"content":     rawField(`[{"sys":{"type":"Link","linkType":"Entry","id":"b1"}}]`),
			}),
			blockEntry("b1", export.Fields{
				"title":   textField("Section A"),
				"content": rawField(richText),
			}),
		},
	}

	result := convertOne(t, snapshot)
	require.NoError(t, result.Err)
	require.Equal(t, "intro.mdx", result.Document.Filename)

	var meta struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
	}
	body, err := frontmatter.Parse(strings.NewReader(string(result.Document.Markdown)), &meta)
	require.NoError(t, err)
	require.Equal(t, "Intro", meta.Title)
	require.Equal(t, "Welcome", meta.Description)

	require.Contains(t, string(body), "# Intro")
	require.Contains(t, string(body), "Welcome")
	require.Contains(t, string(body), "### Section A")
	require.Contains(t, string(body), "Hi **there**")
}

func TestConvertMissingBlockReference(t *testing.T) {
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("p1", export.Fields{
				"title":       textField("Intro"),
				"description": textField("Welcome"),
				"content":     rawField(`[{"sys":{"type":"Link","linkType":"Entry","id":"ghost"}}]`),
			}),
		},
	}

	result := convertOne(t, snapshot)
	require.NoError(t, result.Err)

	markdown := string(result.Document.Markdown)
	require.Contains(t, markdown, `title: "Intro"`)
	require.Contains(t, markdown, `description: "Welcome"`)
	require.Contains(t, markdown, "# Intro")
	require.NotContains(t, markdown, "###")
}

func TestConvertUntitledDefault(t *testing.T) {
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("p1", export.Fields{}),
		},
	}

	result := convertOne(t, snapshot)
	require.NoError(t, result.Err)
	require.Equal(t, "Untitled", result.Document.Title)
	require.Equal(t, "untitled.mdx", result.Document.Filename)
	require.Contains(t, string(result.Document.Markdown), `title: "Untitled"`)
}

func TestConvertLegacyHTMLBlock(t *testing.T) {
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("p1", export.Fields{
				"title":   textField("Legacy"),
				"content": rawField(`[{"sys":{"type":"Link","linkType":"Entry","id":"b1"}}]`),
			}),
			blockEntry("b1", export.Fields{
				"content": rawField(`"<p>Hello <strong>world</strong></p>"`),
			}),
		},
	}

	result := convertOne(t, snapshot)
	require.NoError(t, result.Err)
	require.Contains(t, string(result.Document.Markdown), "**world**")
}

func TestConvertPerPageIsolation(t *testing.T) {
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("bad", export.Fields{
				"title":   textField("Broken"),
				"content": rawField(`[{"sys":{"type":"Link","linkType":"Entry","id":"b1"}}]`),
			}),
			blockEntry("b1", export.Fields{
				// Neither a rich-text document nor an HTML string.
				"content": rawField(`{"nodeType": 5}`),
			}),
			pageEntry("good", export.Fields{
				"title": textField("Still Fine"),
			}),
		},
	}

	results := New(export.NewIndex(snapshot)).ConvertAll()
	require.Len(t, results, 2)
	require.Error(t, results[0].Err)
	require.Nil(t, results[0].Document)
	require.NoError(t, results[1].Err)
	require.Equal(t, "still-fine.mdx", results[1].Document.Filename)
}

func TestConvertBlockWithoutContent(t *testing.T) {
	snapshot := &export.Snapshot{
		Entries: []export.Entry{
			pageEntry("p1", export.Fields{
				"title":   textField("Sparse"),
				"content": rawField(`[{"sys":{"type":"Link","linkType":"Entry","id":"b1"}}]`),
			}),
			blockEntry("b1", export.Fields{
				"title": textField("Heading Only"),
			}),
		},
	}

	result := convertOne(t, snapshot)
	require.NoError(t, result.Err)
	require.Contains(t, string(result.Document.Markdown), "### Heading Only")
}
