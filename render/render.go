package render

import (
	"fmt"
	"strings"

	"github.com/lasaglide/glide-docs/export"
)

// Node kinds of the rich-text document model. Anything else takes the
// fallback path: recurse into children when present, otherwise render empty.
const (
	NodeDocument      = "document"
	NodeParagraph     = "paragraph"
	NodeHeading2      = "heading-2"
	NodeHeading3      = "heading-3"
	NodeUnorderedList = "unordered-list"
	NodeOrderedList   = "ordered-list"
	NodeListItem      = "list-item"
	NodeHyperlink     = "hyperlink"
	NodeEmbeddedAsset = "embedded-asset-block"
	NodeText          = "text"
	NodeTable         = "table"
)

const (
	MarkBold = "bold"
	MarkCode = "code"
)

// Node is one node of the rich-text document tree.
type Node struct {
	NodeType string   `json:"nodeType"`
	Content  []*Node  `json:"content,omitempty"`
	Value    string   `json:"value,omitempty"`
	Marks    []Mark   `json:"marks,omitempty"`
	Data     NodeData `json:"data,omitempty"`
}

// Mark is a style annotation on a text node. Unrecognized types are ignored.
type Mark struct {
	Type string `json:"type"`
}

type NodeData struct {
	URI    string       `json:"uri,omitempty"`
	Target *export.Link `json:"target,omitempty"`
}

// Renderer converts rich-text trees to Markdown, resolving embedded asset
// references through the export index.
type Renderer struct {
	index *export.Index
}

func New(index *export.Index) *Renderer {
	return &Renderer{index: index}
}

// Render converts a node tree to Markdown. A nil node renders as the empty
// string; Render is a pure function of the tree and the index.
func (r *Renderer) Render(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.NodeType {
	case NodeDocument:
		parts := make([]string, 0, len(n.Content))
		for _, child := range n.Content {
			parts = append(parts, r.Render(child))
		}
		return strings.Join(parts, "\n\n")
	case NodeParagraph, NodeListItem:
		return r.renderChildren(n)
	case NodeHeading2:
		return "## " + r.renderChildren(n)
	case NodeHeading3:
		return "### " + r.renderChildren(n)
	case NodeUnorderedList:
		lines := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			lines = append(lines, "- "+r.Render(item))
		}
		return strings.Join(lines, "\n")
	case NodeOrderedList:
		lines := make([]string, 0, len(n.Content))
		for i, item := range n.Content {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Render(item)))
		}
		return strings.Join(lines, "\n")
	case NodeHyperlink:
		return "[" + r.renderChildren(n) + "](" + n.Data.URI + ")"
	case NodeEmbeddedAsset:
		return r.renderAsset(n)
	case NodeText:
		return renderText(n)
	case NodeTable:
		return "\n" + r.renderTable(n) + "\n"
	default:
		return r.renderChildren(n)
	}
}

func (r *Renderer) renderChildren(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	for _, child := range n.Content {
		b.WriteString(r.Render(child))
	}
	return b.String()
}

// renderText applies marks in listed order; earlier marks wrap outermost,
// so [bold, code] yields **`value`**.
func renderText(n *Node) string {
	prefix, suffix := "", ""
	for _, mark := range n.Marks {
		switch mark.Type {
		case MarkBold:
			prefix, suffix = prefix+"**", "**"+suffix
		case MarkCode:
			prefix, suffix = prefix+"`", "`"+suffix
		}
	}
	return prefix + n.Value + suffix
}

// renderAsset emits an image tag for a resolvable asset with a file. A
// missing asset or a file-less asset renders as empty, exports are often
// pruned.
func (r *Renderer) renderAsset(n *Node) string {
	if n.Data.Target == nil {
		return ""
	}
	asset, ok := r.index.FindAsset(n.Data.Target.Sys.ID)
	if !ok {
		return ""
	}
	file, ok := asset.File()
	if !ok || file.URL == "" {
		return ""
	}
	url := file.URL
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	}
	return fmt.Sprintf("\n\n![%s](%s)\n\n", asset.Title(), url)
}

// renderTable serializes a table node: one pipe-delimited line per row, with
// a --- separator line inserted once, directly after row 0.
func (r *Renderer) renderTable(n *Node) string {
	var b strings.Builder
	for i, row := range n.Content {
		if row == nil {
			continue
		}
		cells := make([]string, 0, len(row.Content))
		for _, cell := range row.Content {
			cells = append(cells, strings.TrimSpace(r.renderChildren(cell)))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		if i == 0 {
			separators := make([]string, len(cells))
			for j := range separators {
				separators[j] = "---"
			}
			b.WriteString("| " + strings.Join(separators, " | ") + " |\n")
		}
	}
	return b.String()
}
