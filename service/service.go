package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lasaglide/glide-docs/export"
	"github.com/lasaglide/glide-docs/render"
	"github.com/lasaglide/glide-docs/service/vo"
)

// Converter assembles Markdown documents from the page entries of a
// snapshot. The index is read-only, so a Converter holds no mutable state
// across pages.
type Converter struct {
	index    *export.Index
	renderer *render.Renderer
}

func New(index *export.Index) *Converter {
	return &Converter{
		index:    index,
		renderer: render.New(index),
	}
}

// ConvertAll assembles every page entry in snapshot order. One Result per
// page; a failed page carries its error and never aborts the batch.
func (c *Converter) ConvertAll() []vo.Result {
	pages := c.index.Pages()
	results := make([]vo.Result, 0, len(pages))
	for i, page := range pages {
		doc, err := c.convertPage(page)
		results = append(results, vo.Result{Page: i, Document: doc, Err: err})
	}
	return results
}

// convertPage isolates failures at the page boundary. A malformed structure
// must only take down its own page.
func (c *Converter) convertPage(page *export.Entry) (doc *vo.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("malformed page structure: %v", r)
		}
	}()
	return c.assemblePage(page)
}

func (c *Converter) assemblePage(page *export.Entry) (*vo.Document, error) {
	if page == nil || page.Fields == nil {
		return nil, errors.New("page entry has no fields")
	}

	// An empty title would also produce an empty slug, so it is treated the
	// same as an absent one.
	title, ok := page.Fields.Text("title")
	if !ok || title == "" {
		title = "Untitled"
	}
	description, _ := page.Fields.Text("description")

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	if description != "" {
		fmt.Fprintf(&b, "description: %q\n", description)
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", title)
	if description != "" {
		b.WriteString(description + "\n\n")
	}

	for _, link := range page.Fields.Links("content") {
		block, ok := c.index.FindEntry(link.Sys.ID)
		if !ok || block.Fields == nil {
			continue
		}
		if blockTitle, ok := block.Fields.Text("title"); ok && blockTitle != "" {
			fmt.Fprintf(&b, "### %s\n\n", blockTitle)
		}
		body, err := c.renderBlock(block)
		if err != nil {
			return nil, err
		}
		if body != "" {
			b.WriteString(body + "\n\n")
		}
	}

	return &vo.Document{
		Filename: Slugify(title) + ".mdx",
		Title:    title,
		Markdown: vo.Markdown(b.String()),
	}, nil
}

// renderBlock renders a content block's body. The content field is either a
// rich-text document or, for blocks migrated from older spaces, a plain HTML
// string.
func (c *Converter) renderBlock(block *export.Entry) (string, error) {
	raw, ok := block.Fields.Raw("content")
	if !ok {
		return "", nil
	}

	var htmlBody string
	if err := json.Unmarshal(raw, &htmlBody); err == nil {
		return render.ConvertHTML(htmlBody)
	}

	var node render.Node
	if err := json.Unmarshal(raw, &node); err != nil {
		return "", fmt.Errorf("failed to decode rich text: %w", err)
	}
	return c.renderer.Render(&node), nil
}
