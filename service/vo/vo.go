package vo

type Markdown string

// Document is one converted page, ready to be written to disk.
type Document struct {
	Filename string   `json:"filename"` // Slug-derived name, .mdx extension
	Title    string   `json:"title"`    // Page title, "Untitled" when absent
	Markdown Markdown `json:"markdown"` // Full document incl. front matter
}

// Result is the outcome of converting a single page. Either Document or Err
// is set, never both.
type Result struct {
	Page     int       `json:"page"` // Index of the page within the snapshot
	Document *Document `json:"document,omitempty"`
	Err      error     `json:"-"`
}

func (r Result) OK() bool {
	return r.Err == nil
}
