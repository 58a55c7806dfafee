package export

// Index provides id lookups over a loaded snapshot. It is built once and
// read-only for the duration of a run.
type Index struct {
	snapshot *Snapshot
	entries  map[string]*Entry
	assets   map[string]*Asset
}

func NewIndex(snapshot *Snapshot) *Index {
	index := &Index{
		snapshot: snapshot,
		entries:  make(map[string]*Entry, len(snapshot.Entries)),
		assets:   make(map[string]*Asset, len(snapshot.Assets)),
	}
	for i := range snapshot.Entries {
		entry := &snapshot.Entries[i]
		index.entries[entry.Sys.ID] = entry
	}
	for i := range snapshot.Assets {
		asset := &snapshot.Assets[i]
		index.assets[asset.Sys.ID] = asset
	}
	return index
}

// FindEntry looks up an entry by id. Absence is a normal result, callers
// skip the reference.
func (ix *Index) FindEntry(id string) (*Entry, bool) {
	entry, ok := ix.entries[id]
	return entry, ok
}

// FindAsset looks up an asset by id.
func (ix *Index) FindAsset(id string) (*Asset, bool) {
	asset, ok := ix.assets[id]
	return asset, ok
}

// Pages returns the page entries in snapshot order.
func (ix *Index) Pages() []*Entry {
	var pages []*Entry
	for i := range ix.snapshot.Entries {
		entry := &ix.snapshot.Entries[i]
		if entry.ContentType() == "page" {
			pages = append(pages, entry)
		}
	}
	return pages
}
