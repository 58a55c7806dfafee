package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/lasaglide/glide-docs/export"
	"github.com/lasaglide/glide-docs/service"
)

func main() {
	// Define command line flags
	inputDir := flag.String("dir", ".", "Directory containing the contentful-export*.json snapshot")
	outputDir := flag.String("out", "docs", "Directory to write the generated .mdx files to")
	debug := flag.Bool("debug", false, "Dump the raw entry of every page that fails to convert")
	flag.Parse()

	snapshot, err := export.Load(*inputDir)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatal(err)
	}

	index := export.NewIndex(snapshot)
	converter := service.New(index)

	pages := index.Pages()
	log.Printf("Found %d pages", len(pages))

	converted := 0
	for _, result := range converter.ConvertAll() {
		if !result.OK() {
			log.Printf("Error converting page %d: %v", result.Page, result.Err)
			if *debug {
				log.Print(spew.Sdump(pages[result.Page]))
			}
			continue
		}
		path := filepath.Join(*outputDir, result.Document.Filename)
		if err := os.WriteFile(path, []byte(result.Document.Markdown), 0o644); err != nil {
			log.Printf("Error writing page %d (%s): %v", result.Page, result.Document.Filename, err)
			continue
		}
		log.Printf("Converted %q -> %s", result.Document.Title, result.Document.Filename)
		converted++
	}

	// Individual page failures are informational only, the run still exits 0.
	log.Printf("Done: %d/%d pages converted", converted, len(pages))
}
