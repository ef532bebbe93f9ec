package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"alfredoptarigan/interview-warmup/internal/services"
)

// Prints what the service would send to the model for each file given on the
// command line. Useful for checking how a resume survives extraction.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: go run ./scripts/extract_text.go <file> [file...]")
	}

	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDocxParserService(),
	)

	successCount := 0
	failCount := 0

	for _, path := range os.Args[1:] {
		log.Printf("\n📄 Processing: %s", path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ⚠️  Failed to read file: %v", err)
			failCount++
			continue
		}

		text, err := extractor.Extract(content, filepath.Base(path))
		if err != nil {
			log.Printf("   ❌ Extraction failed: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d characters", len(text))
		fmt.Println(services.Preview(text, 500))
		successCount++
	}

	log.Printf("\n📊 Done: %d succeeded, %d failed", successCount, failCount)
}
