// Package ingestion seeds the manual passage index from document files.
//
// The Pipeline type manages the ingestion workflow for manual documents:
//   - Cleaning and chunking raw text into overlapping passages
//   - Generating embeddings concurrently on a worker pool
//   - Storing passages under content-derived IDs (re-ingestion deduplicates)
//
// Chunks whose embedding fails are logged and skipped; the rest of the
// document still makes it into the index.
package ingestion
