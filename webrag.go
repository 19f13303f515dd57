// Package webrag indexes web pages into a searchable semantic store and
// retrieves passages that ground natural-language answers. It crawls sites
// with bounded breadth-first traversal, extracts main content from HTML
// using a heuristic cascade, splits text into overlapping chunks, and
// stores chunk embeddings for cosine-similarity retrieval.
//
// This package contains domain types, interfaces, and pure algorithms.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goquery/, openai/).
package webrag
