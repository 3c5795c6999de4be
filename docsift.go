// Package docsift ingests documentation sites into a search index.
// It crawls a site breadth-first with politeness controls, converts
// pages into normalized text, extracts source-code blocks, and hands
// the results to an ingestion sink.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, sqlite/).
package docsift
