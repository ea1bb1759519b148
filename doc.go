// Package text provides an immutable document data structure for storing and
// editing large texts, designed to back an interactive code editor.
//
// A document is a balanced tree whose leaves hold runs of line strings and
// whose branches store aggregated length and line-count metadata. Every
// operation returns a new Text value; existing values are never modified, and
// edited documents share unchanged subtrees with the versions they were
// derived from. This makes snapshots free and concurrent reads of any number
// of document versions safe without synchronization.
//
// Key properties:
//   - O(log n) random access by offset or by line number
//   - Edits cost O(k + log n) for an edit of size k
//   - Chunk-level iteration (forward and reverse) without materializing
//     the document as one string
//   - Content equality that ignores internal tree shape
//
// Basic usage:
//
//	doc, _ := text.Of([]string{"one", "two"})
//	doc = doc.Append(text.FromString("!\nok"))
//	line, _ := doc.Line(2)     // "two!"
//	s := doc.String()          // "one\ntwo!\nok"
//
// Offsets count bytes, the line separator is a single '\n', and line numbers
// are 1-based.
package text
