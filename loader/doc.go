// Package loader reads graph descriptions for core.Build.
//
// Two formats are supported.
//
// Text (one or more graphs back to back):
//
//	3                 <- vertex count N
//	Aurora and 85th   <- N lines, one vertex name each (may contain spaces)
//	Green Lake
//	Woodland Park Zoo
//	1 2 50            <- "source destination weight", 1-based
//	2 3 20
//	0 0 0             <- a line whose source is 0 ends the edge list
//
// End of input also ends the edge list. A TextDecoder returns one graph per
// Next call and io.EOF once the stream is exhausted.
//
// YAML (one graph per document, several documents allowed):
//
//	vertices: [Aurora and 85th, Green Lake, Woodland Park Zoo]
//	edges:
//	  - {from: 1, to: 2, weight: 50}
//	  - {from: 2, to: 3, weight: 20}
//
// Open picks the format from the file extension (.yaml/.yml, else text).
// Range and weight checks are not done here; core.Build rejects bad triples.
package loader
