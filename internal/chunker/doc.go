// Package chunker splits parsed files into the overlapping line windows used
// for embedding and retrieval, prepending one synthetic summary chunk per
// file for coarse-grained matches.
package chunker
