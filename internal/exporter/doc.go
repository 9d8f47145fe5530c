// Package exporter writes the cleaned combine dataset to disk.
//
// The only artifact is a single indented JSON document. Writes fully
// replace any prior content at the target path; there is no atomic
// rename, which is acceptable for a one-shot batch tool.
package exporter
