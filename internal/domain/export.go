package domain

import "time"

// ExportArtifact is an encoded report ready to be persisted.
// XLSX is optional and may be nil.
type ExportArtifact struct {
	SourcePath string
	CreatedAt  time.Time

	Cycles   int
	Features int

	JSON []byte
	TSV  []byte
	XLSX []byte
}

// ExportRef points at the files a store wrote for one artifact.
type ExportRef struct {
	ID       string
	JSONPath string
	TSVPath  string
	XLSXPath string
}
