package ports

// ReportReader loads the full text of a probe report from a source (e.g., filesystem).
type ReportReader interface {
	ReadReport(path string) (string, error)
}
