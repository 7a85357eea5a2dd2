// Package domain contains the core domain model for shark-report.
//
// The domain is transport- and persistence-agnostic: it does not depend on report
// text parsing, JSON/TSV encoding, or the filesystem. Usecases and adapters map
// into/from these types.
package domain
