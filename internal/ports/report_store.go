package ports

import "github.com/tayden1990/alnscope/internal/domain"

// ReportStore persists analysis reports for reproducibility.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
	// ListReports can be added later (MVP: optional).
}
