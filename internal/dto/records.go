package dto

import "time"

// RecordsFilter contains query parameters for record listing endpoints.
// PerPage <= 0 disables pagination.
type RecordsFilter struct {
	Q       string
	Since   *time.Time
	Page    int
	PerPage int
}
