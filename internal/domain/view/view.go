package view

// PoolStatusRow is one line of the current-snapshot capacity table.
// Available is total - used and may go negative when the pool is
// over-allocated; it is reported as-is, never clamped.
type PoolStatusRow struct {
	GPUType   string `json:"gpu_type"`
	Total     int    `json:"total"`
	Used      int    `json:"used"`
	Available int    `json:"available"`
}

// UsageDetailRow is one line of the combined detail table: raw usage records
// plus approved reservations tagged with source "reservation".
type UsageDetailRow struct {
	ID          uint   `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	GPUType     string `json:"gpu_type"`
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
	Source      string `json:"source"`
}

// TypeUsage is the per-GPU-type cell of a timeline row.
type TypeUsage struct {
	Used      int `json:"used"`
	Available int `json:"available"`
}

// TimelineRow is one date of the daily pivot. Types holds an entry for every
// pool type, defaulting to zero used on dates the type has no contribution.
type TimelineRow struct {
	Date  string               `json:"date"`
	Types map[string]TypeUsage `json:"gpu_types"`
}
