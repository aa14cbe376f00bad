package usage

// Record is a directly reported GPU allocation, outside the reservation
// workflow. Dates are stored as ISO calendar dates in text columns; an empty
// EndDate means a single-day allocation on StartDate. Records are immutable
// once created.
type Record struct {
	ID          uint   `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	StartDate   string `json:"start_date" gorm:"not null;column:start_date;size:10"`
	EndDate     string `json:"end_date" gorm:"column:end_date;size:10"`
	GPUType     string `json:"gpu_type" gorm:"not null;column:gpu_type;size:64"`
	ServiceName string `json:"service_name" gorm:"not null;column:service_name;size:128"`
	Count       int    `json:"count" gorm:"not null;default:1;column:count"`
	Source      string `json:"source" gorm:"not null;column:source;size:64"`
}

func (Record) TableName() string {
	return "gpu_usage"
}
