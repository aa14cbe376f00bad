package usage

type CreateRecordDTO struct {
	StartDate   string `json:"start_date" form:"start_date" binding:"required"`
	EndDate     string `json:"end_date,omitempty" form:"end_date,omitempty"`
	GPUType     string `json:"gpu_type" form:"gpu_type" binding:"required"`
	ServiceName string `json:"service_name" form:"service_name" binding:"required"`
	Count       int    `json:"count" form:"count" binding:"min=1"`
	Source      string `json:"source" form:"source" binding:"required"`
}
