package pool

type UpsertPoolDTO struct {
	GPUType string `json:"gpu_type" form:"gpu_type" binding:"required"`
	Total   int    `json:"total" form:"total" binding:"min=0"`
}
