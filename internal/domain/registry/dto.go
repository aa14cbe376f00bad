package registry

type AddServiceDTO struct {
	ServiceName string `json:"service_name" form:"service_name" binding:"required"`
}
