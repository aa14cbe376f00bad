package pool

// GPUPool is one row per GPU type with its total unit count. Rows are only
// created or updated through the admin upsert; there is no delete path.
type GPUPool struct {
	GPUType string `json:"gpu_type" gorm:"primaryKey;column:gpu_type;size:64"`
	Total   int    `json:"total" gorm:"not null;default:0;column:total"`
}

func (GPUPool) TableName() string {
	return "gpu_pool"
}
