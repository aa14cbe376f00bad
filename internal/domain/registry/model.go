package registry

// Service is a registered service name. Registration is insert-if-absent and
// there is no delete path, matching the append-only service list.
type Service struct {
	ServiceName string `json:"service_name" gorm:"primaryKey;column:service_name;size:128"`
}

func (Service) TableName() string {
	return "services"
}
