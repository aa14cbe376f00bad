package reservation

import "strings"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// ApproverSeparator joins approver identifiers in the persisted column.
const ApproverSeparator = ","

// Reservation is a requested GPU allocation that only counts against
// capacity once it has collected the approver quorum. Approvers are stored
// as a single separator-joined text column for compatibility with the
// persisted record format.
type Reservation struct {
	ID          uint   `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	StartDate   string `json:"start_date" gorm:"not null;column:start_date;size:10"`
	EndDate     string `json:"end_date" gorm:"column:end_date;size:10"`
	GPUType     string `json:"gpu_type" gorm:"not null;column:gpu_type;size:64"`
	ServiceName string `json:"service_name" gorm:"not null;column:service_name;size:128"`
	Count       int    `json:"count" gorm:"not null;default:1;column:count"`
	Status      Status `json:"status" gorm:"not null;default:'pending';type:varchar(20);column:status"`
	Approvers   string `json:"approvers" gorm:"not null;default:'';column:approvers"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// ApproverList splits the stored approvers column. An empty column yields an
// empty slice, never [""].
func (r *Reservation) ApproverList() []string {
	if r.Approvers == "" {
		return []string{}
	}
	return strings.Split(r.Approvers, ApproverSeparator)
}

// HasApprover reports whether the identifier is already on the list.
func (r *Reservation) HasApprover(name string) bool {
	for _, a := range r.ApproverList() {
		if a == name {
			return true
		}
	}
	return false
}

// AddApprover appends an identifier unless it is already present. It returns
// true when the list changed.
func (r *Reservation) AddApprover(name string) bool {
	if r.HasApprover(name) {
		return false
	}
	list := append(r.ApproverList(), name)
	r.Approvers = strings.Join(list, ApproverSeparator)
	return true
}
