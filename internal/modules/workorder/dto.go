package workorder

import "fenix/internal/domain"

type SubmitRequest struct {
	ClientName         string `form:"client_name" json:"client_name" validate:"required"`
	Phone              string `form:"phone" json:"phone"`
	TaxID              string `form:"tax_id" json:"tax_id"`
	Address            string `form:"address" json:"address"`
	WorkDescription    string `form:"work_description" json:"work_description"`
	ReceivedComponents string `form:"received_components" json:"received_components"`
	Notes              string `form:"notes" json:"notes"`
	DelayDays          int    `form:"delay_days" json:"delay_days" validate:"gte=0"`
}

// SubmitResult is the tagged outcome of a submission: full success,
// or partial success when the record committed but attachments
// degraded. Total failure is an error, not a result.
type SubmitResult struct {
	Code               string               `json:"code"`
	EstimatedDelivery  string               `json:"estimated_delivery"`
	Uploaded           int                  `json:"uploaded"`
	FailedUploads      []string             `json:"failed_uploads,omitempty"`
	Rejected           []RejectedAttachment `json:"rejected,omitempty"`
	StorageUnavailable bool                 `json:"storage_unavailable,omitempty"`
}

func (r *SubmitResult) Partial() bool {
	return len(r.FailedUploads) > 0 || r.StorageUnavailable
}

type MediaFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type WorkOrderView struct {
	domain.WorkOrder
	Attachments []MediaFile `json:"attachments"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EmployeeGroup struct {
	Employee string             `json:"employee"`
	Orders   []domain.WorkOrder `json:"orders"`
}
