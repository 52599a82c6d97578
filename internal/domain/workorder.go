package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type WorkOrderStatus string

const (
	WorkOrderPending    WorkOrderStatus = "pending"
	WorkOrderInProgress WorkOrderStatus = "in_progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
	WorkOrderUnset      WorkOrderStatus = "unset"
)

// WorkOrder is one engine intake tracked from reception to delivery.
// Code is assigned by the store at insert time; EstimatedDelivery is a
// calendar date (YYYY-MM-DD) derived from the intake day plus DelayDays.
type WorkOrder struct {
	ID                 string          `json:"id" gorm:"primaryKey"`
	Code               string          `json:"code" gorm:"uniqueIndex"`
	ClientName         string          `json:"client_name" validate:"required"`
	Phone              string          `json:"phone,omitempty"`
	TaxID              string          `json:"tax_id,omitempty"`
	Address            string          `json:"address,omitempty"`
	WorkDescription    string          `json:"work_description,omitempty" gorm:"type:text"`
	ReceivedComponents string          `json:"received_components,omitempty" gorm:"type:text"`
	Notes              string          `json:"notes,omitempty" gorm:"type:text"`
	DelayDays          int             `json:"delay_days" validate:"gte=0"`
	EstimatedDelivery  string          `json:"estimated_delivery"`
	Status             WorkOrderStatus `json:"status"`
	IntakeDate         time.Time       `json:"intake_date"`
	DeliveredAt        *time.Time      `json:"delivered_at,omitempty"`
	Notified           bool            `json:"notified"`
	EmployeeID         string          `json:"employee_id" validate:"required"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func ValidWorkOrderStatus(s WorkOrderStatus) bool {
	switch s {
	case WorkOrderPending, WorkOrderInProgress, WorkOrderCompleted, WorkOrderCancelled, WorkOrderUnset:
		return true
	}
	return false
}

// NextWorkOrderCode derives the code that follows last for a point of
// sale. An empty or unparseable last yields the first code of the
// series. The numeric suffix is zero-padded to at least four digits.
func NextWorkOrderCode(pointOfSale, last string) string {
	next := 1
	if i := strings.LastIndex(last, "-"); i >= 0 {
		if n, err := strconv.Atoi(last[i+1:]); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s-%04d", pointOfSale, next)
}
