package repository

import (
	"context"
	"errors"
	"time"

	"fenix/internal/database"
	"fenix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) DB() *gorm.DB { return r.db }

type workOrderModel struct {
	ID                 string     `gorm:"column:id;primaryKey"`
	Code               string     `gorm:"column:code;uniqueIndex"`
	ClientName         string     `gorm:"column:client_name"`
	Phone              string     `gorm:"column:phone"`
	TaxID              string     `gorm:"column:tax_id"`
	Address            string     `gorm:"column:address"`
	WorkDescription    string     `gorm:"column:work_description;type:text"`
	ReceivedComponents string     `gorm:"column:received_components;type:text"`
	Notes              string     `gorm:"column:notes;type:text"`
	DelayDays          int        `gorm:"column:delay_days"`
	EstimatedDelivery  string     `gorm:"column:estimated_delivery"`
	Status             string     `gorm:"column:status"`
	IntakeDate         time.Time  `gorm:"column:intake_date"`
	DeliveredAt        *time.Time `gorm:"column:delivered_at"`
	Notified           bool       `gorm:"column:notified"`
	EmployeeID         string     `gorm:"column:employee_id"`

	Employee *employeeModel `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (workOrderModel) TableName() string { return "work_orders" }

func toDomainWorkOrder(m workOrderModel) *domain.WorkOrder {
	w := &domain.WorkOrder{
		ID:                 m.ID,
		Code:               m.Code,
		ClientName:         m.ClientName,
		Phone:              m.Phone,
		TaxID:              m.TaxID,
		Address:            m.Address,
		WorkDescription:    m.WorkDescription,
		ReceivedComponents: m.ReceivedComponents,
		Notes:              m.Notes,
		DelayDays:          m.DelayDays,
		EstimatedDelivery:  m.EstimatedDelivery,
		Status:             domain.WorkOrderStatus(m.Status),
		IntakeDate:         m.IntakeDate,
		DeliveredAt:        m.DeliveredAt,
		Notified:           m.Notified,
		EmployeeID:         m.EmployeeID,
	}
	if m.Employee != nil {
		w.Employee = toDomainEmployee(*m.Employee)
	}
	return w
}

func toWorkOrderModel(w *domain.WorkOrder) workOrderModel {
	return workOrderModel{
		ID:                 w.ID,
		Code:               w.Code,
		ClientName:         w.ClientName,
		Phone:              w.Phone,
		TaxID:              w.TaxID,
		Address:            w.Address,
		WorkDescription:    w.WorkDescription,
		ReceivedComponents: w.ReceivedComponents,
		Notes:              w.Notes,
		DelayDays:          w.DelayDays,
		EstimatedDelivery:  w.EstimatedDelivery,
		Status:             string(w.Status),
		IntakeDate:         w.IntakeDate,
		DeliveredAt:        w.DeliveredAt,
		Notified:           w.Notified,
		EmployeeID:         w.EmployeeID,
	}
}

const createCodeAttempts = 3

// Create inserts the work order and assigns its code inside the same
// transaction, the trigger-like behavior the rest of the system relies
// on. Whatever code the caller predicted is discarded here; the stored
// value is authoritative. A concurrent intake racing for the same
// sequence number loses on the unique index and is retried with a
// fresh scan.
func (r *WorkOrderRepository) Create(ctx context.Context, w *domain.WorkOrder, pointOfSale string) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	var lastErr error
	for attempt := 0; attempt < createCodeAttempts; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			last, err := lastCodeWithPrefix(tx, pointOfSale+"-")
			if err != nil {
				return err
			}
			w.Code = domain.NextWorkOrderCode(pointOfSale, last)

			m := toWorkOrderModel(w)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			*w = *toDomainWorkOrder(m)
			return nil
		})
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsUniqueViolation(err) {
			return err
		}
	}
	return lastErr
}

// ErrSequenceUnavailable is returned when the database-side code
// sequence cannot be used on the current connection.
var ErrSequenceUnavailable = errors.New("work order code sequence requires postgres")

// NextCodeFromSequence asks the database-side sequence function for
// the next code. Only PostgreSQL deployments define it; elsewhere the
// call fails fast and the caller falls back to scanning.
func (r *WorkOrderRepository) NextCodeFromSequence(ctx context.Context, pointOfSale string) (string, error) {
	if !database.IsPostgres(r.db) {
		return "", ErrSequenceUnavailable
	}
	var code string
	tx := r.db.WithContext(ctx).Raw("SELECT fenix_next_work_order_code(?)", pointOfSale).Scan(&code)
	if tx.Error != nil {
		return "", tx.Error
	}
	return code, nil
}

// LastCodeWithPrefix returns the lexicographically highest code for a
// point-of-sale prefix, or "" when none exist.
func (r *WorkOrderRepository) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	return lastCodeWithPrefix(r.db.WithContext(ctx), prefix)
}

func lastCodeWithPrefix(tx *gorm.DB, prefix string) (string, error) {
	var codes []string
	err := tx.Model(&workOrderModel{}).
		Where("code LIKE ?", prefix+"%").
		Order("code desc").
		Limit(1).
		Pluck("code", &codes).Error
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}

func (r *WorkOrderRepository) GetByCode(ctx context.Context, code string) (*domain.WorkOrder, error) {
	var m workOrderModel
	tx := r.db.WithContext(ctx).Preload("Employee").First(&m, "code = ?", code)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWorkOrder(m), nil
}

func (r *WorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	var models []workOrderModel
	tx := r.db.WithContext(ctx).Preload("Employee").Order("intake_date desc").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.WorkOrder, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainWorkOrder(m))
	}
	return out, nil
}

// ListOpenByEstimated returns not-yet-completed orders sorted by their
// estimated delivery date, soonest first. Orders without an estimate
// sort last.
func (r *WorkOrderRepository) ListOpenByEstimated(ctx context.Context) ([]domain.WorkOrder, error) {
	var models []workOrderModel
	tx := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.WorkOrderCompleted)).
		Order("estimated_delivery asc").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.WorkOrder, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainWorkOrder(m))
	}
	return out, nil
}

func (r *WorkOrderRepository) UpdateStatus(ctx context.Context, code string, status domain.WorkOrderStatus, deliveredAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if deliveredAt != nil {
		updates["delivered_at"] = deliveredAt
	}
	tx := r.db.WithContext(ctx).Model(&workOrderModel{}).Where("code = ?", code).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) MarkNotified(ctx context.Context, code string) error {
	tx := r.db.WithContext(ctx).Model(&workOrderModel{}).Where("code = ?", code).Update("notified", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&workOrderModel{}).Count(&cnt)
	return cnt, tx.Error
}

type EmployeeWorkOrderCount struct {
	EmployeeID   string `gorm:"column:employee_id"`
	EmployeeName string `gorm:"column:employee_name"`
	Count        int64  `gorm:"column:cnt"`
}

func (r *WorkOrderRepository) CountByEmployee(ctx context.Context) ([]EmployeeWorkOrderCount, error) {
	var rows []EmployeeWorkOrderCount
	q := `
SELECT w.employee_id AS employee_id, e.name AS employee_name, COUNT(1) AS cnt
FROM work_orders w
LEFT JOIN employees e ON e.id = w.employee_id
GROUP BY w.employee_id, e.name
ORDER BY cnt DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	return rows, tx.Error
}

type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:cnt"`
}

func (r *WorkOrderRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	q := `
SELECT status, COUNT(1) AS cnt
FROM work_orders
GROUP BY status
ORDER BY cnt DESC
`
	tx := r.db.WithContext(ctx).Raw(q).Scan(&rows)
	return rows, tx.Error
}
