package workorder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"fenix/internal/domain"
	"fenix/internal/pkg/dates"
	"fenix/internal/storage"

	"gorm.io/gorm"
)

// upcomingWindowDays is how far ahead a delivery counts as "due soon".
const upcomingWindowDays = 2

type Service struct {
	repo        WorkOrderRepository
	store       storage.Store
	alloc       *Allocator
	bucket      string
	pointOfSale string
	now         func() time.Time
}

func NewService(repo WorkOrderRepository, store storage.Store, bucket, pointOfSale string) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		alloc:       NewAllocator(repo, pointOfSale),
		bucket:      bucket,
		pointOfSale: pointOfSale,
		now:         time.Now,
	}
}

// PredictNextCode returns the allocator's guess at the next code, for
// display only.
func (s *Service) PredictNextCode(ctx context.Context) string {
	return s.alloc.NextCode(ctx)
}

// Submit runs the intake workflow: validate, insert the record (the
// store assigns the code), then upload the screened attachments under
// the assigned code. The record write is the only fatal step; upload
// failures leave the committed record in place and are reported as a
// partial success.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, employeeID string, files []Attachment) (*SubmitResult, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, ErrNoEmployee
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if req.DelayDays < 0 {
		return nil, fmt.Errorf("%w: delay days must not be negative", ErrValidation)
	}

	accepted, rejected := ScreenAttachments(files)

	now := s.now()
	w := &domain.WorkOrder{
		ClientName:         strings.TrimSpace(req.ClientName),
		Phone:              req.Phone,
		TaxID:              req.TaxID,
		Address:            req.Address,
		WorkDescription:    req.WorkDescription,
		ReceivedComponents: req.ReceivedComponents,
		Notes:              req.Notes,
		DelayDays:          req.DelayDays,
		EstimatedDelivery:  dates.Format(dates.AddDays(now, req.DelayDays)),
		Status:             domain.WorkOrderPending,
		IntakeDate:         now,
		EmployeeID:         employeeID,
	}

	if err := s.repo.Create(ctx, w, s.pointOfSale); err != nil {
		return nil, fmt.Errorf("create work order: %w", err)
	}

	result := &SubmitResult{
		Code:              w.Code,
		EstimatedDelivery: w.EstimatedDelivery,
		Rejected:          rejected,
	}
	if len(accepted) > 0 {
		// From here on the record is committed and the assigned code,
		// not the prediction, names the storage prefix.
		result.Uploaded, result.FailedUploads, result.StorageUnavailable = s.uploadAttachments(ctx, w.Code, accepted)
	}
	return result, nil
}

// uploadAttachments runs the uploads concurrently; they have no
// required relative order and fail independently. A missing bucket is
// reported apart from per-file failures since it is an operational
// problem.
func (s *Service) uploadAttachments(ctx context.Context, code string, files []Attachment) (uploaded int, failed []string, storageUnavailable bool) {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, f := range files {
		wg.Add(1)
		go func(f Attachment) {
			defer wg.Done()
			path := fmt.Sprintf("%s/%d_%s", code, s.now().UnixMilli(), f.Name)
			err := s.store.Upload(ctx, s.bucket, path, f.Data, storage.UploadOptions{
				ContentType: f.ContentType,
				Overwrite:   false,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, f.Name)
				if errors.Is(err, storage.ErrBucketNotFound) {
					storageUnavailable = true
				}
				return
			}
			uploaded++
		}(f)
	}
	wg.Wait()
	sort.Strings(failed)
	return uploaded, failed, storageUnavailable
}

// FindByCode retrieves a work order and its media. A missing record is
// ErrNotFound; attachment listing problems degrade to an empty list
// and never fail the lookup.
func (s *Service) FindByCode(ctx context.Context, code string) (*WorkOrderView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}

	w, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := &WorkOrderView{WorkOrder: *w, Attachments: []MediaFile{}}
	objects, err := s.store.List(ctx, s.bucket, code)
	if err != nil {
		return view, nil
	}
	for _, obj := range objects {
		if obj.Name == ".emptyFolderPlaceholder" {
			continue
		}
		view.Attachments = append(view.Attachments, MediaFile{
			Name: obj.Name,
			URL:  s.store.PublicURL(s.bucket, code+"/"+obj.Name),
			Kind: MediaKind(obj.ContentType),
		})
	}
	return view, nil
}

func (s *Service) List(ctx context.Context) ([]domain.WorkOrder, error) {
	return s.repo.List(ctx)
}

// GroupedByEmployee buckets all work orders by the employee that took
// them in, unassigned ones last.
func (s *Service) GroupedByEmployee(ctx context.Context) ([]EmployeeGroup, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string][]domain.WorkOrder)
	for _, w := range orders {
		name := "unassigned"
		if w.Employee != nil && w.Employee.Name != "" {
			name = w.Employee.Name
		}
		byName[name] = append(byName[name], w)
	}

	groups := make([]EmployeeGroup, 0, len(byName))
	for name, list := range byName {
		groups = append(groups, EmployeeGroup{Employee: name, Orders: list})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Employee == "unassigned" {
			return false
		}
		if groups[j].Employee == "unassigned" {
			return true
		}
		return groups[i].Employee < groups[j].Employee
	})
	return groups, nil
}

// UpdateStatus moves a work order into a new administrative status.
// Completing an order stamps the real delivery time.
func (s *Service) UpdateStatus(ctx context.Context, code string, status domain.WorkOrderStatus) (*domain.WorkOrder, error) {
	if !domain.ValidWorkOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var deliveredAt *time.Time
	if status == domain.WorkOrderCompleted {
		t := s.now()
		deliveredAt = &t
	}

	if err := s.repo.UpdateStatus(ctx, code, status, deliveredAt); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.GetByCode(ctx, code)
}

// UpcomingDeliveries returns open orders whose estimated delivery is
// within the notification window, overdue ones included. Orders with
// no parseable estimate are skipped.
func (s *Service) UpcomingDeliveries(ctx context.Context) ([]domain.WorkOrder, error) {
	orders, err := s.repo.ListOpenByEstimated(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	due := make([]domain.WorkOrder, 0)
	for _, w := range orders {
		est, err := dates.ParseLocal(w.EstimatedDelivery)
		if err != nil {
			continue
		}
		if dates.DaysBetween(now, est) <= upcomingWindowDays {
			due = append(due, w)
		}
	}
	return due, nil
}

// MarkNotified records that the delivery reminder for a work order was
// acknowledged.
func (s *Service) MarkNotified(ctx context.Context, code string) error {
	if err := s.repo.MarkNotified(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
