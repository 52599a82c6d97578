package workorder

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"fenix/internal/domain"
	"fenix/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) Create(ctx context.Context, w *domain.WorkOrder, pointOfSale string) error {
	args := m.Called(ctx, w, pointOfSale)
	if args.Error(0) == nil && w != nil {
		w.ID = "generated-id"
		w.Code = pointOfSale + "-0007" // simulate server-side assignment
	}
	return args.Error(0)
}

func (m *MockWorkOrderRepository) NextCodeFromSequence(ctx context.Context, pointOfSale string) (string, error) {
	args := m.Called(ctx, pointOfSale)
	return args.String(0), args.Error(1)
}

func (m *MockWorkOrderRepository) LastCodeWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockWorkOrderRepository) GetByCode(ctx context.Context, code string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) List(ctx context.Context) ([]domain.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) ListOpenByEstimated(ctx context.Context) ([]domain.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) UpdateStatus(ctx context.Context, code string, status domain.WorkOrderStatus, deliveredAt *time.Time) error {
	args := m.Called(ctx, code, status, deliveredAt)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) MarkNotified(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, bucket, path string, r io.Reader, opts storage.UploadOptions) error {
	args := m.Called(ctx, bucket, path, r, opts)
	return args.Error(0)
}

func (m *MockStore) List(ctx context.Context, bucket, prefix string) ([]storage.Object, error) {
	args := m.Called(ctx, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Object), args.Error(1)
}

func (m *MockStore) PublicURL(bucket, path string) string {
	args := m.Called(bucket, path)
	return args.String(0)
}

func newTestService(repo *MockWorkOrderRepository, store *MockStore) *Service {
	svc := NewService(repo, store, "fenix", "0")
	svc.now = func() time.Time { return time.Date(2024, 1, 10, 15, 30, 0, 0, time.Local) }
	return svc
}

func TestService_Submit_MissingEmployeeDoesNoWork(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	svc := newTestService(repo, store)

	_, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto"}, "  ", nil)

	assert.ErrorIs(t, err, ErrNoEmployee)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_ClientNameRequired(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	svc := newTestService(repo, new(MockStore))

	_, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "   "}, "emp-1", nil)

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_InsertFailureSkipsUploads(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("Create", mock.Anything, mock.Anything, "0").Return(errors.New("db down"))

	svc := newTestService(repo, store)
	files := []Attachment{{Name: "motor.jpg", Size: 10, ContentType: "image/jpeg", Data: strings.NewReader("x")}}

	_, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto"}, "emp-1", files)

	assert.Error(t, err)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_ComputesEstimatedDeliveryFromCalendarDays(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("Create", mock.Anything, mock.Anything, "0").Return(nil)

	svc := newTestService(repo, store)
	res, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto", DelayDays: 5}, "emp-1", nil)

	assert.NoError(t, err)
	assert.Equal(t, "0-0007", res.Code)
	assert.Equal(t, "2024-01-15", res.EstimatedDelivery)
	assert.False(t, res.Partial())
}

func TestService_Submit_UploadFailuresArePartialSuccess(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("Create", mock.Anything, mock.Anything, "0").Return(nil)
	store.On("Upload", mock.Anything, "fenix", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("network"))

	svc := newTestService(repo, store)
	files := []Attachment{
		{Name: "a.jpg", Size: 10, ContentType: "image/jpeg", Data: strings.NewReader("a")},
		{Name: "b.jpg", Size: 11, ContentType: "image/jpeg", Data: strings.NewReader("b")},
	}

	res, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto"}, "emp-1", files)

	assert.NoError(t, err, "the committed record must survive upload failures")
	assert.Equal(t, "0-0007", res.Code)
	assert.Equal(t, 0, res.Uploaded)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, res.FailedUploads)
	assert.True(t, res.Partial())
	assert.False(t, res.StorageUnavailable)
}

func TestService_Submit_MissingBucketIsFlaggedApart(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("Create", mock.Anything, mock.Anything, "0").Return(nil)
	store.On("Upload", mock.Anything, "fenix", mock.Anything, mock.Anything, mock.Anything).Return(storage.ErrBucketNotFound)

	svc := newTestService(repo, store)
	files := []Attachment{{Name: "a.jpg", Size: 10, ContentType: "image/jpeg", Data: strings.NewReader("a")}}

	res, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto"}, "emp-1", files)

	assert.NoError(t, err)
	assert.True(t, res.StorageUnavailable)
}

func TestService_Submit_ScreensBeforeUploading(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("Create", mock.Anything, mock.Anything, "0").Return(nil)
	store.On("Upload", mock.Anything, "fenix", mock.MatchedBy(func(path string) bool {
		return strings.HasPrefix(path, "0-0007/") && strings.HasSuffix(path, "_ok.jpg")
	}), mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo, store)
	files := []Attachment{
		{Name: "ok.jpg", Size: 10, ContentType: "image/jpeg", Data: strings.NewReader("a")},
		{Name: "virus.exe", Size: 10, ContentType: "application/x-msdownload"},
	}

	res, err := svc.Submit(context.Background(), SubmitRequest{ClientName: "Roberto"}, "emp-1", files)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Uploaded)
	assert.Len(t, res.Rejected, 1)
	store.AssertNumberOfCalls(t, "Upload", 1)
}

func TestService_FindByCode_NotFound(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	repo.On("GetByCode", mock.Anything, "0-0099").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(repo, new(MockStore))
	_, err := svc.FindByCode(context.Background(), "0-0099")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_FindByCode_StorageFailureDegradesToNoMedia(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("GetByCode", mock.Anything, "0-0007").Return(&domain.WorkOrder{Code: "0-0007", ClientName: "Roberto"}, nil)
	store.On("List", mock.Anything, "fenix", "0-0007").Return(nil, errors.New("storage down"))

	svc := newTestService(repo, store)
	view, err := svc.FindByCode(context.Background(), "0-0007")

	assert.NoError(t, err)
	assert.Equal(t, "Roberto", view.ClientName)
	assert.Empty(t, view.Attachments)
}

func TestService_FindByCode_SkipsFolderPlaceholder(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	store := new(MockStore)
	repo.On("GetByCode", mock.Anything, "0-0007").Return(&domain.WorkOrder{Code: "0-0007"}, nil)
	store.On("List", mock.Anything, "fenix", "0-0007").Return([]storage.Object{
		{Name: ".emptyFolderPlaceholder", Size: 0, ContentType: "application/octet-stream"},
		{Name: "1700000000000_motor.jpg", Size: 10, ContentType: "image/jpeg"},
	}, nil)
	store.On("PublicURL", "fenix", "0-0007/1700000000000_motor.jpg").Return("http://localhost/media/fenix/0-0007/1700000000000_motor.jpg")

	svc := newTestService(repo, store)
	view, err := svc.FindByCode(context.Background(), "0-0007")

	assert.NoError(t, err)
	assert.Len(t, view.Attachments, 1)
	assert.Equal(t, "image", view.Attachments[0].Kind)
}

func TestService_UpdateStatus_CompletedStampsDelivery(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	repo.On("UpdateStatus", mock.Anything, "0-0007", domain.WorkOrderCompleted, mock.MatchedBy(func(ts *time.Time) bool {
		return ts != nil
	})).Return(nil)
	repo.On("GetByCode", mock.Anything, "0-0007").Return(&domain.WorkOrder{Code: "0-0007", Status: domain.WorkOrderCompleted}, nil)

	svc := newTestService(repo, new(MockStore))
	w, err := svc.UpdateStatus(context.Background(), "0-0007", domain.WorkOrderCompleted)

	assert.NoError(t, err)
	assert.Equal(t, domain.WorkOrderCompleted, w.Status)
}

func TestService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	svc := newTestService(repo, new(MockStore))

	_, err := svc.UpdateStatus(context.Background(), "0-0007", domain.WorkOrderStatus("shipped"))

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpcomingDeliveries_WindowIncludesOverdue(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	repo.On("ListOpenByEstimated", mock.Anything).Return([]domain.WorkOrder{
		{Code: "0-0001", EstimatedDelivery: "2024-01-08"}, // overdue
		{Code: "0-0002", EstimatedDelivery: "2024-01-11"},
		{Code: "0-0003", EstimatedDelivery: "2024-01-12"},
		{Code: "0-0004", EstimatedDelivery: "2024-01-13"}, // outside window
		{Code: "0-0005", EstimatedDelivery: "not-a-date"},
	}, nil)

	svc := newTestService(repo, new(MockStore))
	due, err := svc.UpcomingDeliveries(context.Background())

	assert.NoError(t, err)
	codes := make([]string, 0, len(due))
	for _, w := range due {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []string{"0-0001", "0-0002", "0-0003"}, codes)
}

func TestService_UpcomingDeliveries_SpringForwardKeepsWindow(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	repo := new(MockWorkOrderRepository)
	repo.On("ListOpenByEstimated", mock.Anything).Return([]domain.WorkOrder{
		{Code: "0-0001", EstimatedDelivery: "2024-03-10"},
		{Code: "0-0002", EstimatedDelivery: "2024-03-11"}, // three days out despite the short Sunday
	}, nil)

	svc := newTestService(repo, new(MockStore))
	svc.now = func() time.Time { return time.Date(2024, 3, 8, 9, 0, 0, 0, ny) }

	due, err := svc.UpcomingDeliveries(context.Background())

	assert.NoError(t, err)
	assert.Len(t, due, 1)
	assert.Equal(t, "0-0001", due[0].Code)
}

func TestService_GroupedByEmployee_UnassignedLast(t *testing.T) {
	repo := new(MockWorkOrderRepository)
	repo.On("List", mock.Anything).Return([]domain.WorkOrder{
		{Code: "0-0001", Employee: &domain.Employee{Name: "Maria"}},
		{Code: "0-0002"},
		{Code: "0-0003", Employee: &domain.Employee{Name: "Juan"}},
		{Code: "0-0004", Employee: &domain.Employee{Name: "Maria"}},
	}, nil)

	svc := newTestService(repo, new(MockStore))
	groups, err := svc.GroupedByEmployee(context.Background())

	assert.NoError(t, err)
	assert.Len(t, groups, 3)
	assert.Equal(t, "Juan", groups[0].Employee)
	assert.Equal(t, "Maria", groups[1].Employee)
	assert.Len(t, groups[1].Orders, 2)
	assert.Equal(t, "unassigned", groups[2].Employee)
}
