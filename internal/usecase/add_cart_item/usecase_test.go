package add_cart_item

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	cartRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/cart"
	"github.com/capachica-turismo/reservas-service/pkg/ptr"
)

type fakeCartRepo struct {
	pending   *domain.Cart
	slotItems []*domain.CartItem

	created   *domain.Cart
	added     *domain.CartItem
	addCalls  int
	nextItems int64
}

func (f *fakeCartRepo) GetPendingByUser(ctx context.Context, userID int64) (*domain.Cart, error) {
	if f.pending == nil {
		return nil, cartRepo.ErrCartNotFound
	}
	return f.pending, nil
}

func (f *fakeCartRepo) Create(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	cart.ID = 1
	f.created = cart
	f.pending = cart
	return cart, nil
}

func (f *fakeCartRepo) AddItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	f.addCalls++
	f.nextItems++
	item.ID = f.nextItems
	f.added = item
	return item, nil
}

func (f *fakeCartRepo) GetActiveItemsByServiceAndDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.CartItem, error) {
	return f.slotItems, nil
}

type fakeServiceRepo struct {
	svc *domain.Service
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.svc, nil
}

// fakeTxManager runs the function directly; serialization is exercised
// against a real database, not here.
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(repo *fakeCartRepo, svc *domain.Service) *UseCase {
	uc := NewUseCase(repo, &fakeServiceRepo{svc: svc}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		ServiceID: 100,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Quantity:  2,
	}
}

func flatService() *domain.Service {
	return &domain.Service{ID: 100, EmprendedorID: 5, Type: "tour", BasePrice: 100, Currency: "PEN", Capacity: 1}
}

func TestExecute_CreatesCartLazilyAndPrices(t *testing.T) {
	repo := &fakeCartRepo{}
	uc := newUseCase(repo, flatService())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created, "cart should be created on first add")
	assert.Equal(t, domain.CartStatusPending, repo.created.Status)
	assert.True(t, strings.HasPrefix(repo.created.Code, domain.CartCodePrefix))

	require.NotNil(t, repo.added)
	assert.Equal(t, int64(5), repo.added.EmprendedorID, "emprendedor taken from the service")
	assert.Equal(t, 60, repo.added.DurationMin)
	assert.Equal(t, domain.ItemStatusPending, repo.added.Status)

	require.NotNil(t, resp.Total)
	assert.Equal(t, 200.0, *resp.Total)
	assert.Equal(t, "PEN", resp.Currency)
	assert.Equal(t, 2, resp.Item.Cantidad)
}

func TestExecute_PerNightTotal(t *testing.T) {
	repo := &fakeCartRepo{}
	svc := &domain.Service{ID: 100, Type: "alojamiento", BasePrice: 100, Currency: "PEN"}
	uc := newUseCase(repo, svc)

	req := validRequest()
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	req.EndDate = &end

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Total)
	assert.Equal(t, 600.0, *resp.Total, "3 nights * 100 * 2 guests")
}

func TestExecute_DuplicateServiceRejected(t *testing.T) {
	repo := &fakeCartRepo{
		pending: &domain.Cart{
			ID:     1,
			UserID: 7,
			Status: domain.CartStatusPending,
			Items:  []*domain.CartItem{{ID: 1, ServiceID: 100}},
		},
	}
	uc := newUseCase(repo, flatService())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateService)
	assert.Zero(t, repo.addCalls, "no insert on duplicate")
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &fakeCartRepo{
		slotItems: []*domain.CartItem{{
			ServiceID: 100,
			StartTime: "10:30",
			EndTime:   "11:30",
			Status:    domain.ItemStatusPending,
		}},
	}
	uc := newUseCase(repo, flatService())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.addCalls)
}

func TestExecute_BackToBackSlotIsAvailable(t *testing.T) {
	repo := &fakeCartRepo{
		slotItems: []*domain.CartItem{{
			ServiceID: 100,
			StartTime: "09:00",
			EndTime:   "10:00",
			Status:    domain.ItemStatusPending,
		}},
	}
	uc := newUseCase(repo, flatService())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.addCalls)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"zero quantity", func(r *Request) { r.Quantity = 0 }, ErrInvalidInput},
		{"negative quantity", func(r *Request) { r.Quantity = -1 }, ErrInvalidInput},
		{"end before start", func(r *Request) { r.StartTime, r.EndTime = "11:00", "10:00" }, ErrInvalidTimeRange},
		{"equal times", func(r *Request) { r.EndTime = "10:00" }, ErrInvalidTimeRange},
		{"past date", func(r *Request) { r.StartDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
		{"malformed time", func(r *Request) { r.StartTime = "10h00" }, ErrInvalidInput},
		{"duration mismatch", func(r *Request) { r.DurationMinutes = ptr.Ptr(90) }, ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeCartRepo{}
			uc := newUseCase(repo, flatService())

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.addCalls)
		})
	}
}

func TestExecute_MatchingSuppliedDurationAccepted(t *testing.T) {
	repo := &fakeCartRepo{}
	uc := newUseCase(repo, flatService())

	req := validRequest()
	req.DurationMinutes = ptr.Ptr(60)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 60, resp.Item.DuracionMinutos)
}
