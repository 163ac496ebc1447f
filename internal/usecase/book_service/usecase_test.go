package book_service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capachica-turismo/reservas-service/internal/cart"
	"github.com/capachica-turismo/reservas-service/internal/domain"
	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
	"github.com/capachica-turismo/reservas-service/pkg/types"
)

type fakeAuth struct {
	loggedIn bool
}

func (f *fakeAuth) IsLoggedIn() bool { return f.loggedIn }

type fakeNavigator struct {
	redirects []string
}

func (f *fakeNavigator) RedirectToLogin(returnTo string) {
	f.redirects = append(f.redirects, returnTo)
}

type fakeAvailability struct {
	available bool
	message   string
	err       error
	calls     int
}

func (f *fakeAvailability) CheckAvailability(ctx context.Context, query reservasapi.AvailabilityQuery) (*reservasapi.AvailabilityResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &reservasapi.AvailabilityResult{Disponible: f.available, Message: f.message}, nil
}

type fakeStore struct {
	existing int64
	addErr   error
	addCalls int
	added    []reservasapi.AddItemRequest
}

func (f *fakeStore) HasService(serviceID int64) bool {
	return f.existing == serviceID
}

func (f *fakeStore) Add(ctx context.Context, req reservasapi.AddItemRequest) (*reservasapi.AddItemResult, error) {
	f.addCalls++
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, req)
	return &reservasapi.AddItemResult{
		Item:          reservasapi.CartItem{ID: 1, ServicioID: req.ServicioID, Estado: "pendiente"},
		CodigoReserva: "RES-abc123",
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func kayakTour() *domain.Service {
	return &domain.Service{
		ID:            1,
		EmprendedorID: 5,
		Name:          "Paseo en kayak",
		Type:          "actividad",
		BasePrice:     50,
		Currency:      "PEN",
		Capacity:      1,
	}
}

func newRequest(svc *domain.Service) *Request {
	return &Request{
		Service:     svc,
		FechaInicio: "2025-06-01",
		HoraInicio:  types.TimeString("10:00"),
		HoraFin:     types.TimeString("12:00"),
		Cantidad:    2,
		ReturnTo:    "/servicios/1",
	}
}

func TestExecute_AnonymousUserRedirectedWithoutNetwork(t *testing.T) {
	nav := &fakeNavigator{}
	avail := &fakeAvailability{available: true}
	store := &fakeStore{}
	uc := NewUseCase(&fakeAuth{loggedIn: false}, nav, avail, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Equal(t, []string{"/servicios/1"}, nav.redirects)
	assert.Zero(t, avail.calls)
	assert.Zero(t, store.addCalls)
}

func TestExecute_BooksServiceWithDisplayTotal(t *testing.T) {
	nav := &fakeNavigator{}
	avail := &fakeAvailability{available: true}
	store := &fakeStore{}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, nav, avail, store, nopLogger{})

	resp, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.NoError(t, err)

	require.NotNil(t, resp.Total)
	assert.Equal(t, 100.0, *resp.Total) // 50 * 2, flat rate
	assert.Equal(t, "PEN", resp.Moneda)
	assert.Equal(t, int64(1), resp.Item.ServicioID)
	assert.Empty(t, nav.redirects)

	require.Len(t, store.added, 1)
	assert.Equal(t, "10:00", store.added[0].HoraInicio)
	assert.Equal(t, int64(5), store.added[0].EmprendedorID)
}

func TestExecute_LodgingPricedPerNight(t *testing.T) {
	lodge := &domain.Service{
		ID:            2,
		EmprendedorID: 6,
		Type:          "alojamiento",
		BasePrice:     100,
		Currency:      "PEN",
	}
	req := newRequest(lodge)
	req.FechaFin = "2025-06-04"
	req.Cantidad = 2

	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, &fakeAvailability{available: true}, &fakeStore{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Total)
	assert.Equal(t, 600.0, *resp.Total) // 3 nights * 100 * 2
}

func TestExecute_SlotTakenStopsBeforeAdd(t *testing.T) {
	avail := &fakeAvailability{available: false, message: "el horario seleccionado ya no está disponible"}
	store := &fakeStore{}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, avail, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, store.addCalls)
}

func TestExecute_DuplicateStopsBeforeAvailability(t *testing.T) {
	avail := &fakeAvailability{available: true}
	store := &fakeStore{existing: 1}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, avail, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.ErrorIs(t, err, ErrServiceAlreadyInCart)
	assert.Zero(t, avail.calls)
	assert.Zero(t, store.addCalls)
}

func TestExecute_StoreDuplicateMapped(t *testing.T) {
	store := &fakeStore{addErr: cart.ErrServiceAlreadyInCart}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, &fakeAvailability{available: true}, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	assert.ErrorIs(t, err, ErrServiceAlreadyInCart)
}

func TestExecute_SessionExpiredMidFlow(t *testing.T) {
	nav := &fakeNavigator{}
	store := &fakeStore{addErr: cart.ErrNotAuthenticated}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, nav, &fakeAvailability{available: true}, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, []string{"/servicios/1"}, nav.redirects)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, &fakeAvailability{available: true}, &fakeStore{}, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "missing service",
			mutate:  func(r *Request) { r.Service = nil },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad start date",
			mutate:  func(r *Request) { r.FechaInicio = "01/06/2025" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end time before start time",
			mutate:  func(r *Request) { r.HoraInicio, r.HoraFin = types.TimeString("12:00"), types.TimeString("10:00") },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "equal start and end time",
			mutate:  func(r *Request) { r.HoraFin = r.HoraInicio },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *Request) { r.Cantidad = 0 },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(kayakTour())
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_AvailabilityErrorWrapped(t *testing.T) {
	avail := &fakeAvailability{err: errors.New("connection refused")}
	store := &fakeStore{}
	uc := NewUseCase(&fakeAuth{loggedIn: true}, &fakeNavigator{}, avail, store, nopLogger{})

	_, err := uc.Execute(context.Background(), newRequest(kayakTour()))
	require.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, store.addCalls)
}
