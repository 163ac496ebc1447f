package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
)

type fakeClient struct {
	cart *reservasapi.Cart

	getErr     error
	addErr     error
	removeErr  error
	confirmErr error
	emptyErr   error

	getCalls    int
	addCalls    int
	removeCalls int
}

func (f *fakeClient) GetCart(ctx context.Context) (*reservasapi.Cart, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cart, nil
}

func (f *fakeClient) AddItem(ctx context.Context, req reservasapi.AddItemRequest) (*reservasapi.AddItemResult, error) {
	f.addCalls++
	if f.addErr != nil {
		return nil, f.addErr
	}
	item := reservasapi.CartItem{ID: int64(100 + f.addCalls), ServicioID: req.ServicioID, Estado: "pendiente"}
	if f.cart == nil {
		f.cart = &reservasapi.Cart{ID: 1, CodigoReserva: "RES-abc123", Estado: "pendiente"}
	}
	f.cart.Servicios = append(f.cart.Servicios, item)
	return &reservasapi.AddItemResult{Item: item, CodigoReserva: f.cart.CodigoReserva}, nil
}

func (f *fakeClient) RemoveItem(ctx context.Context, itemID int64) error {
	f.removeCalls++
	return f.removeErr
}

func (f *fakeClient) Confirm(ctx context.Context) (*reservasapi.Cart, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	confirmed := *f.cart
	confirmed.Estado = "confirmada"
	return &confirmed, nil
}

func (f *fakeClient) Empty(ctx context.Context) error {
	return f.emptyErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func remoteCart(serviceIDs ...int64) *reservasapi.Cart {
	cart := &reservasapi.Cart{ID: 1, UsuarioID: 7, CodigoReserva: "RES-abc123", Estado: "pendiente"}
	for i, id := range serviceIDs {
		cart.Servicios = append(cart.Servicios, reservasapi.CartItem{
			ID:         int64(i + 1),
			ReservaID:  1,
			ServicioID: id,
			Estado:     "pendiente",
		})
	}
	return cart
}

func TestLoad_ReplacesLocalState(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10, 20)}
	store := NewStore(client, nopLogger{})

	require.NoError(t, store.Load(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, 2, snap.TotalItems)
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, "RES-abc123", snap.Cart.CodigoReserva)
	assert.False(t, snap.Loading)
}

func TestLoad_NoPendingCart(t *testing.T) {
	client := &fakeClient{cart: nil}
	store := NewStore(client, nopLogger{})

	require.NoError(t, store.Load(context.Background()))

	snap := store.Snapshot()
	assert.Nil(t, snap.Cart)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.TotalItems)
}

func TestLoad_IsIdempotent(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})

	require.NoError(t, store.Load(context.Background()))
	require.NoError(t, store.Load(context.Background()))

	assert.Equal(t, 1, store.TotalItems())
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestLoad_UnauthorizedClearsState(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	client.getErr = reservasapi.ErrUnauthorized
	err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)

	snap := store.Snapshot()
	assert.Nil(t, snap.Cart)
	assert.Zero(t, snap.TotalItems)
	assert.False(t, snap.Loading)
}

func TestLoad_NetworkErrorKeepsStaleState(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10, 20)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	client.getErr = errors.New("connection refused")
	err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrRemote)

	// The user keeps seeing their cart until the connection recovers.
	snap := store.Snapshot()
	assert.Equal(t, 2, snap.TotalItems)
	assert.NotNil(t, snap.Cart)
	assert.False(t, snap.Loading)
}

func TestAdd_DuplicateRejectedWithoutRemoteCall(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	_, err := store.Add(context.Background(), reservasapi.AddItemRequest{ServicioID: 10})
	require.ErrorIs(t, err, ErrServiceAlreadyInCart)
	assert.Zero(t, client.addCalls)
	assert.Equal(t, 1, store.TotalItems())
}

func TestAdd_NewServiceReloadsCart(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	result, err := store.Add(context.Background(), reservasapi.AddItemRequest{ServicioID: 20})
	require.NoError(t, err)
	assert.Equal(t, "RES-abc123", result.CodigoReserva)
	assert.Equal(t, 1, client.addCalls)
	assert.Equal(t, 2, store.TotalItems())
}

func TestAdd_FirstServiceCreatesCart(t *testing.T) {
	client := &fakeClient{}
	store := NewStore(client, nopLogger{})

	_, err := store.Add(context.Background(), reservasapi.AddItemRequest{ServicioID: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, store.TotalItems())
	assert.NotNil(t, store.Snapshot().Cart)
}

func TestRemove_DecrementsWithoutReload(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10, 20)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))
	loadsBefore := client.getCalls

	require.NoError(t, store.Remove(context.Background(), 1))

	assert.Equal(t, loadsBefore, client.getCalls)
	assert.Equal(t, 1, store.TotalItems())

	snap := store.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(20), snap.Items[0].ServicioID)
}

func TestRemove_RemoteFailureKeepsItem(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	client.removeErr = errors.New("connection refused")
	err := store.Remove(context.Background(), 1)
	require.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, 1, store.TotalItems())
}

func TestConfirm_ResetsState(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10, 20)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	confirmed, err := store.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "confirmada", confirmed.Estado)

	snap := store.Snapshot()
	assert.Nil(t, snap.Cart)
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.TotalItems)
}

func TestClear_ResetsEvenWhenRemoteFails(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	client.emptyErr = errors.New("connection refused")
	err := store.Clear(context.Background())
	require.ErrorIs(t, err, ErrRemote)

	snap := store.Snapshot()
	assert.Nil(t, snap.Cart)
	assert.Zero(t, snap.TotalItems)
}

func TestClear_Success(t *testing.T) {
	client := &fakeClient{cart: remoteCart(10)}
	store := NewStore(client, nopLogger{})
	require.NoError(t, store.Load(context.Background()))

	require.NoError(t, store.Clear(context.Background()))
	assert.Zero(t, store.TotalItems())
}
