package add_cart_item

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	cartRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/cart"
	serviceRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/service"
	"github.com/capachica-turismo/reservas-service/internal/pricing"
	"github.com/capachica-turismo/reservas-service/internal/service/cart/models"
)

// UseCase adds a service to the user's pending cart. The duplicate check,
// the authoritative availability check and the insert run inside one
// serializable transaction, so two concurrent adds for the last free slot
// cannot both succeed.
type UseCase struct {
	cartRepo     CartRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the add-to-cart usecase
func NewUseCase(
	cartRepo CartRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		cartRepo:     cartRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the add-to-cart sequence
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCartItem: user=%d, service=%d, date=%s, time=%s-%s, quantity=%d",
		req.UserID, req.ServiceID, req.StartDate.Format(domain.DateFormat),
		req.StartTime, req.EndTime, req.Quantity)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("AddCartItem: validation failed: %v", err)
		return nil, err
	}

	duration, err := resolveDuration(req)
	if err != nil {
		uc.logger.Warn("AddCartItem: duration validation failed: %v", err)
		return nil, err
	}

	// Reference data; safe to read outside the transaction.
	svc, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("AddCartItem: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("AddCartItem: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	emprendedorID := req.EmprendedorID
	if emprendedorID == 0 {
		emprendedorID = svc.EmprendedorID
	}

	var created *domain.CartItem
	var cartCode string

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Pending cart, created lazily on the first add. The row is locked
		// FOR UPDATE so adds against the same cart serialize.
		userCart, err := uc.cartRepo.GetPendingByUser(txCtx, req.UserID)
		if err != nil {
			if !errors.Is(err, cartRepo.ErrCartNotFound) {
				uc.logger.Error("AddCartItem: failed to get cart for user=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: failed to get cart: %v", ErrInternal, err)
			}

			userCart, err = uc.cartRepo.Create(txCtx, &domain.Cart{
				UserID: req.UserID,
				Code:   newCartCode(),
				Status: domain.CartStatusPending,
			})
			if err != nil {
				uc.logger.Error("AddCartItem: failed to create cart for user=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: failed to create cart: %v", ErrInternal, err)
			}
			uc.logger.Info("AddCartItem: created cart id=%d (%s) for user=%d",
				userCart.ID, userCart.Code, req.UserID)
		}

		if userCart.HasService(req.ServiceID) {
			uc.logger.Warn("AddCartItem: service id=%d already in cart id=%d", req.ServiceID, userCart.ID)
			return ErrDuplicateService
		}

		items, err := uc.cartRepo.GetActiveItemsByServiceAndDate(txCtx, req.ServiceID, req.StartDate)
		if err != nil {
			uc.logger.Error("AddCartItem: failed to get reservations for service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		overlapping := countOverlappingItems(req.StartTime, req.EndTime, items)
		if overlapping >= svc.SlotCapacity() {
			uc.logger.Warn("AddCartItem: slot not available for service id=%d, %d/%d spots taken",
				req.ServiceID, overlapping, svc.SlotCapacity())
			return ErrSlotNotAvailable
		}

		item := &domain.CartItem{
			CartID:        userCart.ID,
			ServiceID:     req.ServiceID,
			EmprendedorID: emprendedorID,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			DurationMin:   duration,
			Quantity:      req.Quantity,
			ClientNotes:   req.ClientNotes,
			Status:        domain.ItemStatusPending,
		}

		created, err = uc.cartRepo.AddItem(txCtx, item)
		if err != nil {
			uc.logger.Error("AddCartItem: failed to insert item: %v", err)
			return fmt.Errorf("%w: failed to insert item: %v", ErrInternal, err)
		}

		cartCode = userCart.Code
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddCartItem: added item id=%d to cart for user=%d", created.ID, req.UserID)

	endDate := req.StartDate.Format(domain.DateFormat)
	if req.EndDate != nil {
		endDate = req.EndDate.Format(domain.DateFormat)
	}
	total := pricing.Calculate(svc, req.StartDate.Format(domain.DateFormat), endDate, req.Quantity)

	return &Response{
		Item:     models.FromDomainCartItem(created),
		CartCode: cartCode,
		Total:    total,
		Currency: svc.Currency,
	}, nil
}

// newCartCode generates a short unique reservation code (codigo_reserva)
func newCartCode() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return domain.CartCodePrefix + "00000000"
	}
	return domain.CartCodePrefix + strings.ToUpper(hex.EncodeToString(buf))
}
