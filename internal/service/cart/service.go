package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/capachica-turismo/reservas-service/internal/domain"
	cartRepo "github.com/capachica-turismo/reservas-service/internal/infra/storage/cart"
	"github.com/capachica-turismo/reservas-service/internal/service/cart/models"
)

// Service handles cart retrieval, item removal, confirmation and emptying.
// Adding items lives in its own usecase because of the availability check
// and the serializable transaction around it.
type Service struct {
	cartRepo CartRepository
	logger   Logger
}

// NewService creates a cart service
func NewService(cartRepo CartRepository, logger Logger) *Service {
	return &Service{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// GetCart returns the user's pending cart
func (s *Service) GetCart(ctx context.Context, userID int64) (*models.CartResponse, error) {
	s.logger.Info("GetCart: fetching cart for user=%d", userID)

	cart, err := s.cartRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			s.logger.Info("GetCart: user=%d has no pending cart", userID)
			return nil, ErrCartNotFound
		}
		s.logger.Error("GetCart: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetCart - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCart: fetched cart id=%d with %d items for user=%d", cart.ID, len(cart.Items), userID)
	return models.FromDomainCart(cart), nil
}

// RemoveItem removes a line item from the user's pending cart.
// The item must belong to a cart owned by the user.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) error {
	s.logger.Info("RemoveItem: removing item id=%d for user=%d", itemID, userID)

	item, err := s.cartRepo.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrItemNotFound) {
			s.logger.Warn("RemoveItem: item id=%d not found", itemID)
			return ErrItemNotFound
		}
		s.logger.Error("RemoveItem: repository error for item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: RemoveItem - repository error: %v", ErrInternal, err)
	}

	cart, err := s.cartRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			s.logger.Warn("RemoveItem: user=%d has no pending cart", userID)
			return ErrAccessDenied
		}
		s.logger.Error("RemoveItem: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: RemoveItem - repository error: %v", ErrInternal, err)
	}

	if item.CartID != cart.ID {
		s.logger.Warn("RemoveItem: item id=%d does not belong to user=%d cart id=%d", itemID, userID, cart.ID)
		return ErrAccessDenied
	}

	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, cartRepo.ErrItemNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error("RemoveItem: failed to delete item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: RemoveItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveItem: removed item id=%d from cart id=%d", itemID, cart.ID)
	return nil
}

// Confirm converts the user's pending cart into a confirmed reservation.
// An empty cart cannot be confirmed.
func (s *Service) Confirm(ctx context.Context, userID int64) (*models.CartResponse, error) {
	s.logger.Info("Confirm: confirming cart for user=%d", userID)

	cart, err := s.cartRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			s.logger.Warn("Confirm: user=%d has no pending cart", userID)
			return nil, ErrCartNotFound
		}
		s.logger.Error("Confirm: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if len(cart.Items) == 0 {
		s.logger.Warn("Confirm: cart id=%d is empty", cart.ID)
		return nil, ErrEmptyCart
	}

	if err := s.cartRepo.UpdateStatus(ctx, cart.ID, domain.CartStatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update cart id=%d status: %v", cart.ID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if err := s.cartRepo.UpdateItemsStatus(ctx, cart.ID, domain.ItemStatusConfirmed); err != nil {
		s.logger.Error("Confirm: failed to update items of cart id=%d: %v", cart.ID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	cart.Status = domain.CartStatusConfirmed
	for _, item := range cart.Items {
		item.Status = domain.ItemStatusConfirmed
	}

	s.logger.Info("Confirm: confirmed cart id=%d (%s) with %d items", cart.ID, cart.Code, len(cart.Items))
	return models.FromDomainCart(cart), nil
}

// Clear empties the user's pending cart: items and the cart row itself are
// removed, so the next add starts a fresh cart.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	s.logger.Info("Clear: emptying cart for user=%d", userID)

	cart, err := s.cartRepo.GetPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			// Nothing to clear; emptying an absent cart is not an error.
			s.logger.Info("Clear: user=%d has no pending cart", userID)
			return nil
		}
		s.logger.Error("Clear: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	if err := s.cartRepo.DeleteItemsByCart(ctx, cart.ID); err != nil {
		s.logger.Error("Clear: failed to delete items of cart id=%d: %v", cart.ID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	if err := s.cartRepo.Delete(ctx, cart.ID); err != nil {
		s.logger.Error("Clear: failed to delete cart id=%d: %v", cart.ID, err)
		return fmt.Errorf("%w: Clear - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: emptied cart id=%d for user=%d", cart.ID, userID)
	return nil
}
