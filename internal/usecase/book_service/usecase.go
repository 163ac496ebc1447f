// Package book_service runs the booking flow a service detail page
// triggers: login gate, local validation, remote availability check and
// finally the add to cart. Steps run in that order and stop at the first
// failure, so a rejected booking never half-applies.
package book_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/capachica-turismo/reservas-service/internal/cart"
	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
	"github.com/capachica-turismo/reservas-service/internal/pricing"
)

type UseCase struct {
	auth         Auth
	navigator    Navigator
	availability AvailabilityChecker
	store        CartStore
	log          Logger
}

func NewUseCase(auth Auth, navigator Navigator, availability AvailabilityChecker, store CartStore, log Logger) *UseCase {
	return &UseCase{
		auth:         auth,
		navigator:    navigator,
		availability: availability,
		store:        store,
		log:          log,
	}
}

// Execute books a service into the cart
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.auth.IsLoggedIn() {
		uc.log.Info("Execute: anonymous user, redirecting to login (return_to=%s)", req.ReturnTo)
		uc.navigator.RedirectToLogin(req.ReturnTo)
		return nil, ErrNotAuthenticated
	}

	if err := validateRequest(req); err != nil {
		uc.log.Warn("Execute: invalid booking request: %v", err)
		return nil, err
	}

	// Duplicates are caught here, before the availability round-trip;
	// the backend rejects them too.
	if uc.store.HasService(req.Service.ID) {
		uc.log.Warn("Execute: service %d already in cart", req.Service.ID)
		return nil, ErrServiceAlreadyInCart
	}

	result, err := uc.availability.CheckAvailability(ctx, reservasapi.AvailabilityQuery{
		ServicioID:  req.Service.ID,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
		HoraInicio:  req.HoraInicio.String(),
		HoraFin:     req.HoraFin.String(),
	})
	if err != nil {
		uc.log.Error("Execute: availability check failed for service %d: %v", req.Service.ID, err)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	if !result.Disponible {
		uc.log.Info("Execute: slot taken for service %d on %s %s-%s",
			req.Service.ID, req.FechaInicio, req.HoraInicio, req.HoraFin)
		return nil, ErrSlotNotAvailable
	}

	added, err := uc.store.Add(ctx, req.toAddItemRequest())
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrServiceAlreadyInCart):
			return nil, ErrServiceAlreadyInCart
		case errors.Is(err, cart.ErrNotAuthenticated):
			uc.navigator.RedirectToLogin(req.ReturnTo)
			return nil, ErrNotAuthenticated
		default:
			uc.log.Error("Execute: add to cart failed for service %d: %v", req.Service.ID, err)
			return nil, fmt.Errorf("%w: add to cart: %v", ErrInternal, err)
		}
	}

	total := pricing.Calculate(req.Service, req.FechaInicio, req.FechaFin, req.Cantidad)

	uc.log.Info("Execute: service %d booked into cart %s", req.Service.ID, added.CodigoReserva)
	return &Response{
		Item:   added.Item,
		Total:  total,
		Moneda: req.Service.Currency,
	}, nil
}
