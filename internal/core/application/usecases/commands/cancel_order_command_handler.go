package commands

import (
	"context"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/order"
	"campusfood/internal/pkg/errs"
)

const OrderCancelledMessage = "Order cancelled successfully"

// CancelConfirmation is returned once an order has been cancelled.
type CancelConfirmation struct {
	OrderID kernel.UUID
	Status  order.Status
	Message string
}

// CancelOrderCommandHandler lets a customer cancel an order that is still
// pending or accepted. Payment state is left alone.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle cancels the order. A second cancellation fails with an
// InvalidTransitionError whose cause is order.ErrOrderAlreadyCancelled.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelConfirmation, error) {
	if err := cmd.Validate(); err != nil {
		return CancelConfirmation{}, err
	}
	if err := auth.RequireCustomer(cmd.Principal()); err != nil {
		return CancelConfirmation{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelConfirmation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelConfirmation{}, err
	}
	if !o.IsPlacedBy(cmd.Principal().UserID()) {
		return CancelConfirmation{}, errs.NewAccessDeniedError("order", cmd.OrderID().String())
	}

	if err = o.Cancel(cmd.Principal().UserID(), kernel.NormalizeTime(h.clock())); err != nil {
		return CancelConfirmation{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CancelConfirmation{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelConfirmation{}, err
	}

	return CancelConfirmation{
		OrderID: o.ID(),
		Status:  o.Status(),
		Message: OrderCancelledMessage,
	}, nil
}
