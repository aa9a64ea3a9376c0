package commands

import (
	"context"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
)

// AddMenuItemCommandHandler adds an item to the menu of a vendor the
// caller owns. New items start available.
type AddMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory CatalogUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the ID of the created item.
func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := auth.RequireVendor(cmd.Principal()); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := loadOwnedVendor(ctx, uow.VendorRepository(), cmd.Principal(), cmd.VendorID())
	if err != nil {
		return kernel.UUID{}, err
	}

	menuRepo := uow.MenuRepository()
	m, err := menuRepo.GetByVendor(ctx, v.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	item, err := m.NewItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.PreparationMinutes(),
		cmd.ImageURL(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = menuRepo.AddItem(ctx, item); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return item.ID(), nil
}
