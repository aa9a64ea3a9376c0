package commands

import (
	"context"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler removes an owner's menu item. Orders placed
// from it keep their line snapshots.
type DeleteMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory CatalogUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := auth.RequireVendor(cmd.Principal()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadOwnedVendor(ctx, uow.VendorRepository(), cmd.Principal(), cmd.VendorID()); err != nil {
		return err
	}

	menuRepo := uow.MenuRepository()
	item, err := menuRepo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.BelongsTo(cmd.VendorID()) {
		return errs.NewObjectNotFoundError("menuItem", cmd.ItemID().String())
	}

	if err = menuRepo.DeleteItem(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
