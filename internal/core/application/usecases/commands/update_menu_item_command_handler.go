package commands

import (
	"context"
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/pkg/errs"
)

// UpdateMenuItemCommandHandler applies owner edits to a menu item.
type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	if err = applyMenuItemChanges(item, cmd.Changes()); err != nil {
		return err
	}

	if err = menuRepo.UpdateItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyMenuItemChanges(item *menu.Item, changes MenuItemChanges) error {
	var errList []error
	if changes.Name != nil {
		errList = append(errList, item.Rename(*changes.Name))
	}
	if changes.Description != nil {
		errList = append(errList, item.Describe(*changes.Description))
	}
	if changes.Price != nil {
		item.Reprice(*changes.Price)
	}
	if changes.Available != nil {
		item.SetAvailable(*changes.Available)
	}
	if changes.PreparationMinutes != nil {
		errList = append(errList, item.ChangePreparationTime(*changes.PreparationMinutes))
	}
	if changes.ImageURL != nil {
		errList = append(errList, item.ChangeImageURL(*changes.ImageURL))
	}
	return errors.Join(errList...)
}
