package commands

import (
	"context"
	"errors"

	"campusfood/internal/core/application/auth"
	"campusfood/internal/core/domain/model/kernel"
	"campusfood/internal/core/domain/model/menu"
	"campusfood/internal/core/domain/model/vendor"
	"campusfood/internal/pkg/errs"
)

// VendorCreated identifies the new storefront and its menu.
type VendorCreated struct {
	VendorID kernel.UUID
	MenuID   kernel.UUID
}

// CreateVendorCommandHandler registers a vendor profile together with its
// single menu. A user owns at most one vendor.
type CreateVendorCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateVendorCommandHandler(uowFactory CatalogUoWFactory) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateVendorCommandHandler) Handle(ctx context.Context, cmd CreateVendorCommand) (VendorCreated, error) {
	if err := cmd.Validate(); err != nil {
		return VendorCreated{}, err
	}
	if err := auth.RequireVendor(cmd.Principal()); err != nil {
		return VendorCreated{}, err
	}

	ownerID := cmd.Principal().UserID()
	v, err := vendor.NewVendor(
		kernel.NewUUID(),
		ownerID,
		cmd.Name(),
		cmd.Description(),
		cmd.Location(),
		cmd.OffersPickup(),
		cmd.OffersDelivery(),
	)
	if err != nil {
		return VendorCreated{}, err
	}
	m, err := menu.NewMenu(kernel.NewUUID(), v.ID(), cmd.MenuTitle())
	if err != nil {
		return VendorCreated{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return VendorCreated{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	existing, err := vendorRepo.GetByOwner(ctx, ownerID)
	switch {
	case err == nil:
		return VendorCreated{}, errs.NewObjectIsUnavailableError("vendor owner", ownerID.String(),
			"already operates "+existing.Name())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return VendorCreated{}, err
	}

	if err = vendorRepo.Add(ctx, v); err != nil {
		return VendorCreated{}, err
	}
	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return VendorCreated{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return VendorCreated{}, err
	}

	return VendorCreated{VendorID: v.ID(), MenuID: m.ID()}, nil
}
