package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"
)

// CreateOverrideCommandHandler stores a new override after checking that the
// customer and product exist and belong to the same store. A pair that already
// has an override fails with pricing.ErrDuplicateOverride.
type CreateOverrideCommandHandler struct {
	uowFactory OverrideUoWFactory
	now        Clock
}

func NewCreateOverrideCommandHandler(uowFactory OverrideUoWFactory, now Clock) CreateOverrideCommandHandler {
	return CreateOverrideCommandHandler{uowFactory: uowFactory, now: now}
}

func (h *CreateOverrideCommandHandler) Handle(ctx context.Context, cmd CreateOverrideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !customer.BelongsTo(product.StoreID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"productId",
			fmt.Errorf("product %s is not sold by the store of customer %s", product.ID(), customer.ID()),
		)
	}

	overrideRepo := uow.OverrideRepository()

	existing, err := overrideRepo.Get(ctx, cmd.CustomerID(), cmd.ProductID())
	if err != nil {
		return err
	}
	if existing != nil {
		return pricing.NewDuplicateOverrideError(cmd.CustomerID(), cmd.ProductID())
	}

	override, err := pricing.NewOverride(cmd.CustomerID(), cmd.ProductID(), cmd.Rule(), h.now())
	if err != nil {
		return err
	}

	if err = overrideRepo.Add(ctx, override); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// UpdateOverrideCommandHandler replaces the rule of an existing override.
// Orders already placed keep their prices.
type UpdateOverrideCommandHandler struct {
	uowFactory OverrideUoWFactory
	now        Clock
}

func NewUpdateOverrideCommandHandler(uowFactory OverrideUoWFactory, now Clock) UpdateOverrideCommandHandler {
	return UpdateOverrideCommandHandler{uowFactory: uowFactory, now: now}
}

func (h *UpdateOverrideCommandHandler) Handle(ctx context.Context, cmd UpdateOverrideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overrideRepo := uow.OverrideRepository()

	override, err := overrideRepo.Get(ctx, cmd.CustomerID(), cmd.ProductID())
	if err != nil {
		return err
	}
	if override == nil {
		return overrideNotFound(cmd.CustomerID(), cmd.ProductID())
	}

	if err = override.Change(cmd.Rule(), h.now()); err != nil {
		return err
	}

	if err = overrideRepo.Update(ctx, override); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteOverrideCommandHandler removes an override. Missing overrides fail
// with errs.ErrObjectNotFound.
type DeleteOverrideCommandHandler struct {
	uowFactory OverrideUoWFactory
}

func NewDeleteOverrideCommandHandler(uowFactory OverrideUoWFactory) DeleteOverrideCommandHandler {
	return DeleteOverrideCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOverrideCommandHandler) Handle(ctx context.Context, cmd DeleteOverrideCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OverrideRepository().Delete(ctx, cmd.CustomerID(), cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func overrideNotFound(customerID, productID kernel.UUID) error {
	return errs.NewObjectNotFoundError("override", customerID.String()+"/"+productID.String())
}
