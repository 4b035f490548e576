package commands

import (
	"context"
)

// ChangeOperationCostCommandHandler persists a new store markup percentage.
type ChangeOperationCostCommandHandler struct {
	uowFactory StoreUoWFactory
}

func NewChangeOperationCostCommandHandler(uowFactory StoreUoWFactory) ChangeOperationCostCommandHandler {
	return ChangeOperationCostCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeOperationCostCommandHandler) Handle(ctx context.Context, cmd ChangeOperationCostCommand) error {
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

	storeRepo := uow.StoreRepository()

	store, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = store.ChangeOperationCost(cmd.Percent()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, store); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
