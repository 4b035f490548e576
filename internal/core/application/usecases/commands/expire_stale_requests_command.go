package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrExpireStaleRequestsCommandIsNotConstructed = errors.New(
	"ExpireStaleRequestsCommand must be created via NewExpireStaleRequestsCommand constructor",
)

// ExpireStaleRequestsCommand cancels orders that stayed Requested for longer
// than the given age.
//
// Example:
//
//	cmd, _ := NewExpireStaleRequestsCommand(48 * time.Hour)
//	expired, err := handler.Handle(ctx, cmd)
type ExpireStaleRequestsCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewExpireStaleRequestsCommand(olderThan time.Duration) (ExpireStaleRequestsCommand, error) {
	if olderThan <= 0 {
		return ExpireStaleRequestsCommand{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan.String(), "1ns", nil)
	}
	return ExpireStaleRequestsCommand{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireStaleRequestsCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleRequestsCommandIsNotConstructed)
}

func (c ExpireStaleRequestsCommand) OlderThan() time.Duration {
	return c.olderThan
}
