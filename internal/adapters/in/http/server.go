package http

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
)

// Use case ports the server calls. Command handlers satisfy them through
// pointers, query handlers by value.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AdvanceOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	CreateOverrideHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOverrideCommand) error
	}
	UpdateOverrideHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOverrideCommand) error
	}
	DeleteOverrideHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOverrideCommand) error
	}
	ChangeOperationCostHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOperationCostCommand) error
	}
	QuotePriceHandler interface {
		Handle(ctx context.Context, query queries.QuotePriceQuery) (queries.QuotePriceQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetOpenOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOpenOrdersQuery) ([]queries.GetOpenOrdersQueryResponse, error)
	}
	ListCustomerOverridesHandler interface {
		Handle(
			ctx context.Context,
			query queries.ListCustomerOverridesQuery,
		) ([]queries.ListCustomerOverridesQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder         CreateOrderHandler
	AdvanceOrderStatus  AdvanceOrderStatusHandler
	CancelOrder         CancelOrderHandler
	CreateOverride      CreateOverrideHandler
	UpdateOverride      UpdateOverrideHandler
	DeleteOverride      DeleteOverrideHandler
	ChangeOperationCost ChangeOperationCostHandler

	// Query handlers
	QuotePrice            QuotePriceHandler
	GetOrder              GetOrderHandler
	GetOpenOrders         GetOpenOrdersHandler
	ListCustomerOverrides ListCustomerOverridesHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}
