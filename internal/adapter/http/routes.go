package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health    *Handler
	Customers *CustomerHandler
	Accounts  *AccountHandler
	Loans     *LoanHandler
	CDPs      *CDPHandler
}

// Register mounts every route on e. write wraps the mutating routes
// (idempotency, when configured).
func Register(e *echo.Echo, h Handlers, write ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	e.POST("/customers", h.Customers.Register, write...)
	e.GET("/customers/:id", h.Customers.Get)
	e.GET("/customers/:id/accounts", h.Customers.Accounts)
	e.GET("/customers/national/:national_id", h.Customers.GetByNationalID)

	e.POST("/accounts", h.Accounts.Open, write...)
	e.GET("/accounts/:id", h.Accounts.Get)
	e.GET("/accounts/:id/transactions", h.Accounts.Transactions)
	e.GET("/accounts/:id/loans", h.Accounts.Loans)
	e.GET("/accounts/:id/cdps", h.Accounts.CDPs)
	e.POST("/accounts/:id/deposit", h.Accounts.Deposit, write...)
	e.POST("/accounts/:id/withdraw", h.Accounts.Withdraw, write...)
	e.POST("/accounts/:id/transfer", h.Accounts.Transfer, write...)

	e.POST("/loans", h.Loans.Disburse, write...)
	e.POST("/loans/estimate", h.Loans.Estimate)
	e.GET("/loans/:id", h.Loans.Get)
	e.GET("/loans/:id/payments", h.Loans.Payments)
	e.POST("/loans/:id/pay", h.Loans.Pay, write...)

	e.POST("/cdps", h.CDPs.Issue, write...)
	e.GET("/cdps/:id", h.CDPs.Get)
}
