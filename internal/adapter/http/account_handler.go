package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"banking-ledger/internal/usecase/account"
	"banking-ledger/internal/usecase/cdp"
	"banking-ledger/internal/usecase/loan"
)

type AccountHandler struct {
	uc    *account.Usecase
	loans *loan.Usecase
	cdps  *cdp.Usecase
}

func NewAccountHandler(uc *account.Usecase, loans *loan.Usecase, cdps *cdp.Usecase) *AccountHandler {
	return &AccountHandler{uc: uc, loans: loans, cdps: cdps}
}

type openAccountReq struct {
	CustomerID uint64          `json:"customer_id" validate:"required"`
	Currency   string          `json:"currency"    validate:"required,currency"`
	Balance    decimal.Decimal `json:"balance"     validate:"gte=0,cents"`
	Rate       decimal.Decimal `json:"rate"        validate:"gte=0"`
}

type amountReq struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,cents"`
}

type historyReq struct {
	Limit  int `json:"limit"  validate:"gte=0,lte=500"`
	Offset int `json:"offset" validate:"gte=0"`
}

type transferReq struct {
	ToAccountID uint64          `json:"to_account_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"        validate:"gt=0,cents"`
}

func (h *AccountHandler) Open(c echo.Context) error {
	var req openAccountReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Open(c.Request().Context(), account.OpenInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *AccountHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) Transactions(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req historyReq
	if err := echo.QueryParamsBinder(c).
		Int("limit", &req.Limit).
		Int("offset", &req.Offset).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid paging query"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Kind:    "validation",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.History(c.Request().Context(), id, account.HistoryInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) Loans(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	list, err := h.loans.ListByAccount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AccountHandler) CDPs(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	list, err := h.cdps.ListByAccount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AccountHandler) Deposit(c echo.Context) error {
	return h.move(c, h.uc.Deposit)
}

func (h *AccountHandler) Withdraw(c echo.Context) error {
	return h.move(c, h.uc.Withdraw)
}

func (h *AccountHandler) move(c echo.Context, op func(ctx context.Context, id uint64, amount decimal.Decimal) (*account.OperationDTO, error)) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req amountReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := op(c.Request().Context(), id, req.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AccountHandler) Transfer(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	var req transferReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Transfer(c.Request().Context(), id, account.TransferInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
