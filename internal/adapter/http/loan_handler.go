package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"banking-ledger/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type disburseLoanReq struct {
	AccountID   uint64          `json:"account_id"   validate:"required"`
	Type        string          `json:"type"         validate:"required,loantype"`
	Currency    string          `json:"currency"     validate:"omitempty,currency"`
	Principal   decimal.Decimal `json:"principal"    validate:"gt=0,cents"`
	Rate        decimal.Decimal `json:"rate"         validate:"gte=0,lte=100"`
	TermMonths  int             `json:"term_months"  validate:"required,gt=0,lte=480"`
	Installment decimal.Decimal `json:"installment"  validate:"gte=0,cents"`
	RequestedAt *time.Time      `json:"requested_at"`
}

type estimateLoanReq struct {
	Principal  decimal.Decimal `json:"principal"   validate:"gt=0"`
	Rate       decimal.Decimal `json:"rate"        validate:"gte=0,lte=100"`
	TermMonths int             `json:"term_months" validate:"required,gt=0,lte=480"`
	Currency   string          `json:"currency"    validate:"omitempty,currency"`
}

func (h *LoanHandler) Disburse(c echo.Context) error {
	var req disburseLoanReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Disburse(c.Request().Context(), loan.DisburseInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
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

func (h *LoanHandler) Payments(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	list, err := h.uc.Payments(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *LoanHandler) Pay(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	dto, err := h.uc.Pay(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Estimate(c echo.Context) error {
	var req estimateLoanReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Estimate(c.Request().Context(), loan.EstimateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
