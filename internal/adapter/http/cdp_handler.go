package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"banking-ledger/internal/usecase/cdp"
)

type CDPHandler struct{ uc *cdp.Usecase }

func NewCDPHandler(uc *cdp.Usecase) *CDPHandler { return &CDPHandler{uc: uc} }

type issueCDPReq struct {
	AccountID   uint64          `json:"account_id"  validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"gt=0,cents"`
	TermMonths  int             `json:"term_months" validate:"required,gt=0"`
	Rate        decimal.Decimal `json:"rate"        validate:"gte=0,lte=100"`
	RequestedAt *time.Time      `json:"requested_at"`
}

func (h *CDPHandler) Issue(c echo.Context) error {
	var req issueCDPReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Issue(c.Request().Context(), cdp.IssueInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CDPHandler) Get(c echo.Context) error {
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
