package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"banking-ledger/internal/usecase/account"
	"banking-ledger/internal/usecase/customer"
)

type CustomerHandler struct {
	uc       *customer.Usecase
	accounts *account.Usecase
}

func NewCustomerHandler(uc *customer.Usecase, accounts *account.Usecase) *CustomerHandler {
	return &CustomerHandler{uc: uc, accounts: accounts}
}

type registerCustomerReq struct {
	NationalID uint64 `json:"national_id" validate:"required"`
	FirstName  string `json:"first_name"  validate:"required,max=64"`
	LastName1  string `json:"last_name1"  validate:"required,max=64"`
	LastName2  string `json:"last_name2"  validate:"max=64"`
	Phone      string `json:"phone"       validate:"max=16"`
}

func (h *CustomerHandler) Register(c echo.Context) error {
	var req registerCustomerReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Register(c.Request().Context(), customer.RegisterInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) Get(c echo.Context) error {
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

func (h *CustomerHandler) GetByNationalID(c echo.Context) error {
	nid, ok, err := pathID(c, "national_id")
	if !ok {
		return err
	}
	dto, err := h.uc.GetByNationalID(c.Request().Context(), nid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) Accounts(c echo.Context) error {
	id, ok, err := pathID(c, "id")
	if !ok {
		return err
	}
	list, err := h.accounts.ListByCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
