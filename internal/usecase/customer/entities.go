package customer

import (
	"time"

	domain "banking-ledger/internal/domain/customer"
)

type RegisterInput struct {
	NationalID uint64 `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName1  string `json:"last_name1"`
	LastName2  string `json:"last_name2"`
	Phone      string `json:"phone"`
}

type CustomerDTO struct {
	ID         uint64    `json:"id"`
	NationalID uint64    `json:"national_id"`
	FullName   string    `json:"full_name"`
	FirstName  string    `json:"first_name"`
	LastName1  string    `json:"last_name1"`
	LastName2  string    `json:"last_name2,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(c *domain.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:         c.ID,
		NationalID: c.NationalID,
		FullName:   c.FullName(),
		FirstName:  c.FirstName,
		LastName1:  c.LastName1,
		LastName2:  c.LastName2,
		Phone:      c.Phone,
		CreatedAt:  c.CreatedAt,
	}
}
