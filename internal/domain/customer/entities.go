package customer

import (
	"strings"
	"time"

	"banking-ledger/internal/domain/apperr"
)

// Table: customers. Rows are written once and never updated.
type Customer struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NationalID uint64    `gorm:"column:national_id;not null;uniqueIndex:ux_customers_national_id" json:"national_id"`
	FirstName  string    `gorm:"column:first_name;size:64;not null" json:"first_name"`
	LastName1  string    `gorm:"column:last_name1;size:64;not null" json:"last_name1"`
	LastName2  string    `gorm:"column:last_name2;size:64" json:"last_name2"`
	Phone      string    `gorm:"column:phone;size:16" json:"phone"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

// New validates the structural fields of a customer record.
func New(nationalID uint64, firstName, lastName1, lastName2, phone string) (*Customer, error) {
	if nationalID == 0 {
		return nil, apperr.Validation("national id is required")
	}
	firstName = strings.TrimSpace(firstName)
	lastName1 = strings.TrimSpace(lastName1)
	if firstName == "" || lastName1 == "" {
		return nil, apperr.Validation("first name and first last name are required")
	}
	return &Customer{
		NationalID: nationalID,
		FirstName:  firstName,
		LastName1:  lastName1,
		LastName2:  strings.TrimSpace(lastName2),
		Phone:      strings.TrimSpace(phone),
	}, nil
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(strings.Join([]string{c.FirstName, c.LastName1, c.LastName2}, " "))
}
