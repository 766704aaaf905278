package domain

import "github.com/shopspring/decimal"

type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
)

type DiscountRequest struct {
	Percent decimal.Decimal
	Role    Role
}
