package domain

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Capability is a named permission checked by the API layer.
type Capability string

const (
	CapManageFleet    Capability = "MANAGE_FLEET"
	CapManageUsers    Capability = "MANAGE_USERS"
	CapDeleteBookings Capability = "DELETE_BOOKINGS"
	CapCreateBookings Capability = "CREATE_BOOKINGS"
)

// HasCapability maps roles to capabilities. Kept outside the User entity so
// authorization rules never ride on persisted state.
func HasCapability(role Role, cap Capability) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleUser:
		return cap == CapCreateBookings
	default:
		return false
	}
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      Role      `json:"role"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
