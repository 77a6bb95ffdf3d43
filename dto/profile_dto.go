package dto

// UpdateProfileRequest represents a self-service profile update.
// Role and Email are bound so their presence can be rejected: neither
// is ever writable through this path.
type UpdateProfileRequest struct {
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	DeliveryAddress *string `json:"delivery_address"`
	Role            *string `json:"role"`
	Email           *string `json:"email"`
}

// CarriesRestrictedFields reports whether the payload tries to change
// role or email
func (r UpdateProfileRequest) CarriesRestrictedFields() bool {
	return r.Role != nil || r.Email != nil
}

// UpdateRoleRequest represents the dedicated role switch payload
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
