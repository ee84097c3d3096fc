package helpers

type EnhancedClaims struct {
	*CustomClaims
	Role      string `json:"role"`
	UserID    string `json:"id"`
	Email     string `json:"email,omitempty"`
	Fullname  string `json:"fullname,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (ec *EnhancedClaims) IsAdmin() bool {
	return ec.Role == "admin"
}

func (ec *EnhancedClaims) HasRole(role string) bool {
	return ec.Role == role
}

func (ec *EnhancedClaims) GetSafeRole() string {
	if ec.Role == "" {
		return "guest"
	}
	return ec.Role
}
