package transport

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
}

type AddToCartRequest struct {
	UserID    string `json:"user_id"    validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type VersionResponse struct {
	Version string `json:"version"`
}
