package models

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Name         string `json:"name"`
	ReferralCode string `json:"referralCode"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the user it belongs to
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdatePhoneRequest is the payload for setting the payout phone number
type UpdatePhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}
