package dto

// TokenRequest carries the admin credentials exchanged for a bearer token.
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the response for a successful token issue.
type TokenResponse struct {
	Token string `json:"token"`
}
