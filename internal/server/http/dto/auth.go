package dto

// AuthRequest describes login/password payload for registration and login.
type AuthRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
