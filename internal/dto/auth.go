package dto

// LoginRequest authenticates an operator.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token      string `json:"token"`
	OperatorID string `json:"operatorID"`
	Name       string `json:"name"`
}

// CreateOperatorRequest registers a back-office operator.
type CreateOperatorRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}
