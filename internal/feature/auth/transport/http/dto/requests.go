// Package dto defines data transfer objects for the auth feature's
// HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint. The
// usecase applies the full validation gates; the binding tags only
// reject structurally empty requests early.
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginReq represents the request body for the /login and /admin/login
// endpoints.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
