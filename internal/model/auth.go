package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims for a test taker
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// AdminClaims are the JWT claims for the dashboard admin
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId,omitempty"`
	Admin  bool   `json:"admin,omitempty"`
}
