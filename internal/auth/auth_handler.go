package auth

import (
	"noteshare/internal/svc"
)

type AuthHandler struct {
	svc *svc.ServiceContext
}

func NewAuthHandler(svc *svc.ServiceContext) *AuthHandler {
	return &AuthHandler{svc: svc}
}
