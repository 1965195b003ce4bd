package user

import (
	"noteshare/internal/svc"
)

type UserHandler struct {
	svc *svc.ServiceContext
}

func NewUserHandler(svc *svc.ServiceContext) *UserHandler {
	return &UserHandler{svc: svc}
}
