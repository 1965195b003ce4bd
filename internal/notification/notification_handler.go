package notification

import (
	"noteshare/internal/svc"
)

type NotificationHandler struct {
	svc *svc.ServiceContext
}

func NewNotificationHandler(svc *svc.ServiceContext) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}
