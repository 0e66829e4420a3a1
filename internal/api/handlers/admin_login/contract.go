package admin_login

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/service/admins"
)

type AdminService interface {
	Login(ctx context.Context, req *admins.LoginRequest) (*admins.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
