package issue_otp

import (
	"context"

	issueOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/issue_otp"
)

type IssueOTPUseCase interface {
	Execute(ctx context.Context, req *issueOTP.Request) (*issueOTP.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
