package verify_otp

import (
	"time"

	verifyOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/verify_otp"
)

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	Success           bool      `json:"success"`
	Email             string    `json:"email"`
	VerificationToken string    `json:"verificationToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyOTPRequest) ToUseCaseRequest() *verifyOTP.Request {
	return &verifyOTP.Request{Email: r.Email, Code: r.OTP}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyOTP.Response) *VerifyOTPResponse {
	return &VerifyOTPResponse{
		Success:           true,
		Email:             resp.Email,
		VerificationToken: resp.Token,
		ExpiresAt:         resp.ExpiresAt,
	}
}
