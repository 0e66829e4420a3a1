package issue_otp

import issueOTP "github.com/m04kA/SMC-CourtBookingService/internal/usecase/issue_otp"

// IssueOTPRequest HTTP request model
type IssueOTPRequest struct {
	Email string `json:"email"`
}

// IssueOTPResponse HTTP response model
type IssueOTPResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	CooldownSeconds  int    `json:"cooldownSeconds"`
	ExpiresInSeconds int    `json:"expiresInSeconds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *issueOTP.Response) *IssueOTPResponse {
	return &IssueOTPResponse{
		Success:          true,
		Message:          msgSent,
		CooldownSeconds:  resp.CooldownSeconds,
		ExpiresInSeconds: resp.ExpiresInSeconds,
	}
}
