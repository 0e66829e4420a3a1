package delete_booking

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
