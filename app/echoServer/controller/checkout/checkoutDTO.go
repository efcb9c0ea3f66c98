package checkout

// CheckoutReq is the booking form payload. Dates arrive as RFC3339 or plain
// YYYY-MM-DD strings from the booking card.
type CheckoutReq struct {
	CarID           string `json:"carId" validate:"required"`
	PickupDate      string `json:"pickupDate" validate:"required"`
	ReturnDate      string `json:"returnDate" validate:"required"`
	PickupTime      string `json:"pickupTime" validate:"required"`
	ReturnTime      string `json:"returnTime" validate:"required"`
	PickupLocation  string `json:"pickupLocation" validate:"required"`
	DropoffLocation string `json:"dropoffLocation" validate:"required"`
	AdditionalNotes string `json:"additionalNotes"`
}
