package workforce

type RegisterUserInput struct {
	FullName    string   `json:"full_name" example:"John Doe"`
	CompanyName *string  `json:"company_name" example:"Acme"`
	PhoneNumber string   `json:"phone_number" example:"555-0100"`
	Email       string   `json:"email" example:"john@example.com"`
	Password    string   `json:"password" example:"password123"`
	Role        Role     `json:"role" example:"1"`
	HourlyRate  *float64 `json:"hourly_rate" example:"45.5"`
}

type InvoiceSummary struct {
	Invoice    Invoice       `json:"invoice"`
	Items      []InvoiceItem `json:"items"`
	Payments   []Payment     `json:"payments"`
	AmountPaid float64       `json:"amount_paid"`
	Balance    float64       `json:"balance"`
}
