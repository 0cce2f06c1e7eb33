package model

// VendorSignup is the vendor registration form payload.
type VendorSignup struct {
	ShopName        string `json:"shopName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ContactPerson   string `json:"contactPerson"`
	PhoneNumber     string `json:"phoneNumber"`
	ShopAddress     string `json:"shopAddress"`
}

// ItemSubmission is the form a vendor fills to put an item up for sale.
type ItemSubmission struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
}
