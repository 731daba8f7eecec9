package domain

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	Phone               string `json:"phone"`
	LicenseNumber       string `json:"licenseNumber"`
	LicenseExpiryDate   string `json:"licenseExpiryDate"`
	VehicleType         string `json:"vehicleType"`
	VehicleRegistration string `json:"vehicleRegistration"`
	VehicleModel        string `json:"vehicleModel"`
	Address             string `json:"address"`
	City                string `json:"city"`
	State               string `json:"state"`
	ZipCode             string `json:"zipCode"`
}
