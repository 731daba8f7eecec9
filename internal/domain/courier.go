package domain

type (
	// Availability represents the courier's availability for deliveries.
	Availability string
	// AccountStatus represents the account state of a courier.
	AccountStatus string
)

// Courier represents the authenticated delivery courier.
type Courier struct {
	ID                  string        `json:"_id"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email"`
	Phone               string        `json:"phone"`
	Status              AccountStatus `json:"status"`
	Availability        Availability  `json:"availability"`
	TotalDeliveries     int           `json:"totalDeliveries"`
	CompletedDeliveries int           `json:"completedDeliveries"`
	Rating              float64       `json:"rating"`
	AverageDeliveryTime float64       `json:"averageDeliveryTime,omitempty"`
	LastActive          string        `json:"lastActive,omitempty"`
}

// License holds the courier's driving license details.
type License struct {
	Number     string `json:"number"`
	ExpiryDate string `json:"expiryDate"`
}

// Vehicle holds the courier's vehicle details.
type Vehicle struct {
	Type               string `json:"type"`
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`
}

// Profile extends Courier with the full onboarding record returned by /me.
type Profile struct {
	Courier

	Name           string  `json:"name,omitempty"`
	Address        string  `json:"address,omitempty"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
	ZipCode        string  `json:"zipCode,omitempty"`
	FullAddress    string  `json:"fullAddress,omitempty"`
	JoinDate       string  `json:"joinDate,omitempty"`
	License        License `json:"license"`
	Vehicle        Vehicle `json:"vehicle"`
	BankAccount    string  `json:"bankAccount,omitempty"`
	BankName       string  `json:"bankName,omitempty"`
	IFSCCode       string  `json:"ifscCode,omitempty"`
	AccountHolder  string  `json:"accountHolder,omitempty"`
	TotalEarnings  float64 `json:"totalEarnings,omitempty"`
	AverageRating  float64 `json:"averageRating,omitempty"`
	CompletionRate float64 `json:"completionRate,omitempty"`
	IsApproved     bool    `json:"isApproved"`
	IsVerified     bool    `json:"isVerified"`
}
