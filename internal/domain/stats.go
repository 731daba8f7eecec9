package domain

// Stats is the read-only aggregate snapshot returned by /stats.
type Stats struct {
	TotalDeliveries     int           `json:"totalDeliveries"`
	CompletedDeliveries int           `json:"completedDeliveries"`
	Rating              float64       `json:"rating"`
	AverageDeliveryTime float64       `json:"averageDeliveryTime"`
	Availability        Availability  `json:"availability"`
	Status              AccountStatus `json:"status"`
}
