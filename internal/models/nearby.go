package models

// NearbyAgent is one ranked agent directory entry annotated with distance
// swagger:model NearbyAgent
type NearbyAgent struct {
	// Agent code
	// example: AGT-0042
	Code string `json:"code"`

	// Agent address
	// example: 12 Oxford St, Osu
	Address string `json:"address"`

	// City
	// example: Accra
	City string `json:"city"`

	// Offered services
	Services []string `json:"services"`

	// Rolling average rating
	// example: 4.7
	Rating float64 `json:"rating"`

	// Verification tier
	// example: verified
	Tier string `json:"tier"`

	// Distance from the queried location in kilometers
	// example: 1.24
	DistanceKm float64 `json:"distance_km"`
}

// NearbyResponse is the ranked agent list for a nearby query
// swagger:model NearbyResponse
type NearbyResponse struct {
	// Ranked agents, nearest first
	Agents []NearbyAgent `json:"agents"`
}

// NearbyErrorResponse represents an error response for a nearby query
// swagger:model NearbyErrorResponse
type NearbyErrorResponse struct {
	// Error message
	// example: Invalid location
	Error string `json:"error"`
}
