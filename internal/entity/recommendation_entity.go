package entity

import "time"

// Retailer is one place a recommended device can be bought in the user's region.
type Retailer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Recommendation is one candidate device from a successfully parsed model
// response. Immutable after creation. Id is assigned by the model and is not
// guaranteed unique or stable across searches.
type Recommendation struct {
	Id            string `json:"id"`
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	PriceEstimate string `json:"priceEstimate"`
	Display       string `json:"display"`
	Processor     string `json:"processor"`
	Camera        string `json:"camera"`
	Battery       string `json:"battery"`
	WhyThisPhone  string `json:"whyThisPhone"`

	KeyFeatures []string `json:"keyFeatures"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	BestUseCase string   `json:"bestUseCase"`

	// MatchScore is advisory, clamped into [0,100] by the client.
	MatchScore float64 `json:"matchScore"`

	AvailableRetailers []Retailer `json:"availableRetailers"`
}

// SearchResult is the stored snapshot of one completed recommendation search.
// The sequence number orders competing searches: a result older than the
// latest issued search is discarded instead of stored.
type SearchResult struct {
	Sequence        uint64
	Recommendations []Recommendation
	CreatedAt       time.Time
}
