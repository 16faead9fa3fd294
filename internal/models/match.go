package models

// MatchInput is one side of a match computation: the trip's route, travel
// window, and declared interest tags. In production the secure-computation
// network receives the encrypted equivalent; this form exists for the local
// reference scorer and for simulation/test modes.
type MatchInput struct {
	Route     Route    `json:"route"`
	StartDate int64    `json:"startDate"`
	EndDate   int64    `json:"endDate"`
	Interests []string `json:"interests"`
}

// MatchOutput is the result of one match computation. It is produced fresh
// per computation and never cached or mutated.
type MatchOutput struct {
	RouteScore    int `json:"routeScore"`
	DateScore     int `json:"dateScore"`
	InterestScore int `json:"interestScore"`
	TotalScore    int `json:"totalScore"`

	OverlapCellCount int `json:"overlapCellCount"`
	OverlapDayCount  int `json:"overlapDayCount"`
}
