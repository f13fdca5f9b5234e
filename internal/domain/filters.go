package domain

import "time"

// Page is the offset/limit pair used by every list operation.
type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TrainFilter narrows a train listing: case-insensitive name substring,
// exact capacity values, and a set of train type IDs.
type TrainFilter struct {
	Name          string
	CargoNum      *int
	PlacesInCargo *int
	TrainTypeIDs  []int64
}

// JourneyFilter narrows a journey listing by referenced IDs and time bounds.
type JourneyFilter struct {
	RouteIDs       []int64
	TrainIDs       []int64
	CrewIDs        []int64
	DepartureAfter *time.Time
	ArrivalBefore  *time.Time
}
