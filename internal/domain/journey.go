package domain

import "time"

// Journey is a scheduled run of a train over a route. Once its departure
// time has passed the journey is immutable.
type Journey struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route" db:"route_id"`
	TrainID       int64     `json:"train" db:"train_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
	CrewIDs       []int64   `json:"crew" db:"-"`

	Route *Route  `json:"-" db:"-"`
	Train *Train  `json:"-" db:"-"`
	Crew  []*Crew `json:"-" db:"-"`
}

// HasStarted reports whether the journey's departure has already passed.
func (j *Journey) HasStarted(now time.Time) bool {
	return j.DepartureTime.Before(now)
}
