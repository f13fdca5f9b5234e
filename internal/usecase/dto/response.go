package dto

import "time"

// StationResponse - station representation
type StationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TrainTypeResponse - train type representation
type TrainTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TrainResponse - list representation, type as ID
type TrainResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	CargoNum      int    `json:"cargo_num"`
	PlacesInCargo int    `json:"places_in_cargo"`
	TrainType     int64  `json:"train_type"`
}

// TrainDetailResponse - detail representation, type embedded
type TrainDetailResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	CargoNum      int               `json:"cargo_num"`
	PlacesInCargo int               `json:"places_in_cargo"`
	TrainType     TrainTypeResponse `json:"train_type"`
}

// RouteResponse - list representation, stations as IDs
type RouteResponse struct {
	ID          int64 `json:"id"`
	Source      int64 `json:"source"`
	Destination int64 `json:"destination"`
	Distance    int   `json:"distance"`
}

// RouteDetailResponse - detail representation, stations embedded
type RouteDetailResponse struct {
	ID          int64           `json:"id"`
	Source      StationResponse `json:"source"`
	Destination StationResponse `json:"destination"`
	Distance    int             `json:"distance"`
}

// CrewResponse - crew member with derived full name
type CrewResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

// JourneyResponse - journey with referenced IDs only
type JourneyResponse struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Train         int64     `json:"train"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []int64   `json:"crew"`
}

// JourneyListResponse - journey with route/train/crew summaries embedded
type JourneyListResponse struct {
	ID            int64          `json:"id"`
	Route         RouteResponse  `json:"route"`
	Train         TrainResponse  `json:"train"`
	DepartureTime time.Time      `json:"departure_time"`
	ArrivalTime   time.Time      `json:"arrival_time"`
	Crew          []CrewResponse `json:"crew"`
}

// JourneyDetailResponse - journey with fully expanded references
type JourneyDetailResponse struct {
	ID            int64               `json:"id"`
	Route         RouteDetailResponse `json:"route"`
	Train         TrainDetailResponse `json:"train"`
	DepartureTime time.Time           `json:"departure_time"`
	ArrivalTime   time.Time           `json:"arrival_time"`
	Crew          []CrewResponse      `json:"crew"`
}

// TicketResponse - ticket within an order
type TicketResponse struct {
	ID      int64 `json:"id"`
	Cargo   int   `json:"cargo"`
	Seat    int   `json:"seat"`
	Journey int64 `json:"journey"`
}

// OrderResponse - order with its tickets
type OrderResponse struct {
	ID        int64            `json:"id"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
	User      int64            `json:"user"`
}

// UserResponse - account representation, password never included
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// TokenResponse - JWT pair issued on login
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// DetailResponse - plain human-readable detail message
type DetailResponse struct {
	Detail string `json:"detail"`
}
