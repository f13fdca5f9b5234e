package dto

import "time"

// StationCreateRequest - payload for creating a station
type StationCreateRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// TrainTypeCreateRequest - payload for creating a train type
type TrainTypeCreateRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// TrainRequest - payload for creating or updating a train.
// Capacity fields accept 0: such a train exists but cannot be booked.
type TrainRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	CargoNum      int    `json:"cargo_num" validate:"min=0,max=100"`
	PlacesInCargo int    `json:"places_in_cargo" validate:"min=0,max=100"`
	TrainType     int64  `json:"train_type" validate:"required"`
}

// RouteRequest - payload for creating or updating a route
type RouteRequest struct {
	Source      int64 `json:"source" validate:"required"`
	Destination int64 `json:"destination" validate:"required"`
	Distance    int   `json:"distance" validate:"min=0"`
}

// CrewRequest - payload for creating or updating a crew member
type CrewRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

// JourneyRequest - payload for creating or updating a journey
type JourneyRequest struct {
	Route         int64     `json:"route" validate:"required"`
	Train         int64     `json:"train" validate:"required"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
	Crew          []int64   `json:"crew" validate:"omitempty,dive,gt=0"`
}

// TicketPayload - one requested seat inside an order. Bounds against the
// train's capacity are checked by the booking validator, not by struct tags,
// so the client always gets the range-naming error.
type TicketPayload struct {
	Cargo   int   `json:"cargo"`
	Seat    int   `json:"seat"`
	Journey int64 `json:"journey" validate:"required"`
}

// OrderCreateRequest - payload for creating an order with its tickets
type OrderCreateRequest struct {
	Tickets []TicketPayload `json:"tickets" validate:"required,min=1,dive"`
}

// RegisterRequest - payload for user registration
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=5"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

// LoginRequest - payload for obtaining a token pair
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdateRequest - payload for updating the authenticated user
type ProfileUpdateRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=255"`
	LastName  *string `json:"last_name" validate:"omitempty,max=255"`
	Password  *string `json:"password" validate:"omitempty,min=5"`
}

// RefreshRequest - payload for rotating a token pair
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// PasswordResetRequest - payload for requesting a reset email
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest - payload for confirming a reset
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}
