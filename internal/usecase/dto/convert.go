package dto

import "github.com/Grenders/transport-api/internal/domain"

func ConvertStation(s *domain.Station) StationResponse {
	return StationResponse{
		ID:        s.ID,
		Name:      s.Name,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

func ConvertTrainType(t *domain.TrainType) TrainTypeResponse {
	return TrainTypeResponse{ID: t.ID, Name: t.Name}
}

func ConvertTrain(t *domain.Train) TrainResponse {
	return TrainResponse{
		ID:            t.ID,
		Name:          t.Name,
		CargoNum:      t.CargoNum,
		PlacesInCargo: t.PlacesInCargo,
		TrainType:     t.TrainTypeID,
	}
}

func ConvertTrainDetail(t *domain.Train) TrainDetailResponse {
	resp := TrainDetailResponse{
		ID:            t.ID,
		Name:          t.Name,
		CargoNum:      t.CargoNum,
		PlacesInCargo: t.PlacesInCargo,
	}
	if t.TrainType != nil {
		resp.TrainType = ConvertTrainType(t.TrainType)
	} else {
		resp.TrainType = TrainTypeResponse{ID: t.TrainTypeID}
	}
	return resp
}

func ConvertRoute(r *domain.Route) RouteResponse {
	return RouteResponse{
		ID:          r.ID,
		Source:      r.SourceID,
		Destination: r.DestinationID,
		Distance:    r.Distance,
	}
}

func ConvertRouteDetail(r *domain.Route) RouteDetailResponse {
	resp := RouteDetailResponse{
		ID:       r.ID,
		Distance: r.Distance,
	}
	if r.Source != nil {
		resp.Source = ConvertStation(r.Source)
	}
	if r.Destination != nil {
		resp.Destination = ConvertStation(r.Destination)
	}
	return resp
}

func ConvertCrew(c *domain.Crew) CrewResponse {
	return CrewResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
}

func ConvertCrewList(crew []*domain.Crew) []CrewResponse {
	out := make([]CrewResponse, 0, len(crew))
	for _, c := range crew {
		out = append(out, ConvertCrew(c))
	}
	return out
}

func ConvertJourney(j *domain.Journey) JourneyResponse {
	crewIDs := j.CrewIDs
	if crewIDs == nil {
		crewIDs = []int64{}
	}
	return JourneyResponse{
		ID:            j.ID,
		Route:         j.RouteID,
		Train:         j.TrainID,
		DepartureTime: j.DepartureTime,
		ArrivalTime:   j.ArrivalTime,
		Crew:          crewIDs,
	}
}

func ConvertJourneyList(j *domain.Journey) JourneyListResponse {
	resp := JourneyListResponse{
		ID:            j.ID,
		DepartureTime: j.DepartureTime,
		ArrivalTime:   j.ArrivalTime,
		Crew:          ConvertCrewList(j.Crew),
	}
	if j.Route != nil {
		resp.Route = ConvertRoute(j.Route)
	} else {
		resp.Route = RouteResponse{ID: j.RouteID}
	}
	if j.Train != nil {
		resp.Train = ConvertTrain(j.Train)
	} else {
		resp.Train = TrainResponse{ID: j.TrainID}
	}
	return resp
}

func ConvertJourneyDetail(j *domain.Journey) JourneyDetailResponse {
	resp := JourneyDetailResponse{
		ID:            j.ID,
		DepartureTime: j.DepartureTime,
		ArrivalTime:   j.ArrivalTime,
		Crew:          ConvertCrewList(j.Crew),
	}
	if j.Route != nil {
		resp.Route = ConvertRouteDetail(j.Route)
	}
	if j.Train != nil {
		resp.Train = ConvertTrainDetail(j.Train)
	}
	return resp
}

func ConvertTicket(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:      t.ID,
		Cargo:   t.Cargo,
		Seat:    t.Seat,
		Journey: t.JourneyID,
	}
}

func ConvertOrder(o *domain.Order) OrderResponse {
	tickets := make([]TicketResponse, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, ConvertTicket(t))
	}
	return OrderResponse{
		ID:        o.ID,
		Tickets:   tickets,
		CreatedAt: o.CreatedAt,
		User:      o.UserID,
	}
}

func ConvertUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
}
