package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Grenders/transport-api/internal/domain"
	"github.com/Grenders/transport-api/internal/domain/repository"
	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
	"github.com/Grenders/transport-api/internal/usecase/dto"
)

// OrderUseCase creates and lists ticket orders. Every ticket is validated
// against the journey train's current capacity and against the seats already
// taken; persistence of the whole order is atomic.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	journeyRepo repository.JourneyRepository
	logger      *zap.Logger
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	journeyRepo repository.JourneyRepository,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		journeyRepo: journeyRepo,
		logger:      logger,
	}
}

func (uc *OrderUseCase) Create(ctx context.Context, userID int64, req dto.OrderCreateRequest) (*dto.OrderResponse, error) {
	// Capacity per journey comes from the train's current row, fetched once
	// per distinct journey in the payload.
	capacities := make(map[int64]domain.TrainCapacity)
	taken := make(map[int64][]domain.SeatRef)

	for _, payload := range req.Tickets {
		if _, ok := capacities[payload.Journey]; ok {
			continue
		}

		journey, err := uc.journeyRepo.GetByID(ctx, payload.Journey)
		if err != nil {
			if err == apperrors.ErrNotFound {
				return nil, apperrors.ErrValidation.WithField("journey", "journey does not exist")
			}
			return nil, err
		}
		capacities[payload.Journey] = journey.Train.Capacity()

		seats, err := uc.orderRepo.TakenSeats(ctx, payload.Journey)
		if err != nil {
			return nil, err
		}
		taken[payload.Journey] = seats
	}

	tickets := make([]*domain.Ticket, 0, len(req.Tickets))
	for _, payload := range req.Tickets {
		if err := domain.ValidateSeatAssignment(payload.Cargo, payload.Seat, capacities[payload.Journey]); err != nil {
			return nil, err
		}

		// The fast-path check also covers duplicates inside the payload
		// itself: each accepted ticket joins the taken set.
		if err := domain.AssertUniqueSeat(payload.Cargo, payload.Seat, taken[payload.Journey]); err != nil {
			return nil, err
		}
		taken[payload.Journey] = append(taken[payload.Journey],
			domain.SeatRef{Cargo: payload.Cargo, Seat: payload.Seat})

		tickets = append(tickets, &domain.Ticket{
			Cargo:     payload.Cargo,
			Seat:      payload.Seat,
			JourneyID: payload.Journey,
		})
	}

	order, err := uc.orderRepo.CreateWithTickets(ctx, &domain.Order{UserID: userID}, tickets)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.Int("tickets", len(tickets)))

	resp := dto.ConvertOrder(order)
	return &resp, nil
}

// List returns only the requesting user's orders, newest first.
func (uc *OrderUseCase) List(ctx context.Context, userID int64, page domain.Page) ([]dto.OrderResponse, int, error) {
	orders, total, err := uc.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.ConvertOrder(o))
	}
	return items, total, nil
}
