package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Food2Plate-Backend/domain"
	"Food2Plate-Backend/entities"
	"Food2Plate-Backend/internal/utils/mailing"
	"Food2Plate-Backend/pkg/foodpost"
	"Food2Plate-Backend/pkg/reward"
	"Food2Plate-Backend/pkg/user"

	"github.com/google/uuid"
)

type (
	ReservationService interface {
		ReserveFood(ctx context.Context, userID string, req domain.ReserveFoodRequest) (*domain.Reservation, error)
		GetMyReservations(ctx context.Context, userID string) ([]*domain.Reservation, error)
		CompleteReservation(ctx context.Context, userID string, reservationID string) (*domain.Reservation, error)
	}

	reservationService struct {
		reservationRepository ReservationRepository
		foodPostRepository    foodpost.FoodPostRepository
		userRepository        user.UserRepository
		rewardService         reward.RewardService
	}
)

func NewReservationService(
	reservationRepository ReservationRepository,
	foodPostRepository foodpost.FoodPostRepository,
	userRepository user.UserRepository,
	rewardService reward.RewardService,
) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		foodPostRepository:    foodPostRepository,
		userRepository:        userRepository,
		rewardService:         rewardService,
	}
}

func ReservationToDomain(reservation *entities.Reservation) *domain.Reservation {
	response := &domain.Reservation{
		ID:         reservation.ID.String(),
		FoodPostID: reservation.FoodPostID.String(),
		ReceiverID: reservation.ReceiverID.String(),
		Status:     reservation.Status,
		Notes:      reservation.Notes,
		PickupTime: reservation.PickupTime,
		CreatedAt:  reservation.CreatedAt,
	}
	if reservation.FoodPost != nil {
		response.FoodPost = foodpost.PostToDomain(reservation.FoodPost)
	}
	return response
}

func (s *reservationService) ReserveFood(ctx context.Context, userID string, req domain.ReserveFoodRequest) (*domain.Reservation, error) {
	postID, err := uuid.Parse(req.FoodPostID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	receiver, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	post, err := s.foodPostRepository.GetFoodPostByID(ctx, req.FoodPostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrFoodPostNotFound
		}
		return nil, err
	}
	if post.Status != domain.FoodStatusAvailable || !post.AvailableUntil.After(time.Now()) {
		return nil, domain.ErrFoodNotAvailable
	}

	var pickupTime *time.Time
	if req.PickupTime != nil && *req.PickupTime != "" {
		parsed, err := time.Parse(time.RFC3339, *req.PickupTime)
		if err != nil {
			return nil, domain.ErrInvalidPickupTime
		}
		pickupTime = &parsed
	}

	notes := ""
	if req.Analysis != nil {
		notes = req.Analysis.NotesSummary()
	}

	reservation := &entities.Reservation{
		FoodPostID: postID,
		ReceiverID: receiver.ID,
		Status:     domain.ReservationStatusPending,
		Notes:      notes,
		PickupTime: pickupTime,
	}
	if err := s.reservationRepository.ReserveFoodPost(ctx, reservation); err != nil {
		return nil, err
	}

	go s.notifyDonor(post, receiver)

	reservation.FoodPost = post
	return ReservationToDomain(reservation), nil
}

// notifyDonor mails the donor about the new reservation. Delivery is
// best effort and never affects the reservation outcome.
func (s *reservationService) notifyDonor(post *entities.FoodPost, receiver *entities.Profile) {
	donor, err := s.userRepository.GetProfileByID(context.Background(), post.DonorID.String())
	if err != nil || donor.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s has reserved your food post \"%s\". Please coordinate the pickup.</p>",
		donor.FullName, receiver.FullName, post.FoodType,
	)
	if err := mailing.SendMail(donor.Email, "Your food has been reserved", body); err != nil {
		log.Println("failed to send reservation mail:", err)
	}
}

func (s *reservationService) GetMyReservations(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	receiver, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	reservations, err := s.reservationRepository.GetReservationsByReceiver(ctx, receiver.ID.String())
	if err != nil {
		return nil, err
	}

	donorIDs := make([]string, 0, len(reservations))
	seen := make(map[string]bool)
	for _, reservation := range reservations {
		if reservation.FoodPost == nil {
			continue
		}
		id := reservation.FoodPost.DonorID.String()
		if !seen[id] {
			seen[id] = true
			donorIDs = append(donorIDs, id)
		}
	}

	donors, err := s.userRepository.GetProfilesByIDs(ctx, donorIDs)
	if err != nil {
		return nil, err
	}
	donorsByID := make(map[string]*entities.Profile, len(donors))
	for _, donor := range donors {
		donorsByID[donor.ID.String()] = donor
	}

	responses := make([]*domain.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		response := ReservationToDomain(reservation)
		if reservation.FoodPost != nil {
			if donor, ok := donorsByID[reservation.FoodPost.DonorID.String()]; ok {
				response.FoodPost.Donor = user.ProfileToPublic(donor)
			}
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// CompleteReservation marks the pickup done and accrues rewards for both
// sides: donation points for the donor, reservation points for the
// receiver. Either party may complete; accrual always keys off the
// reservation's own parties, not the caller.
func (s *reservationService) CompleteReservation(ctx context.Context, userID string, reservationID string) (*domain.Reservation, error) {
	if _, err := uuid.Parse(reservationID); err != nil {
		return nil, domain.ErrParseUUID
	}

	caller, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	reservation, err := s.reservationRepository.GetReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	isReceiver := reservation.ReceiverID == caller.ID
	isDonor := reservation.FoodPost != nil && reservation.FoodPost.DonorID == caller.ID
	if !isReceiver && !isDonor {
		return nil, domain.ErrUnauthorizedReservationAccess
	}
	if reservation.Status == domain.ReservationStatusCompleted {
		return nil, domain.ErrReservationAlreadyCompleted
	}

	if err := s.reservationRepository.CompleteReservation(ctx, reservation); err != nil {
		return nil, err
	}
	reservation.Status = domain.ReservationStatusCompleted
	if reservation.FoodPost != nil {
		reservation.FoodPost.Status = domain.FoodStatusCompleted
	}

	if reservation.FoodPost != nil {
		if err := s.rewardService.AccrueDonationCompleted(ctx, reservation.FoodPost.DonorID.String()); err != nil {
			log.Println("failed to accrue donor reward:", err)
		}
	}
	if err := s.rewardService.AccrueReservationCompleted(ctx, reservation.ReceiverID.String()); err != nil {
		log.Println("failed to accrue receiver reward:", err)
	}

	return ReservationToDomain(reservation), nil
}
