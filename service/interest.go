package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
)

// InterestService manages the global interests catalogue and each
// user's membership in it.
type InterestService struct {
	interests db.Interests
	users     db.Users
}

func NewInterestService(interests db.Interests, users db.Users) *InterestService {
	return &InterestService{interests: interests, users: users}
}

// Seed populates the interests collection with the built-in list when
// it is empty. Called once at startup.
func (s *InterestService) Seed(ctx context.Context) error {
	count, err := s.interests.CountInterests(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := make([]models.Interest, 0, len(models.DefaultInterests))
	for _, name := range models.DefaultInterests {
		seed = append(seed, models.Interest{
			Name:  name,
			Posts: []bson.ObjectID{},
			Users: []string{},
		})
	}

	if err := s.interests.InsertInterests(ctx, seed); err != nil {
		// Another instance may have seeded concurrently.
		if errors.Is(err, db.ErrDuplicate) {
			return nil
		}
		return err
	}

	slog.Info("interests collection populated", "count", len(seed))
	return nil
}

func (s *InterestService) GetInterests(ctx context.Context) ([]models.Interest, error) {
	return s.interests.ListInterests(ctx)
}

// UserAndInterests pairs the user with the interests they now belong to.
type UserAndInterests struct {
	User      models.User       `json:"user"`
	Interests []models.Interest `json:"interests"`
}

// SetUserInterests joins the user to each named interest, creating
// interests that do not exist yet.
func (s *InterestService) SetUserInterests(ctx context.Context, userID models.UserID, form forms.SetInterestsForm) (UserAndInterests, error) {
	updated := make([]models.Interest, 0, len(form.Interests))

	for _, entry := range form.Interests {
		interest, err := s.interests.FindInterestByName(ctx, entry.InterestName)
		if errors.Is(err, db.ErrNotFound) {
			interest = models.Interest{
				Name:  entry.InterestName,
				Posts: []bson.ObjectID{},
				Users: []string{},
			}
		} else if err != nil {
			return UserAndInterests{}, err
		}

		if !slices.Contains(interest.Users, userID.Hex()) {
			interest.Users = append(interest.Users, userID.Hex())
			if interest, err = s.interests.SaveInterest(ctx, interest); err != nil {
				return UserAndInterests{}, err
			}
		}

		updated = append(updated, interest)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return UserAndInterests{}, err
	}

	return UserAndInterests{User: user, Interests: updated}, nil
}
