package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/models"
)

// FollowService manages the follower graph.
type FollowService struct {
	follows db.Follows
	users   db.Users
}

func NewFollowService(follows db.Follows, users db.Users) *FollowService {
	return &FollowService{follows: follows, users: users}
}

func (s *FollowService) FollowUser(ctx context.Context, followerID models.UserID, followingID string) (models.Follow, error) {
	targetID, err := models.ParseUserID(followingID)
	if err != nil {
		return models.Follow{}, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}

	if followerID == targetID {
		return models.Follow{}, apierr.Newf(apierr.KindBadRequest, "Cannot follow yourself")
	}

	follow, err := s.follows.CreateFollow(ctx, followerID, targetID)
	if errors.Is(err, db.ErrDuplicate) {
		return models.Follow{}, apierr.Newf(apierr.KindBadRequest, "Already following this user")
	}
	if err != nil {
		slog.Error("failed to create follow", "error", err, "follower", followerID.Hex())
		return models.Follow{}, err
	}

	return follow, nil
}

func (s *FollowService) UnfollowUser(ctx context.Context, followerID models.UserID, followingID string) (models.Follow, error) {
	targetID, err := models.ParseUserID(followingID)
	if err != nil {
		return models.Follow{}, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}

	follow, err := s.follows.DeleteFollow(ctx, followerID, targetID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Follow{}, apierr.Newf(apierr.KindBadRequest, "Not following this user")
	}
	if err != nil {
		return models.Follow{}, err
	}

	return follow, nil
}

func (s *FollowService) GetUserFollowing(ctx context.Context, userID string, paging Paging) (models.FollowsPage, error) {
	id, err := models.ParseUserID(userID)
	if err != nil {
		return models.FollowsPage{}, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}
	paging = paging.normalize()

	follows, err := s.follows.QueryFollowing(ctx, id, paging.skip(), paging.ResultsPerPage)
	if err != nil {
		return models.FollowsPage{}, err
	}

	total, err := s.follows.CountFollowing(ctx, id)
	if err != nil {
		return models.FollowsPage{}, err
	}

	s.resolveUsers(ctx, follows, func(f models.Follow) models.UserID { return f.FollowingUserID })

	return models.FollowsPage{
		PageInfo: models.NewPageInfo(total, paging.ResultsPerPage, paging.Page, len(follows)),
		Follows:  follows,
	}, nil
}

func (s *FollowService) GetUserFollowers(ctx context.Context, userID string, paging Paging) (models.FollowsPage, error) {
	id, err := models.ParseUserID(userID)
	if err != nil {
		return models.FollowsPage{}, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}
	paging = paging.normalize()

	follows, err := s.follows.QueryFollowers(ctx, id, paging.skip(), paging.ResultsPerPage)
	if err != nil {
		return models.FollowsPage{}, err
	}

	total, err := s.follows.CountFollowers(ctx, id)
	if err != nil {
		return models.FollowsPage{}, err
	}

	s.resolveUsers(ctx, follows, func(f models.Follow) models.UserID { return f.FollowerUserID })

	return models.FollowsPage{
		PageInfo: models.NewPageInfo(total, paging.ResultsPerPage, paging.Page, len(follows)),
		Follows:  follows,
	}, nil
}

// resolveUsers fills in the counterpart user of each follow. A missing
// user leaves the field empty rather than failing the page.
func (s *FollowService) resolveUsers(ctx context.Context, follows []models.Follow, pick func(models.Follow) models.UserID) {
	for i := range follows {
		user, err := s.users.FindUserByID(ctx, pick(follows[i]))
		if err != nil {
			slog.Warn("failed to resolve follow user", "error", err, "follow_id", follows[i].ID.Hex())
			continue
		}
		follows[i].User = &user
	}
}
