package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/storage"
)

// UserService covers account maintenance: username changes and full
// account deletion.
type UserService struct {
	db      db.Database
	storage storage.ObjectStorage
	auth    *AuthService
}

func NewUserService(database db.Database, store storage.ObjectStorage, auth *AuthService) *UserService {
	return &UserService{
		db:      database,
		storage: store,
		auth:    auth,
	}
}

func (s *UserService) SetUsername(ctx context.Context, userID models.UserID, form forms.SetUsernameForm) (models.User, error) {
	user, err := s.db.UpdateUsername(ctx, userID, form.Username)
	switch {
	case errors.Is(err, db.ErrNotFound):
		return models.User{}, apierr.BadRequest()
	case errors.Is(err, db.ErrDuplicate):
		return models.User{}, apierr.Newf(apierr.KindDuplicateKey, "Username already taken")
	case err != nil:
		slog.Error("failed to update username", "error", err, "user_id", userID.Hex())
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes the account and everything hanging off it:
// reactions, stored media, attachments, posts, profile and follows. The
// caller's session is revoked last so a partial failure never leaves a
// live token pointing at a half-deleted account.
func (s *UserService) DeleteUser(ctx context.Context, caller models.AuthenticatedUser) (models.DeleteUserResult, error) {
	var result models.DeleteUserResult
	var err error

	userID := caller.ID

	result.ReactionsDeleted, err = s.db.DeleteReactionsByUser(ctx, userID)
	if err != nil {
		return result, err
	}

	// Stored media may legitimately be absent.
	if err := s.storage.Delete(ctx, storage.ProfilePhotoKey(userID.Hex())); err != nil && !errors.Is(err, storage.ErrNotFound) {
		slog.Error("failed to delete profile photo", "error", err, "user_id", userID.Hex())
	}

	attachments, err := s.db.FindAttachmentsByUser(ctx, userID)
	if err != nil {
		return result, err
	}
	for _, attachment := range attachments {
		key := storage.AttachmentKey(attachment.ID.Hex())
		if err := s.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			slog.Error("failed to delete attachment object", "error", err, "attachment_id", attachment.ID.Hex())
		}
	}

	result.AttachmentsDeleted, err = s.db.DeleteAttachmentsByUser(ctx, userID)
	if err != nil {
		return result, err
	}

	result.PostsDeleted, err = s.db.DeletePostsByUser(ctx, userID)
	if err != nil {
		return result, err
	}

	result.ProfilesDeleted, err = s.db.DeleteProfile(ctx, userID)
	if err != nil {
		return result, err
	}

	result.FollowsDeleted, err = s.db.DeleteFollowsByFollower(ctx, userID)
	if err != nil {
		return result, err
	}

	result.UsersDeleted, err = s.db.DeleteUser(ctx, userID)
	if err != nil {
		return result, err
	}

	if err := s.auth.Logout(ctx, caller.JTI); err != nil {
		return result, err
	}

	return result, nil
}
