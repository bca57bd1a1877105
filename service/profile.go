package service

import (
	"context"
	"errors"
	"io"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/storage"
)

// ProfileService manages user profiles and their photos.
type ProfileService struct {
	profiles db.Profiles
	storage  storage.ObjectStorage
}

func NewProfileService(profiles db.Profiles, store storage.ObjectStorage) *ProfileService {
	return &ProfileService{profiles: profiles, storage: store}
}

func (s *ProfileService) Get(ctx context.Context, userID models.UserID) (models.Profile, error) {
	profile, err := s.profiles.FindProfile(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Profile{}, apierr.Newf(apierr.KindNotFound, "Profile not found")
	}
	return profile, err
}

func (s *ProfileService) Set(ctx context.Context, userID models.UserID, form forms.ProfileForm) (models.Profile, error) {
	return s.profiles.UpsertProfile(ctx, models.Profile{
		UserID:   userID,
		Bio:      form.Bio,
		Location: form.Location,
		Website:  form.Website,
	})
}

// SetPhoto stores the user's profile photo, replacing any previous one.
func (s *ProfileService) SetPhoto(ctx context.Context, userID models.UserID, photo io.Reader, size int64, mimeType string) error {
	if mimeType != attachmentMimeType {
		return apierr.New(apierr.KindInvalidMimeType)
	}

	return s.storage.Upload(ctx, storage.ProfilePhotoKey(userID.Hex()), photo, size, mimeType)
}

// GetPhoto streams the user's profile photo. The caller owns the
// returned reader.
func (s *ProfileService) GetPhoto(ctx context.Context, userID models.UserID) (io.ReadCloser, error) {
	photo, err := s.storage.Download(ctx, storage.ProfilePhotoKey(userID.Hex()))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apierr.Newf(apierr.KindNotFound, "Photo not found")
	}
	return photo, err
}

func (s *ProfileService) DeletePhoto(ctx context.Context, userID models.UserID) error {
	err := s.storage.Delete(ctx, storage.ProfilePhotoKey(userID.Hex()))
	if errors.Is(err, storage.ErrNotFound) {
		return apierr.Newf(apierr.KindNotFound, "Photo not found")
	}
	return err
}
