// Package storage holds the media objects (profile photos and post
// attachments) behind an S3-compatible object store.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when the requested object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectStorage is the file-storage collaborator the media handlers
// consume.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ProfilePhotoKey returns the object key of a user's profile photo.
func ProfilePhotoKey(userID string) string {
	return "profile/" + userID + ".jpg"
}

// AttachmentKey returns the object key of a post attachment.
func AttachmentKey(attachmentID string) string {
	return "attachment/" + attachmentID + ".jpg"
}
