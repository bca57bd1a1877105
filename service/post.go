package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
	"github.com/tnavInter19/twitter-backend/storage"
)

const attachmentMimeType = "image/jpeg"

// PostService covers posts, reposts, replies, reactions and post
// attachments.
type PostService struct {
	posts       db.Posts
	reactions   db.Reactions
	attachments db.Attachments
	storage     storage.ObjectStorage
}

func NewPostService(posts db.Posts, reactions db.Reactions, attachments db.Attachments, store storage.ObjectStorage) *PostService {
	return &PostService{
		posts:       posts,
		reactions:   reactions,
		attachments: attachments,
		storage:     store,
	}
}

func (s *PostService) CreatePost(ctx context.Context, userID models.UserID, form forms.CreatePostForm) (models.Post, error) {
	create := db.CreatePost{
		UserID: userID,
		Text:   form.Text,
		Type:   models.PostType(form.Type),
	}

	switch create.Type {
	case models.PostTypePost:

	case models.PostTypeRepost, models.PostTypeReply:
		if form.OriginalPostID == "" {
			return models.Post{}, apierr.Newf(apierr.KindBadRequest, "Original post id is missing")
		}
		originalID, err := bson.ObjectIDFromHex(form.OriginalPostID)
		if err != nil {
			return models.Post{}, apierr.Newf(apierr.KindInvalidInput, "Invalid original post id")
		}
		create.OriginalPostID = &originalID

	default:
		return models.Post{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post type")
	}

	post, err := s.posts.CreatePost(ctx, create)
	if err != nil {
		slog.Error("failed to create post", "error", err, "user_id", userID.Hex())
		return models.Post{}, err
	}

	return post, nil
}

func (s *PostService) ReactToPost(ctx context.Context, userID models.UserID, postID string, form forms.ReactionForm) (models.Reaction, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Reaction{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	if _, err := s.posts.FindPostByID(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Reaction{}, apierr.Newf(apierr.KindNotFound, "Post not found")
		}
		return models.Reaction{}, err
	}

	reaction, err := s.reactions.UpsertReaction(ctx, userID, id, models.ReactionType(form.Type))
	if err != nil {
		slog.Error("failed to save reaction", "error", err, "post_id", postID)
		return models.Reaction{}, err
	}

	return reaction, nil
}

func (s *PostService) UnreactToPost(ctx context.Context, userID models.UserID, postID string) (models.Reaction, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Reaction{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	reaction, err := s.reactions.DeleteReaction(ctx, userID, id)
	if errors.Is(err, db.ErrNotFound) {
		return models.Reaction{}, apierr.Newf(apierr.KindNotFound, "Reaction not found")
	}
	if err != nil {
		return models.Reaction{}, err
	}

	return reaction, nil
}

// AttachPhoto stores a JPEG photo for an owned post or reply that does
// not yet carry one. The attachment record is rolled back if the upload
// or the post update fails.
func (s *PostService) AttachPhoto(ctx context.Context, userID models.UserID, postID string, photo io.Reader, size int64, mimeType string) (models.Attachment, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Attachment{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	post, err := s.posts.FindAttachablePost(ctx, id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Attachment{}, apierr.Newf(apierr.KindNotFound, "Post not found")
	}
	if err != nil {
		return models.Attachment{}, err
	}

	if mimeType != attachmentMimeType {
		return models.Attachment{}, apierr.New(apierr.KindInvalidMimeType)
	}

	attachment, err := s.attachments.CreateAttachment(ctx, userID, post.ID, mimeType)
	if err != nil {
		return models.Attachment{}, err
	}

	key := storage.AttachmentKey(attachment.ID.Hex())
	if err := s.storage.Upload(ctx, key, photo, size, mimeType); err != nil {
		slog.Error("failed to upload attachment", "error", err, "attachment_id", attachment.ID.Hex())
		s.rollbackAttachment(ctx, attachment.ID)
		return models.Attachment{}, apierr.New(apierr.KindInternal)
	}

	if err := s.posts.SetPostAttachment(ctx, post.ID, attachment.ID); err != nil {
		slog.Error("failed to link attachment", "error", err, "post_id", postID)
		s.rollbackAttachment(ctx, attachment.ID)
		return models.Attachment{}, apierr.New(apierr.KindInternal)
	}

	return attachment, nil
}

func (s *PostService) rollbackAttachment(ctx context.Context, attachmentID bson.ObjectID) {
	if err := s.attachments.DeleteAttachment(ctx, attachmentID); err != nil {
		slog.Error("failed to roll back attachment", "error", err, "attachment_id", attachmentID.Hex())
	}
}

// GetAttachment streams the photo attached to a post. The caller owns
// the returned reader.
func (s *PostService) GetAttachment(ctx context.Context, postID string) (models.Attachment, io.ReadCloser, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Attachment{}, nil, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	post, err := s.posts.FindAttachedPost(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return models.Attachment{}, nil, apierr.Newf(apierr.KindNotFound, "Post not found")
	}
	if err != nil {
		return models.Attachment{}, nil, err
	}

	attachment, err := s.attachments.FindAttachmentByID(ctx, *post.AttachmentID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Attachment{}, nil, apierr.Newf(apierr.KindNotFound, "Attachment not found")
	}
	if err != nil {
		return models.Attachment{}, nil, err
	}

	photo, err := s.storage.Download(ctx, storage.AttachmentKey(attachment.ID.Hex()))
	if errors.Is(err, storage.ErrNotFound) {
		return models.Attachment{}, nil, apierr.Newf(apierr.KindNotFound, "Attachment not found")
	}
	if err != nil {
		return models.Attachment{}, nil, err
	}

	return attachment, photo, nil
}

// DeletePost removes an owned post, the bare reposts pointing at it and
// its attachment, if any. Replies stay.
func (s *PostService) DeletePost(ctx context.Context, userID models.UserID, postID string) (models.Post, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.Post{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	post, err := s.posts.FindOwnedPost(ctx, id, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Post{}, apierr.Newf(apierr.KindNotFound, "Post not found")
	}
	if err != nil {
		return models.Post{}, err
	}

	if _, err := s.posts.DeleteTextlessReposts(ctx, post.ID); err != nil {
		return models.Post{}, err
	}

	if post.AttachmentID != nil {
		key := storage.AttachmentKey(post.AttachmentID.Hex())
		if err := s.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			slog.Error("failed to delete attachment object", "error", err, "post_id", postID)
		}
		if err := s.attachments.DeleteAttachment(ctx, *post.AttachmentID); err != nil {
			slog.Error("failed to delete attachment record", "error", err, "post_id", postID)
		}
	}

	if err := s.posts.DeletePost(ctx, post.ID); err != nil {
		return models.Post{}, err
	}

	return post, nil
}
