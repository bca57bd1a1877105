package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/forms"
	"github.com/tnavInter19/twitter-backend/models"
)

// BookmarkService manages the per-user bookmarks document with its
// named and archived categories.
type BookmarkService struct {
	bookmarks db.Bookmarks
	posts     db.Posts
}

func NewBookmarkService(bookmarks db.Bookmarks, posts db.Posts) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarks, posts: posts}
}

// loadOrInit fetches the user's bookmarks document, starting a fresh
// one if the user has never bookmarked anything.
func (s *BookmarkService) loadOrInit(ctx context.Context, userID models.UserID) (models.Bookmarks, error) {
	bookmarks, err := s.bookmarks.FindBookmarks(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.Bookmarks{
			UserID:     userID,
			Categories: []models.BookmarkCategory{},
			Archived:   []models.BookmarkCategory{},
		}, nil
	}
	return bookmarks, err
}

// AddToBookmarks stores the post under the named category, creating it
// on first use. Without a category name the post lands in the default
// category.
func (s *BookmarkService) AddToBookmarks(ctx context.Context, userID models.UserID, form forms.SetBookmarkForm) (models.Bookmarks, error) {
	postID, err := bson.ObjectIDFromHex(form.PostToBookmark.PostID)
	if err != nil {
		return models.Bookmarks{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	if _, err := s.posts.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Bookmarks{}, apierr.Newf(apierr.KindNotFound, "Post not found")
		}
		return models.Bookmarks{}, err
	}

	bookmarks, err := s.loadOrInit(ctx, userID)
	if err != nil {
		return models.Bookmarks{}, err
	}

	name := form.CategoryName
	if name == "" {
		name = models.DefaultBookmarkCategory
	}

	idx := bookmarks.Category(name)
	if idx == -1 {
		bookmarks.Categories = append(bookmarks.Categories, models.BookmarkCategory{
			Name:  name,
			Posts: []bson.ObjectID{postID},
		})
	} else {
		for _, id := range bookmarks.Categories[idx].Posts {
			if id == postID {
				return models.Bookmarks{}, apierr.Newf(apierr.KindBadRequest, "Post already bookmarked in this category")
			}
		}
		bookmarks.Categories[idx].Posts = append(bookmarks.Categories[idx].Posts, postID)
	}

	saved, err := s.bookmarks.SaveBookmarks(ctx, bookmarks)
	if err != nil {
		slog.Error("failed to save bookmarks", "error", err, "user_id", userID.Hex())
		return models.Bookmarks{}, err
	}

	return saved, nil
}

// GetBookmarks returns the user's bookmarks document. Users without
// bookmarks get an empty document, not an error.
func (s *BookmarkService) GetBookmarks(ctx context.Context, userID string) (models.Bookmarks, error) {
	id, err := models.ParseUserID(userID)
	if err != nil {
		return models.Bookmarks{}, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}

	return s.loadOrInit(ctx, id)
}

// SearchBookmarks returns the bookmarked posts whose text contains the
// query, case-insensitively, across all active categories.
func (s *BookmarkService) SearchBookmarks(ctx context.Context, userID, query string) ([]models.Post, error) {
	id, err := models.ParseUserID(userID)
	if err != nil {
		return nil, apierr.Newf(apierr.KindInvalidInput, "Invalid user id")
	}

	bookmarks, err := s.loadOrInit(ctx, id)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := []models.Post{}

	for _, category := range bookmarks.Categories {
		for _, postID := range category.Posts {
			post, err := s.posts.FindPostByID(ctx, postID)
			if err != nil {
				// Bookmarked post may have been deleted since.
				continue
			}
			if strings.Contains(strings.ToLower(post.Text), needle) {
				matched = append(matched, post)
			}
		}
	}

	return matched, nil
}

// DeleteBookmark removes a post from the named category.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, userID models.UserID, form forms.DeleteBookmarkForm) error {
	postID, err := bson.ObjectIDFromHex(form.PostToDelete.PostID)
	if err != nil {
		return apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	bookmarks, err := s.bookmarks.FindBookmarks(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return apierr.Newf(apierr.KindNotFound, "Cannot find post in your bookmarks")
	}
	if err != nil {
		return err
	}

	idx := bookmarks.Category(form.CategoryName)
	if idx == -1 {
		return apierr.Newf(apierr.KindNotFound, "Cannot find post in your bookmarks")
	}

	category := &bookmarks.Categories[idx]
	for i, id := range category.Posts {
		if id == postID {
			category.Posts = append(category.Posts[:i], category.Posts[i+1:]...)
			_, err := s.bookmarks.SaveBookmarks(ctx, bookmarks)
			return err
		}
	}

	return apierr.Newf(apierr.KindNotFound, "Cannot find post in your bookmarks")
}

// ArchiveCategory moves a category out of the active list, keeping its
// posts reachable through the archive.
func (s *BookmarkService) ArchiveCategory(ctx context.Context, userID models.UserID, categoryName string) error {
	bookmarks, err := s.bookmarks.FindBookmarks(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return apierr.Newf(apierr.KindNotFound, "Category not found")
	}
	if err != nil {
		return err
	}

	idx := bookmarks.Category(categoryName)
	if idx == -1 {
		return apierr.Newf(apierr.KindNotFound, "Category not found")
	}

	archived := bookmarks.Categories[idx]
	bookmarks.Categories = append(bookmarks.Categories[:idx], bookmarks.Categories[idx+1:]...)
	bookmarks.Archived = append(bookmarks.Archived, archived)

	_, err = s.bookmarks.SaveBookmarks(ctx, bookmarks)
	return err
}

// DeleteCategory removes a category, active or archived, together with
// the posts bookmarked in it.
func (s *BookmarkService) DeleteCategory(ctx context.Context, userID models.UserID, categoryName string) error {
	bookmarks, err := s.bookmarks.FindBookmarks(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		return apierr.Newf(apierr.KindNotFound, "Category not found")
	}
	if err != nil {
		return err
	}

	var removed models.BookmarkCategory

	if idx := bookmarks.Category(categoryName); idx != -1 {
		removed = bookmarks.Categories[idx]
		bookmarks.Categories = append(bookmarks.Categories[:idx], bookmarks.Categories[idx+1:]...)
	} else if idx := bookmarks.ArchivedCategory(categoryName); idx != -1 {
		removed = bookmarks.Archived[idx]
		bookmarks.Archived = append(bookmarks.Archived[:idx], bookmarks.Archived[idx+1:]...)
	} else {
		return apierr.Newf(apierr.KindNotFound, "Category not found")
	}

	for _, postID := range removed.Posts {
		if err := s.posts.DeletePost(ctx, postID); err != nil && !errors.Is(err, db.ErrNotFound) {
			slog.Error("failed to delete bookmarked post", "error", err, "post_id", postID.Hex())
		}
	}

	_, err = s.bookmarks.SaveBookmarks(ctx, bookmarks)
	return err
}
