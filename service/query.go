package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/apierr"
	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/models"
)

const (
	defaultResultsPerPage = 10
	maxResultsPerPage     = 100
)

// Paging carries the raw pagination parameters of a query request.
type Paging struct {
	ResultsPerPage int64
	Page           int64
}

// normalize clamps the paging parameters to sane bounds.
func (p Paging) normalize() Paging {
	if p.ResultsPerPage <= 0 {
		p.ResultsPerPage = defaultResultsPerPage
	}
	if p.ResultsPerPage > maxResultsPerPage {
		p.ResultsPerPage = maxResultsPerPage
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

func (p Paging) skip() int64 {
	return p.ResultsPerPage * p.Page
}

// QueryService serves the read-side endpoints: timelines, replies,
// reactions and post stats.
type QueryService struct {
	posts     db.Posts
	reactions db.Reactions
}

func NewQueryService(posts db.Posts, reactions db.Reactions) *QueryService {
	return &QueryService{posts: posts, reactions: reactions}
}

func (s *QueryService) QueryPosts(ctx context.Context, userID models.UserID, postType models.PostType, paging Paging) (models.PostsPage, error) {
	if postType == "" {
		postType = models.PostTypePost
	}
	paging = paging.normalize()

	posts, err := s.posts.QueryPosts(ctx, userID, postType, paging.skip(), paging.ResultsPerPage)
	if err != nil {
		return models.PostsPage{}, err
	}

	total, err := s.posts.CountPosts(ctx, userID, postType)
	if err != nil {
		return models.PostsPage{}, err
	}

	return models.PostsPage{
		PageInfo: models.NewPageInfo(total, paging.ResultsPerPage, paging.Page, len(posts)),
		Posts:    posts,
	}, nil
}

func (s *QueryService) GetReplies(ctx context.Context, postID string, paging Paging) (models.PostsPage, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.PostsPage{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}
	paging = paging.normalize()

	posts, err := s.posts.QueryReplies(ctx, id, paging.skip(), paging.ResultsPerPage)
	if err != nil {
		return models.PostsPage{}, err
	}

	total, err := s.posts.CountByOriginal(ctx, id, models.PostTypeReply)
	if err != nil {
		return models.PostsPage{}, err
	}

	return models.PostsPage{
		PageInfo: models.NewPageInfo(total, paging.ResultsPerPage, paging.Page, len(posts)),
		Posts:    posts,
	}, nil
}

func (s *QueryService) GetReactions(ctx context.Context, userID models.UserID, paging Paging) (models.ReactionsPage, error) {
	paging = paging.normalize()

	reactions, err := s.reactions.QueryReactions(ctx, userID, paging.skip(), paging.ResultsPerPage)
	if err != nil {
		return models.ReactionsPage{}, err
	}

	total, err := s.reactions.CountReactions(ctx, userID)
	if err != nil {
		return models.ReactionsPage{}, err
	}

	return models.ReactionsPage{
		PageInfo:  models.NewPageInfo(total, paging.ResultsPerPage, paging.Page, len(reactions)),
		Reactions: reactions,
	}, nil
}

func (s *QueryService) GetPostStats(ctx context.Context, postID string) (models.PostStats, error) {
	id, err := bson.ObjectIDFromHex(postID)
	if err != nil {
		return models.PostStats{}, apierr.Newf(apierr.KindInvalidInput, "Invalid post id")
	}

	var stats models.PostStats

	stats.ReactionCount, err = s.reactions.CountPostReactions(ctx, id)
	if err != nil {
		return models.PostStats{}, err
	}

	stats.ReplyCount, err = s.posts.CountByOriginal(ctx, id, models.PostTypeReply)
	if err != nil {
		return models.PostStats{}, err
	}

	stats.RepostCount, err = s.posts.CountByOriginal(ctx, id, models.PostTypeRepost)
	if err != nil {
		return models.PostStats{}, err
	}

	return stats, nil
}
