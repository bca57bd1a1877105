package models

// PageInfo carries the pagination bookkeeping shared by every paginated
// response.
type PageInfo struct {
	RemainingCount int64 `json:"remainingCount"`
	RemainingPages int64 `json:"remainingPages"`
	Count          int   `json:"count"`
}

// NewPageInfo computes the remaining-item bookkeeping for a page of
// `count` results out of `total`, with `page` pages of `perPage` items
// already consumed (page is zero-based).
func NewPageInfo(total int64, perPage, page int64, count int) PageInfo {
	remaining := total - (page+1)*perPage
	if remaining < 0 {
		remaining = 0
	}

	remainingPages := remaining / perPage
	if remaining%perPage != 0 {
		remainingPages++
	}

	return PageInfo{
		RemainingCount: remaining,
		RemainingPages: remainingPages,
		Count:          count,
	}
}

type PostsPage struct {
	PageInfo
	Posts []Post `json:"posts"`
}

type ReactionsPage struct {
	PageInfo
	Reactions []Reaction `json:"reactions"`
}

type FollowsPage struct {
	PageInfo
	Follows []Follow `json:"follows"`
}

type PostStats struct {
	ReactionCount int64 `json:"reactionCount"`
	ReplyCount    int64 `json:"replyCount"`
	RepostCount   int64 `json:"repostCount"`
}
