package service

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/models"
)

// In-memory stand-ins for the database collections. They implement the
// db contracts closely enough for service-level tests without a Mongo
// instance.

type fakeUsers struct {
	mu    sync.Mutex
	users map[models.UserID]models.User
}

var _ db.Users = (*fakeUsers)(nil)

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[models.UserID]models.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, user db.CreateUser) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, db.ErrDuplicate
		}
	}

	created := models.User{
		ID:       bson.NewObjectID(),
		Name:     user.Name,
		Email:    user.Email,
		Username: user.Username,
		Password: user.PwdHash,
	}
	f.users[created.ID] = created
	return created, nil
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (f *fakeUsers) FindUserByID(_ context.Context, id models.UserID) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	return user, nil
}

func (f *fakeUsers) UpdateUsername(_ context.Context, id models.UserID, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == username && existing.ID != id {
			return models.User{}, db.ErrDuplicate
		}
	}

	user, ok := f.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	user.Username = username
	f.users[id] = user
	return user, nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

type fakeFollows struct {
	mu      sync.Mutex
	follows []models.Follow
}

var _ db.Follows = (*fakeFollows)(nil)

func newFakeFollows() *fakeFollows {
	return &fakeFollows{}
}

func (f *fakeFollows) CreateFollow(_ context.Context, followerID, followingID models.UserID) (models.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, follow := range f.follows {
		if follow.FollowerUserID == followerID && follow.FollowingUserID == followingID {
			return models.Follow{}, db.ErrDuplicate
		}
	}

	follow := models.Follow{
		ID:              bson.NewObjectID(),
		FollowerUserID:  followerID,
		FollowingUserID: followingID,
	}
	f.follows = append(f.follows, follow)
	return follow, nil
}

func (f *fakeFollows) FindFollow(_ context.Context, followerID, followingID models.UserID) (models.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, follow := range f.follows {
		if follow.FollowerUserID == followerID && follow.FollowingUserID == followingID {
			return follow, nil
		}
	}
	return models.Follow{}, db.ErrNotFound
}

func (f *fakeFollows) DeleteFollow(_ context.Context, followerID, followingID models.UserID) (models.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, follow := range f.follows {
		if follow.FollowerUserID == followerID && follow.FollowingUserID == followingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return follow, nil
		}
	}
	return models.Follow{}, db.ErrNotFound
}

func (f *fakeFollows) QueryFollowing(_ context.Context, followerID models.UserID, skip, limit int64) ([]models.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Follow{}
	for _, follow := range f.follows {
		if follow.FollowerUserID == followerID {
			matched = append(matched, follow)
		}
	}
	return page(matched, skip, limit), nil
}

func (f *fakeFollows) CountFollowing(_ context.Context, followerID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, follow := range f.follows {
		if follow.FollowerUserID == followerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollows) QueryFollowers(_ context.Context, followingID models.UserID, skip, limit int64) ([]models.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Follow{}
	for _, follow := range f.follows {
		if follow.FollowingUserID == followingID {
			matched = append(matched, follow)
		}
	}
	return page(matched, skip, limit), nil
}

func (f *fakeFollows) CountFollowers(_ context.Context, followingID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, follow := range f.follows {
		if follow.FollowingUserID == followingID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollows) DeleteFollowsByFollower(_ context.Context, followerID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.follows[:0]
	var deleted int64
	for _, follow := range f.follows {
		if follow.FollowerUserID == followerID {
			deleted++
			continue
		}
		kept = append(kept, follow)
	}
	f.follows = kept
	return deleted, nil
}

type fakeBookmarks struct {
	mu   sync.Mutex
	docs map[models.UserID]models.Bookmarks
}

var _ db.Bookmarks = (*fakeBookmarks)(nil)

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{docs: map[models.UserID]models.Bookmarks{}}
}

func (f *fakeBookmarks) FindBookmarks(_ context.Context, userID models.UserID) (models.Bookmarks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[userID]
	if !ok {
		return models.Bookmarks{}, db.ErrNotFound
	}
	return doc, nil
}

func (f *fakeBookmarks) SaveBookmarks(_ context.Context, bookmarks models.Bookmarks) (models.Bookmarks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if bookmarks.ID.IsZero() {
		bookmarks.ID = bson.NewObjectID()
	}
	f.docs[bookmarks.UserID] = bookmarks
	return bookmarks, nil
}

type fakePosts struct {
	mu    sync.Mutex
	posts []models.Post
	clock int64
}

var _ db.Posts = (*fakePosts)(nil)

func newFakePosts() *fakePosts {
	return &fakePosts{}
}

func (f *fakePosts) CreatePost(_ context.Context, post db.CreatePost) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.clock++
	created := models.Post{
		ID:             bson.NewObjectID(),
		CreatedAt:      f.clock,
		UpdatedAt:      f.clock,
		UserID:         post.UserID,
		Text:           post.Text,
		Type:           post.Type,
		OriginalPostID: post.OriginalPostID,
	}
	f.posts = append(f.posts, created)
	return created, nil
}

func (f *fakePosts) FindPostByID(_ context.Context, id bson.ObjectID) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return models.Post{}, db.ErrNotFound
}

func (f *fakePosts) FindOwnedPost(_ context.Context, id bson.ObjectID, userID models.UserID) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		if post.ID == id && post.UserID == userID {
			return post, nil
		}
	}
	return models.Post{}, db.ErrNotFound
}

func (f *fakePosts) FindAttachablePost(_ context.Context, id bson.ObjectID, userID models.UserID) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		if post.ID == id && post.UserID == userID &&
			post.Type != models.PostTypeRepost && post.AttachmentID == nil {
			return post, nil
		}
	}
	return models.Post{}, db.ErrNotFound
}

func (f *fakePosts) FindAttachedPost(_ context.Context, id bson.ObjectID) (models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		if post.ID == id && post.AttachmentID != nil {
			return post, nil
		}
	}
	return models.Post{}, db.ErrNotFound
}

func (f *fakePosts) SetPostAttachment(_ context.Context, id, attachmentID bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID == id {
			f.posts[i].AttachmentID = &attachmentID
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakePosts) DeletePost(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, post := range f.posts {
		if post.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakePosts) DeleteTextlessReposts(_ context.Context, originalPostID bson.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.posts[:0]
	var deleted int64
	for _, post := range f.posts {
		if post.Type == models.PostTypeRepost && post.Text == "" &&
			post.OriginalPostID != nil && *post.OriginalPostID == originalPostID {
			deleted++
			continue
		}
		kept = append(kept, post)
	}
	f.posts = kept
	return deleted, nil
}

func (f *fakePosts) DeletePostsByUser(_ context.Context, userID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.posts[:0]
	var deleted int64
	for _, post := range f.posts {
		if post.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, post)
	}
	f.posts = kept
	return deleted, nil
}

func (f *fakePosts) QueryPosts(_ context.Context, userID models.UserID, postType models.PostType, skip, limit int64) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Post{}
	for _, post := range f.posts {
		if post.UserID == userID && post.Type == postType {
			matched = append(matched, post)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt > matched[j].CreatedAt })
	return page(matched, skip, limit), nil
}

func (f *fakePosts) CountPosts(_ context.Context, userID models.UserID, postType models.PostType) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, post := range f.posts {
		if post.UserID == userID && post.Type == postType {
			count++
		}
	}
	return count, nil
}

func (f *fakePosts) QueryReplies(_ context.Context, originalPostID bson.ObjectID, skip, limit int64) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Post{}
	for _, post := range f.posts {
		if post.Type == models.PostTypeReply &&
			post.OriginalPostID != nil && *post.OriginalPostID == originalPostID {
			matched = append(matched, post)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt > matched[j].CreatedAt })
	return page(matched, skip, limit), nil
}

func (f *fakePosts) CountByOriginal(_ context.Context, originalPostID bson.ObjectID, postType models.PostType) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, post := range f.posts {
		if post.Type == postType &&
			post.OriginalPostID != nil && *post.OriginalPostID == originalPostID {
			count++
		}
	}
	return count, nil
}

type fakeReactions struct {
	mu        sync.Mutex
	reactions []models.Reaction
}

var _ db.Reactions = (*fakeReactions)(nil)

func newFakeReactions() *fakeReactions {
	return &fakeReactions{}
}

func (f *fakeReactions) UpsertReaction(_ context.Context, userID models.UserID, postID bson.ObjectID, reaction models.ReactionType) (models.Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.reactions {
		if existing.UserID == userID && existing.PostID == postID {
			return existing, nil
		}
	}

	created := models.Reaction{
		ID:     bson.NewObjectID(),
		UserID: userID,
		PostID: postID,
		Type:   reaction,
	}
	f.reactions = append(f.reactions, created)
	return created, nil
}

func (f *fakeReactions) DeleteReaction(_ context.Context, userID models.UserID, postID bson.ObjectID) (models.Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, reaction := range f.reactions {
		if reaction.UserID == userID && reaction.PostID == postID {
			f.reactions = append(f.reactions[:i], f.reactions[i+1:]...)
			return reaction, nil
		}
	}
	return models.Reaction{}, db.ErrNotFound
}

func (f *fakeReactions) QueryReactions(_ context.Context, userID models.UserID, skip, limit int64) ([]models.Reaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Reaction{}
	for _, reaction := range f.reactions {
		if reaction.UserID == userID {
			matched = append(matched, reaction)
		}
	}
	return page(matched, skip, limit), nil
}

func (f *fakeReactions) CountReactions(_ context.Context, userID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, reaction := range f.reactions {
		if reaction.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReactions) CountPostReactions(_ context.Context, postID bson.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, reaction := range f.reactions {
		if reaction.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReactions) DeleteReactionsByUser(_ context.Context, userID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.reactions[:0]
	var deleted int64
	for _, reaction := range f.reactions {
		if reaction.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, reaction)
	}
	f.reactions = kept
	return deleted, nil
}

type fakeAttachments struct {
	mu          sync.Mutex
	attachments []models.Attachment
}

var _ db.Attachments = (*fakeAttachments)(nil)

func newFakeAttachments() *fakeAttachments {
	return &fakeAttachments{}
}

func (f *fakeAttachments) CreateAttachment(_ context.Context, userID models.UserID, postID bson.ObjectID, mimeType string) (models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := models.Attachment{
		ID:       bson.NewObjectID(),
		UserID:   userID,
		PostID:   postID,
		MimeType: mimeType,
	}
	f.attachments = append(f.attachments, created)
	return created, nil
}

func (f *fakeAttachments) FindAttachmentByID(_ context.Context, id bson.ObjectID) (models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, attachment := range f.attachments {
		if attachment.ID == id {
			return attachment, nil
		}
	}
	return models.Attachment{}, db.ErrNotFound
}

func (f *fakeAttachments) FindAttachmentsByUser(_ context.Context, userID models.UserID) ([]models.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []models.Attachment{}
	for _, attachment := range f.attachments {
		if attachment.UserID == userID {
			matched = append(matched, attachment)
		}
	}
	return matched, nil
}

func (f *fakeAttachments) DeleteAttachment(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, attachment := range f.attachments {
		if attachment.ID == id {
			f.attachments = append(f.attachments[:i], f.attachments[i+1:]...)
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *fakeAttachments) DeleteAttachmentsByUser(_ context.Context, userID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.attachments[:0]
	var deleted int64
	for _, attachment := range f.attachments {
		if attachment.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, attachment)
	}
	f.attachments = kept
	return deleted, nil
}

type fakeInterests struct {
	mu        sync.Mutex
	interests []models.Interest
}

var _ db.Interests = (*fakeInterests)(nil)

func newFakeInterests() *fakeInterests {
	return &fakeInterests{}
}

func (f *fakeInterests) ListInterests(_ context.Context) ([]models.Interest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]models.Interest{}, f.interests...), nil
}

func (f *fakeInterests) FindInterestByName(_ context.Context, name string) (models.Interest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, interest := range f.interests {
		if interest.Name == name {
			return interest, nil
		}
	}
	return models.Interest{}, db.ErrNotFound
}

func (f *fakeInterests) SaveInterest(_ context.Context, interest models.Interest) (models.Interest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if interest.ID.IsZero() {
		interest.ID = bson.NewObjectID()
	}
	for i := range f.interests {
		if f.interests[i].ID == interest.ID {
			f.interests[i] = interest
			return interest, nil
		}
	}
	f.interests = append(f.interests, interest)
	return interest, nil
}

func (f *fakeInterests) CountInterests(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.interests)), nil
}

func (f *fakeInterests) InsertInterests(_ context.Context, interests []models.Interest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, interest := range interests {
		for _, existing := range f.interests {
			if existing.Name == interest.Name {
				return db.ErrDuplicate
			}
		}
		interest.ID = bson.NewObjectID()
		f.interests = append(f.interests, interest)
	}
	return nil
}

type fakeMutedWords struct {
	mu   sync.Mutex
	docs map[models.UserID]models.MutedWords
}

var _ db.MutedWords = (*fakeMutedWords)(nil)

func newFakeMutedWords() *fakeMutedWords {
	return &fakeMutedWords{docs: map[models.UserID]models.MutedWords{}}
}

func (f *fakeMutedWords) FindMutedWords(_ context.Context, userID models.UserID) (models.MutedWords, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[userID]
	if !ok {
		return models.MutedWords{}, db.ErrNotFound
	}
	return doc, nil
}

func (f *fakeMutedWords) SaveMutedWords(_ context.Context, words models.MutedWords) (models.MutedWords, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if words.ID.IsZero() {
		words.ID = bson.NewObjectID()
	}
	f.docs[words.UserID] = words
	return words, nil
}

type fakeBlockedAccounts struct {
	mu   sync.Mutex
	docs map[models.UserID]models.BlockedAccounts
}

var _ db.BlockedAccounts = (*fakeBlockedAccounts)(nil)

func newFakeBlockedAccounts() *fakeBlockedAccounts {
	return &fakeBlockedAccounts{docs: map[models.UserID]models.BlockedAccounts{}}
}

func (f *fakeBlockedAccounts) FindBlockedAccounts(_ context.Context, userID models.UserID) (models.BlockedAccounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[userID]
	if !ok {
		return models.BlockedAccounts{}, db.ErrNotFound
	}
	return doc, nil
}

func (f *fakeBlockedAccounts) SaveBlockedAccounts(_ context.Context, accounts models.BlockedAccounts) (models.BlockedAccounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if accounts.ID.IsZero() {
		accounts.ID = bson.NewObjectID()
	}
	f.docs[accounts.UserID] = accounts
	return accounts, nil
}

type fakeProfiles struct {
	mu   sync.Mutex
	docs map[models.UserID]models.Profile
}

var _ db.Profiles = (*fakeProfiles)(nil)

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{docs: map[models.UserID]models.Profile{}}
}

func (f *fakeProfiles) FindProfile(_ context.Context, userID models.UserID) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, ok := f.docs[userID]
	if !ok {
		return models.Profile{}, db.ErrNotFound
	}
	return doc, nil
}

func (f *fakeProfiles) UpsertProfile(_ context.Context, profile models.Profile) (models.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.docs[profile.UserID]; ok {
		profile.ID = existing.ID
	} else {
		profile.ID = bson.NewObjectID()
	}
	f.docs[profile.UserID] = profile
	return profile, nil
}

func (f *fakeProfiles) DeleteProfile(_ context.Context, userID models.UserID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.docs[userID]; !ok {
		return 0, nil
	}
	delete(f.docs, userID)
	return 1, nil
}

// fakeDatabase aggregates the collection fakes into a db.Database.
type fakeDatabase struct {
	*fakeUsers
	*fakePosts
	*fakeReactions
	*fakeAttachments
	*fakeFollows
	*fakeBookmarks
	*fakeInterests
	*fakeMutedWords
	*fakeBlockedAccounts
	*fakeProfiles
}

var _ db.Database = (*fakeDatabase)(nil)

func newFakeDatabase() *fakeDatabase {
	return &fakeDatabase{
		fakeUsers:           newFakeUsers(),
		fakePosts:           newFakePosts(),
		fakeReactions:       newFakeReactions(),
		fakeAttachments:     newFakeAttachments(),
		fakeFollows:         newFakeFollows(),
		fakeBookmarks:       newFakeBookmarks(),
		fakeInterests:       newFakeInterests(),
		fakeMutedWords:      newFakeMutedWords(),
		fakeBlockedAccounts: newFakeBlockedAccounts(),
		fakeProfiles:        newFakeProfiles(),
	}
}

// page applies skip/limit the way the Mongo queries do.
func page[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}
