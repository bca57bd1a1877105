package service

import (
	"context"
	"errors"
	"slices"

	"github.com/tnavInter19/twitter-backend/db"
	"github.com/tnavInter19/twitter-backend/models"
)

// MutedWordsService manages the per-user muted word set.
type MutedWordsService struct {
	words db.MutedWords
}

func NewMutedWordsService(words db.MutedWords) *MutedWordsService {
	return &MutedWordsService{words: words}
}

// MuteWord adds a word to the user's muted set. Muting a word twice is
// a no-op.
func (s *MutedWordsService) MuteWord(ctx context.Context, userID models.UserID, word string) (models.MutedWords, error) {
	doc, err := s.words.FindMutedWords(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		doc = models.MutedWords{UserID: userID, Words: []string{}}
	} else if err != nil {
		return models.MutedWords{}, err
	}

	if slices.Contains(doc.Words, word) {
		return doc, nil
	}

	doc.Words = append(doc.Words, word)
	return s.words.SaveMutedWords(ctx, doc)
}

// BlockAccountService manages the per-user blocked account set.
type BlockAccountService struct {
	accounts db.BlockedAccounts
}

func NewBlockAccountService(accounts db.BlockedAccounts) *BlockAccountService {
	return &BlockAccountService{accounts: accounts}
}

// BlockAccount adds an account id to the user's blocked set. Blocking
// twice is a no-op.
func (s *BlockAccountService) BlockAccount(ctx context.Context, userID models.UserID, accountID string) (models.BlockedAccounts, error) {
	doc, err := s.accounts.FindBlockedAccounts(ctx, userID)
	if errors.Is(err, db.ErrNotFound) {
		doc = models.BlockedAccounts{UserID: userID, Accounts: []string{}}
	} else if err != nil {
		return models.BlockedAccounts{}, err
	}

	if slices.Contains(doc.Accounts, accountID) {
		return doc, nil
	}

	doc.Accounts = append(doc.Accounts, accountID)
	return s.accounts.SaveBlockedAccounts(ctx, doc)
}
