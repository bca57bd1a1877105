package db

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tnavInter19/twitter-backend/models"
)

func (m *MongoDB) FindBookmarks(ctx context.Context, userID models.UserID) (bookmarks models.Bookmarks, err error) {
	err = m.coll(bookmarkColl).FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&bookmarks)
	return bookmarks, mapErr(err)
}

func (m *MongoDB) SaveBookmarks(ctx context.Context, bookmarks models.Bookmarks) (models.Bookmarks, error) {
	if bookmarks.ID.IsZero() {
		bookmarks.ID = bson.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := m.coll(bookmarkColl).ReplaceOne(ctx, bson.D{{Key: "_id", Value: bookmarks.ID}}, bookmarks, opts)
	if err != nil {
		return models.Bookmarks{}, mapErr(err)
	}
	return bookmarks, nil
}

func (m *MongoDB) ListInterests(ctx context.Context) ([]models.Interest, error) {
	cursor, err := m.coll(interestColl).Find(ctx, bson.D{})
	if err != nil {
		return nil, mapErr(err)
	}

	interests := []models.Interest{}
	if err := cursor.All(ctx, &interests); err != nil {
		return nil, mapErr(err)
	}
	return interests, nil
}

func (m *MongoDB) FindInterestByName(ctx context.Context, name string) (interest models.Interest, err error) {
	err = m.coll(interestColl).FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&interest)
	return interest, mapErr(err)
}

func (m *MongoDB) SaveInterest(ctx context.Context, interest models.Interest) (models.Interest, error) {
	if interest.ID.IsZero() {
		interest.ID = bson.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := m.coll(interestColl).ReplaceOne(ctx, bson.D{{Key: "_id", Value: interest.ID}}, interest, opts)
	if err != nil {
		return models.Interest{}, mapErr(err)
	}
	return interest, nil
}

func (m *MongoDB) CountInterests(ctx context.Context) (int64, error) {
	count, err := m.coll(interestColl).CountDocuments(ctx, bson.D{})
	return count, mapErr(err)
}

func (m *MongoDB) InsertInterests(ctx context.Context, interests []models.Interest) error {
	docs := make([]interface{}, 0, len(interests))
	for _, interest := range interests {
		if interest.ID.IsZero() {
			interest.ID = bson.NewObjectID()
		}
		docs = append(docs, interest)
	}

	_, err := m.coll(interestColl).InsertMany(ctx, docs)
	return mapErr(err)
}

func (m *MongoDB) FindMutedWords(ctx context.Context, userID models.UserID) (words models.MutedWords, err error) {
	err = m.coll(mutedWordColl).FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&words)
	return words, mapErr(err)
}

func (m *MongoDB) SaveMutedWords(ctx context.Context, words models.MutedWords) (models.MutedWords, error) {
	if words.ID.IsZero() {
		words.ID = bson.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := m.coll(mutedWordColl).ReplaceOne(ctx, bson.D{{Key: "_id", Value: words.ID}}, words, opts)
	if err != nil {
		return models.MutedWords{}, mapErr(err)
	}
	return words, nil
}

func (m *MongoDB) FindBlockedAccounts(ctx context.Context, userID models.UserID) (accounts models.BlockedAccounts, err error) {
	err = m.coll(blockedColl).FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&accounts)
	return accounts, mapErr(err)
}

func (m *MongoDB) SaveBlockedAccounts(ctx context.Context, accounts models.BlockedAccounts) (models.BlockedAccounts, error) {
	if accounts.ID.IsZero() {
		accounts.ID = bson.NewObjectID()
	}

	opts := options.Replace().SetUpsert(true)
	_, err := m.coll(blockedColl).ReplaceOne(ctx, bson.D{{Key: "_id", Value: accounts.ID}}, accounts, opts)
	if err != nil {
		return models.BlockedAccounts{}, mapErr(err)
	}
	return accounts, nil
}

func (m *MongoDB) FindProfile(ctx context.Context, userID models.UserID) (profile models.Profile, err error) {
	err = m.coll(profileColl).FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&profile)
	return profile, mapErr(err)
}

func (m *MongoDB) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	filter := bson.D{{Key: "user_id", Value: profile.UserID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "bio", Value: profile.Bio},
			{Key: "location", Value: profile.Location},
			{Key: "website", Value: profile.Website},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: bson.NewObjectID()},
			{Key: "user_id", Value: profile.UserID},
		}},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var result models.Profile
	err := m.coll(profileColl).FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	return result, mapErr(err)
}

func (m *MongoDB) DeleteProfile(ctx context.Context, userID models.UserID) (int64, error) {
	result, err := m.coll(profileColl).DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}})
	if err != nil {
		return 0, mapErr(err)
	}
	return result.DeletedCount, nil
}
