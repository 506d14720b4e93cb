package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/pagination"
)

// TweetReader defines read operations for tweets.
type TweetReader interface {
	GetByID(ctx context.Context, tweetID uuid.UUID) (*models.TweetDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, skip int) ([]models.TweetView, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// TweetWriter defines write operations for tweets.
type TweetWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, content string) (*models.TweetDB, error)
	Update(ctx context.Context, tweetID uuid.UUID, content string) (*models.TweetDB, error)
	Delete(ctx context.Context, tweetID uuid.UUID) error
}

// TweetService handles the short-post lifecycle.
type TweetService struct {
	reader TweetReader
	writer TweetWriter
}

// NewTweetService creates a new TweetService.
func NewTweetService(reader TweetReader, writer TweetWriter) *TweetService {
	return &TweetService{
		reader: reader,
		writer: writer,
	}
}

// ListByUser returns one page of a user's tweets, newest first.
func (svc *TweetService) ListByUser(ctx context.Context, userID string, p pagination.Params) ([]models.TweetView, pagination.Meta, error) {
	id, err := parseID(userID, "userId")
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	tweets, err := svc.reader.ListByUser(ctx, id, p.Limit, p.Skip())
	if err != nil {
		logger.Log.Errorw("failed to list tweets", "user_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	total, err := svc.reader.CountByUser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to count tweets", "user_id", id, "err", err)
		return nil, pagination.Meta{}, err
	}

	return tweets, pagination.MetaFor(p, total), nil
}

// Create makes a new tweet owned by the caller.
func (svc *TweetService) Create(ctx context.Context, principal uuid.UUID, content string) (*models.TweetDB, error) {
	if content == "" {
		return nil, validationError("content is required")
	}

	tweet, err := svc.writer.Save(ctx, principal, content)
	if err != nil {
		logger.Log.Errorw("failed to save tweet", "err", err)
		return nil, err
	}
	return tweet, nil
}

// Update replaces a tweet's content. Owner only.
func (svc *TweetService) Update(ctx context.Context, principal uuid.UUID, tweetID, content string) (*models.TweetDB, error) {
	id, err := parseID(tweetID, "tweetId")
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, validationError("content is required")
	}

	tweet, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get tweet", "tweet_id", id, "err", err)
		return nil, err
	}
	if tweet == nil {
		return nil, notFoundError("tweet")
	}
	if err := checkOwnership(tweet.OwnerID, principal, "update this tweet"); err != nil {
		return nil, err
	}

	updated, err := svc.writer.Update(ctx, id, content)
	if err != nil {
		logger.Log.Errorw("failed to update tweet", "tweet_id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, notFoundError("tweet")
	}
	return updated, nil
}

// Delete removes a tweet. Owner only.
func (svc *TweetService) Delete(ctx context.Context, principal uuid.UUID, tweetID string) error {
	id, err := parseID(tweetID, "tweetId")
	if err != nil {
		return err
	}

	tweet, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get tweet", "tweet_id", id, "err", err)
		return err
	}
	if tweet == nil {
		return notFoundError("tweet")
	}
	if err := checkOwnership(tweet.OwnerID, principal, "delete this tweet"); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete tweet", "tweet_id", id, "err", err)
		return err
	}
	return nil
}
