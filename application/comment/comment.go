package comment

import (
	"context"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	commentrepo "github.com/emirhly/marketplace/repository/comment"
	"github.com/emirhly/marketplace/utils/errors"
	"github.com/emirhly/marketplace/utils/logger"
	"go.uber.org/zap"
)

type CommentApp interface {
	ListComments(ctx context.Context, listingID uint64) ([]model.CommentWithAuthor, error)
	PostComment(ctx context.Context, req *model.CommentRequest) error
	UpdateComment(ctx context.Context, userID string, commentID uint64, content string) error
	DeleteComment(ctx context.Context, userID string, commentID uint64) error
}

type commentAppImpl struct {
	commentRepo commentrepo.CommentRepository
}

func NewCommentApp(commentRepo commentrepo.CommentRepository) CommentApp {
	return &commentAppImpl{commentRepo: commentRepo}
}

func (s *commentAppImpl) ListComments(ctx context.Context, listingID uint64) ([]model.CommentWithAuthor, error) {
	items, err := s.commentRepo.ListByListing(ctx, listingID)
	if err != nil {
		logger.Error("[ListComments] err commentRepo.ListByListing", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *commentAppImpl) PostComment(ctx context.Context, req *model.CommentRequest) error {
	entity := &model.CommentEntity{
		CommentContent:   req.CommentContent,
		CommentDate:      req.CommentDate,
		CommentOwnerID:   req.CommentOwnerID,
		CommentListingID: req.CommentListingID,
	}

	if err := s.commentRepo.Insert(ctx, entity); err != nil {
		logger.Error("[PostComment] err commentRepo.Insert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *commentAppImpl) UpdateComment(ctx context.Context, userID string, commentID uint64, content string) error {
	if err := s.checkOwner(ctx, userID, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		logger.Error("[UpdateComment] err commentRepo.UpdateContent", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *commentAppImpl) DeleteComment(ctx context.Context, userID string, commentID uint64) error {
	if err := s.checkOwner(ctx, userID, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		logger.Error("[DeleteComment] err commentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// checkOwner fetches the comment owner and compares it to the token subject.
func (s *commentAppImpl) checkOwner(ctx context.Context, userID string, commentID uint64) error {
	ownerID, err := s.commentRepo.GetOwnerID(ctx, commentID)
	if err != nil {
		logger.Error("[checkOwner] err commentRepo.GetOwnerID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if ownerID == "" {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if ownerID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}
