package comment_test

import (
	"context"
	"errors"
	"testing"

	appcomment "github.com/emirhly/marketplace/application/comment"
	"github.com/emirhly/marketplace/constant"
	commentmocks "github.com/emirhly/marketplace/mocks/repository/comment"
	"github.com/emirhly/marketplace/model"
	cerr "github.com/emirhly/marketplace/utils/errors"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestCommentApp_PostComment(t *testing.T) {
	t.Run("success: comment inserted with supplied fields", func(t *testing.T) {
		commentRepo := commentmocks.NewCommentRepository(t)
		app := appcomment.NewCommentApp(commentRepo)

		commentRepo.
			On("Insert", mock.Anything, &model.CommentEntity{
				CommentContent:   "Is this still available?",
				CommentDate:      "2026-08-29",
				CommentOwnerID:   "mehmet01",
				CommentListingID: 7,
			}).
			Return(nil).
			Once()

		err := app.PostComment(context.Background(), &model.CommentRequest{
			CommentContent:   "Is this still available?",
			CommentDate:      "2026-08-29",
			CommentOwnerID:   "mehmet01",
			CommentListingID: 7,
		})
		if err != nil {
			t.Fatalf("PostComment() error = %v", err)
		}
	})

	t.Run("error: insert failure surfaces as internal", func(t *testing.T) {
		commentRepo := commentmocks.NewCommentRepository(t)
		app := appcomment.NewCommentApp(commentRepo)

		commentRepo.
			On("Insert", mock.Anything, mock.AnythingOfType("*model.CommentEntity")).
			Return(errors.New("db error")).
			Once()

		err := app.PostComment(context.Background(), &model.CommentRequest{
			CommentContent:   "x",
			CommentDate:      "2026-08-29",
			CommentOwnerID:   "mehmet01",
			CommentListingID: 7,
		})
		assertErrCode(t, err, constant.ErrInternal)
	})
}

func TestCommentApp_UpdateComment(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		mockCall func(m *commentmocks.CommentRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: owner updates content",
			userID: "mehmet01",
			mockCall: func(m *commentmocks.CommentRepository) {
				m.On("GetOwnerID", mock.Anything, uint64(3)).Return("mehmet01", nil).Once()
				m.On("UpdateContent", mock.Anything, uint64(3), "Updated text").Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:   "error: unknown comment",
			userID: "mehmet01",
			mockCall: func(m *commentmocks.CommentRepository) {
				m.On("GetOwnerID", mock.Anything, uint64(3)).Return("", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: caller does not own the comment",
			userID: "ayse42",
			mockCall: func(m *commentmocks.CommentRepository) {
				m.On("GetOwnerID", mock.Anything, uint64(3)).Return("mehmet01", nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			commentRepo := commentmocks.NewCommentRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(commentRepo)
			}
			app := appcomment.NewCommentApp(commentRepo)

			err := app.UpdateComment(context.Background(), tt.userID, 3, "Updated text")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestCommentApp_DeleteComment(t *testing.T) {
	t.Run("success: owner deletes the comment", func(t *testing.T) {
		commentRepo := commentmocks.NewCommentRepository(t)
		app := appcomment.NewCommentApp(commentRepo)

		commentRepo.On("GetOwnerID", mock.Anything, uint64(3)).Return("mehmet01", nil).Once()
		commentRepo.On("Delete", mock.Anything, uint64(3)).Return(nil).Once()

		if err := app.DeleteComment(context.Background(), "mehmet01", 3); err != nil {
			t.Fatalf("DeleteComment() error = %v", err)
		}
	})

	t.Run("error: caller does not own the comment", func(t *testing.T) {
		commentRepo := commentmocks.NewCommentRepository(t)
		app := appcomment.NewCommentApp(commentRepo)

		commentRepo.On("GetOwnerID", mock.Anything, uint64(3)).Return("mehmet01", nil).Once()

		err := app.DeleteComment(context.Background(), "ayse42", 3)
		assertErrCode(t, err, constant.ErrForbidden)
	})
}
