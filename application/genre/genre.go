package genre

import (
	"context"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	genrerepo "github.com/emirhly/marketplace/repository/genre"
	"github.com/emirhly/marketplace/utils/errors"
	"github.com/emirhly/marketplace/utils/logger"
	"go.uber.org/zap"
)

type GenreApp interface {
	ListGenres(ctx context.Context) ([]model.GenreEntity, error)
}

type genreAppImpl struct {
	genreRepo genrerepo.GenreRepository
}

func NewGenreApp(genreRepo genrerepo.GenreRepository) GenreApp {
	return &genreAppImpl{genreRepo: genreRepo}
}

func (s *genreAppImpl) ListGenres(ctx context.Context) ([]model.GenreEntity, error) {
	genres, err := s.genreRepo.List(ctx)
	if err != nil {
		logger.Error("[ListGenres] err genreRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return genres, nil
}
