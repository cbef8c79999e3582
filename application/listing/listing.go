package listing

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	commentrepo "github.com/emirhly/marketplace/repository/comment"
	listingrepo "github.com/emirhly/marketplace/repository/listing"
	txrepo "github.com/emirhly/marketplace/repository/tx"
	"github.com/emirhly/marketplace/thirdparty/rabbitmq"
	"github.com/emirhly/marketplace/utils/errors"
	"github.com/emirhly/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ListingApp interface {
	ListListings(ctx context.Context) ([]model.ListingWithOwner, error)
	GetListing(ctx context.Context, listingID uint64) (*model.ListingDetail, error)
	CreateListing(ctx context.Context, ownerID string, req *model.ListingCreateRequest) (*model.ListingCreateResponse, error)
	UpdateListing(ctx context.Context, userID string, listingID uint64, req *model.ListingUpdateRequest) error
	DeleteListing(ctx context.Context, userID string, listingID uint64) error
	UploadImage(ctx context.Context, listingID uint64, filename string, file io.Reader) (*model.UploadImageResponse, error)
	SearchListings(ctx context.Context, keyword string) ([]model.ListingWithOwner, error)
	FilterListings(ctx context.Context, filter *model.ListingFilter) ([]model.ListingWithOwner, error)
	UserListingGenreView(ctx context.Context) ([]model.UserListingGenreRow, error)
	RemoveImageFiles(ctx context.Context, listingID uint64) error
}

type listingAppImpl struct {
	txRepo      txrepo.TxRepository
	listingRepo listingrepo.ListingRepository
	commentRepo commentrepo.CommentRepository
	publisher   *rabbitmq.Publisher
	imagesDir   string
}

func NewListingApp(txRepo txrepo.TxRepository, listingRepo listingrepo.ListingRepository, commentRepo commentrepo.CommentRepository, publisher *rabbitmq.Publisher, imagesDir string) ListingApp {
	return &listingAppImpl{
		txRepo:      txRepo,
		listingRepo: listingRepo,
		commentRepo: commentRepo,
		publisher:   publisher,
		imagesDir:   imagesDir,
	}
}

func (s *listingAppImpl) ListListings(ctx context.Context) ([]model.ListingWithOwner, error) {
	items, err := s.listingRepo.List(ctx)
	if err != nil {
		logger.Error("[ListListings] err listingRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *listingAppImpl) GetListing(ctx context.Context, listingID uint64) (*model.ListingDetail, error) {
	listing, err := s.listingRepo.GetWithOwner(ctx, listingID)
	if err != nil {
		logger.Error("[GetListing] err listingRepo.GetWithOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	genres, err := s.listingRepo.Genres(ctx, listingID)
	if err != nil {
		logger.Error("[GetListing] err listingRepo.Genres", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	comments, err := s.commentRepo.ListByListing(ctx, listingID)
	if err != nil {
		logger.Error("[GetListing] err commentRepo.ListByListing", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ListingDetail{
		ListingWithOwner: *listing,
		Genres:           genres,
		Comments:         comments,
	}, nil
}

// CreateListing inserts the listing and its genre links in one transaction.
// The owner is always the token subject supplied by the transport.
func (s *listingAppImpl) CreateListing(ctx context.Context, ownerID string, req *model.ListingCreateRequest) (*model.ListingCreateResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateListing] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity := &model.ListingEntity{
		ListingName:      req.ListingName,
		ListingPrice:     req.ListingPrice,
		ListingOwnerID:   ownerID,
		ListingCondition: req.ListingCondition,
		ListingDate:      req.ListingDate,
		ListingDesc:      req.ListingDesc,
		ListingImagePath: req.ListingImagePath,
	}

	listingID, err := s.listingRepo.InsertTx(ctx, tx, entity)
	if err != nil {
		logger.Error("[CreateListing] insert listing", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if len(req.Genres) > 0 {
		if err := s.listingRepo.InsertGenresTx(ctx, tx, listingID, req.Genres); err != nil {
			logger.Error("[CreateListing] insert genres", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateListing] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(rabbitmq.RoutingKeyListingCreated, rabbitmq.ListingEventMessage{
		ListingID: listingID,
		OwnerID:   ownerID,
	})

	return &model.ListingCreateResponse{
		Message:   "Listing created successfully",
		ListingID: listingID,
	}, nil
}

// UpdateListing replaces the mutable fields and the full genre link set.
func (s *listingAppImpl) UpdateListing(ctx context.Context, userID string, listingID uint64, req *model.ListingUpdateRequest) error {
	ownerID, err := s.listingRepo.GetOwnerID(ctx, listingID)
	if err != nil {
		logger.Error("[UpdateListing] err listingRepo.GetOwnerID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if ownerID == "" {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if ownerID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateListing] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.listingRepo.UpdateTx(ctx, tx, listingID, req); err != nil {
		logger.Error("[UpdateListing] update listing", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// Full genre replace: delete all links, re-insert the supplied set
	if err := s.listingRepo.DeleteGenresTx(ctx, tx, listingID); err != nil {
		logger.Error("[UpdateListing] delete genres", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.listingRepo.InsertGenresTx(ctx, tx, listingID, req.Genres); err != nil {
		logger.Error("[UpdateListing] insert genres", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateListing] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishEvent(rabbitmq.RoutingKeyListingUpdated, rabbitmq.ListingEventMessage{
		ListingID: listingID,
		OwnerID:   ownerID,
	})

	return nil
}

// DeleteListing cascades the genre links and comments before the listing row,
// all in one transaction.
func (s *listingAppImpl) DeleteListing(ctx context.Context, userID string, listingID uint64) error {
	listing, err := s.listingRepo.GetWithOwner(ctx, listingID)
	if err != nil {
		logger.Error("[DeleteListing] err listingRepo.GetWithOwner", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if listing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if listing.ListingOwnerID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteListing] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.listingRepo.DeleteGenresTx(ctx, tx, listingID); err != nil {
		logger.Error("[DeleteListing] delete genres", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.commentRepo.DeleteByListingTx(ctx, tx, listingID); err != nil {
		logger.Error("[DeleteListing] delete comments", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.listingRepo.DeleteTx(ctx, tx, listingID); err != nil {
		logger.Error("[DeleteListing] delete listing", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteListing] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	event := rabbitmq.ListingEventMessage{
		ListingID: listingID,
		OwnerID:   listing.ListingOwnerID,
	}
	if listing.ListingImagePath != nil {
		event.ImagePath = *listing.ListingImagePath
	}
	s.publishEvent(rabbitmq.RoutingKeyListingDeleted, event)

	return nil
}

// UploadImage stores a single image as {listing_id}.{ext}, replacing any
// previous image for that listing, and records the public URL.
func (s *listingAppImpl) UploadImage(ctx context.Context, listingID uint64, filename string, file io.Reader) (*model.UploadImageResponse, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !constant.AllowedImageExtensions[ext] {
		return nil, errors.SetCustomError(constant.ErrInvalidFileType)
	}

	ownerID, err := s.listingRepo.GetOwnerID(ctx, listingID)
	if err != nil {
		logger.Error("[UploadImage] err listingRepo.GetOwnerID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ownerID == "" {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Drop any previous image stored under another extension
	for other := range constant.AllowedImageExtensions {
		if other == ext {
			continue
		}
		_ = os.Remove(filepath.Join(s.imagesDir, fmt.Sprintf("%d.%s", listingID, other)))
	}

	if err := s.saveImage(listingID, ext, file); err != nil {
		logger.Error("[UploadImage] err saveImage", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	publicPath := fmt.Sprintf("/images/%d.%s", listingID, ext)
	if err := s.listingRepo.UpdateImagePath(ctx, listingID, publicPath); err != nil {
		logger.Error("[UploadImage] err listingRepo.UpdateImagePath", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UploadImageResponse{
		Message:   "Image uploaded.",
		ImagePath: publicPath,
	}, nil
}

func (s *listingAppImpl) SearchListings(ctx context.Context, keyword string) ([]model.ListingWithOwner, error) {
	items, err := s.listingRepo.Search(ctx, keyword)
	if err != nil {
		logger.Error("[SearchListings] err listingRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *listingAppImpl) FilterListings(ctx context.Context, filter *model.ListingFilter) ([]model.ListingWithOwner, error) {
	items, err := s.listingRepo.Filter(ctx, filter)
	if err != nil {
		logger.Error("[FilterListings] err listingRepo.Filter", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *listingAppImpl) UserListingGenreView(ctx context.Context) ([]model.UserListingGenreRow, error) {
	rows, err := s.listingRepo.ListView(ctx)
	if err != nil {
		logger.Error("[UserListingGenreView] err listingRepo.ListView", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

// RemoveImageFiles deletes every stored image variant for a listing. Called
// by the internal cleanup endpoint after a listing-deleted event.
func (s *listingAppImpl) RemoveImageFiles(_ context.Context, listingID uint64) error {
	matches, err := filepath.Glob(filepath.Join(s.imagesDir, fmt.Sprintf("%d.*", listingID)))
	if err != nil {
		logger.Error("[RemoveImageFiles] glob", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			logger.Error("[RemoveImageFiles] remove", zap.String("file", m), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *listingAppImpl) saveImage(listingID uint64, ext string, file io.Reader) error {
	if err := os.MkdirAll(s.imagesDir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(s.imagesDir, fmt.Sprintf("%d.%s", listingID, ext)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}

func (s *listingAppImpl) publishEvent(routingKey string, msg rabbitmq.ListingEventMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishListingEvent(routingKey, msg); err != nil {
		logger.Error("[publishEvent] publish listing event", zap.String("routing_key", routingKey), zap.String("error", err.Error()))
	}
}
