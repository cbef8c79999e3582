package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	commentapp "github.com/emirhly/marketplace/application/comment"
	genreapp "github.com/emirhly/marketplace/application/genre"
	listingapp "github.com/emirhly/marketplace/application/listing"
	userapp "github.com/emirhly/marketplace/application/user"
	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	utilsContext "github.com/emirhly/marketplace/utils/context"
	"github.com/emirhly/marketplace/utils/errors"
	validatorx "github.com/emirhly/marketplace/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxUploadSize = 10 << 20 // 10 MiB multipart memory cap

type RestHandler struct {
	UserApp    userapp.UserApp
	ListingApp listingapp.ListingApp
	CommentApp commentapp.CommentApp
	GenreApp   genreapp.GenreApp
}

func NewTransport(UserApp userapp.UserApp, ListingApp listingapp.ListingApp, CommentApp commentapp.CommentApp, GenreApp genreapp.GenreApp, internalAPIKey, imagesDir string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		ListingApp: ListingApp,
		CommentApp: CommentApp,
		GenreApp:   GenreApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Uploaded listing images
	mux.PathPrefix("/images/").Handler(http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	// Auth
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/me", rh.Me).Methods(http.MethodGet)

	// Users
	mux.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/users/update/{user_id}", rh.UpdateUser).Methods(http.MethodPut)
	mux.HandleFunc("/users/{user_id}", rh.GetUser).Methods(http.MethodGet)

	// Listings
	mux.HandleFunc("/listings", rh.ListListings).Methods(http.MethodGet)
	mux.HandleFunc("/listings/create", rh.CreateListing).Methods(http.MethodPost)
	mux.HandleFunc("/listings/delete/{listing_id:[0-9]+}", rh.DeleteListing).Methods(http.MethodDelete)
	mux.HandleFunc("/listings/{listing_id:[0-9]+}", rh.GetListing).Methods(http.MethodGet)
	mux.HandleFunc("/listings/{listing_id:[0-9]+}/update", rh.UpdateListing).Methods(http.MethodPut)
	mux.HandleFunc("/listings/{listing_id:[0-9]+}/upload_image", rh.UploadListingImage).Methods(http.MethodPost)

	// Search / filter
	mux.HandleFunc("/search", rh.SearchListings).Methods(http.MethodGet)
	mux.HandleFunc("/filters/listings", rh.FilterListings).Methods(http.MethodGet)

	// Comments
	mux.HandleFunc("/comments/post_comment", rh.PostComment).Methods(http.MethodPost)
	mux.HandleFunc("/comments/update/{comment_id:[0-9]+}", rh.UpdateComment).Methods(http.MethodPut)
	mux.HandleFunc("/comments/delete_comment/{comment_id:[0-9]+}", rh.DeleteComment).Methods(http.MethodDelete)
	mux.HandleFunc("/comments/{listing_id:[0-9]+}", rh.ListComments).Methods(http.MethodGet)

	// Genres / view
	mux.HandleFunc("/genres", rh.ListGenres).Methods(http.MethodGet)
	mux.HandleFunc("/view/user_listing_genre", rh.UserListingGenreView).Methods(http.MethodGet)

	// Internal surface for the cleanup consumer
	internal := mux.PathPrefix("/internal/").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/images/{listing_id:[0-9]+}", rh.CleanupListingImages).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new marketplace user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.envelope
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Verify credentials and set the HTTP-only access_token cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} transport.envelope
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	token, res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	setAuthCookie(w, token)
	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Drop the server-side session and clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} transport.envelope
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := ""
	if cookie, err := r.Cookie(constant.AuthCookieName); err == nil {
		token = cookie.Value
	}
	_ = s.UserApp.Logout(ctx, token)

	clearAuthCookie(w)
	writeSuccess(w, map[string]string{"message": "Logout successful"})
}

// Me handler
// @Summary Current user
// @Description Return the profile of the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} model.UserEntity
// @Failure 401 {object} transport.envelope
// @Failure 404 {object} transport.envelope
// @Router /me [get]
func (s *RestHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Me(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserEntity
// @Router /users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get user by id
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} transport.envelope
// @Router /users/{user_id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	res, err := s.UserApp.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateUser handler
// @Summary Update own profile
// @Description Token subject must match the path user id
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body model.UserUpdateRequest true "Profile fields"
// @Success 200 {object} transport.envelope
// @Failure 403 {object} transport.envelope
// @Router /users/update/{user_id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	authUserID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.UpdateProfile(ctx, authUserID, mux.Vars(r)["user_id"], &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Profile updated successfully"})
}

// ListListings handler
// @Summary List listings
// @Description All listings joined with their owner's public columns
// @Tags Listings
// @Produce json
// @Success 200 {array} model.ListingWithOwner
// @Router /listings [get]
func (s *RestHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.ListListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetListing handler
// @Summary Listing detail
// @Description Listing with owner columns, genre names and comments
// @Tags Listings
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Success 200 {object} model.ListingDetail
// @Failure 404 {object} transport.envelope
// @Router /listings/{listing_id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.GetListing(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateListing handler
// @Summary Create listing
// @Description Owner is always the token subject
// @Tags Listings
// @Accept json
// @Produce json
// @Param request body model.ListingCreateRequest true "Listing fields"
// @Success 200 {object} model.ListingCreateResponse
// @Failure 401 {object} transport.envelope
// @Router /listings/create [post]
func (s *RestHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ListingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.CreateListing(ctx, ownerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateListing handler
// @Summary Update listing
// @Description Field replace plus full genre link replace; owner only
// @Tags Listings
// @Accept json
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Param request body model.ListingUpdateRequest true "Listing fields"
// @Success 200 {object} transport.envelope
// @Failure 403 {object} transport.envelope
// @Failure 404 {object} transport.envelope
// @Router /listings/{listing_id}/update [put]
func (s *RestHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ListingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ListingApp.UpdateListing(ctx, userID, listingID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Listing updated"})
}

// DeleteListing handler
// @Summary Delete listing
// @Description Cascades genre links and comments; owner only
// @Tags Listings
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Success 200 {object} transport.envelope
// @Failure 403 {object} transport.envelope
// @Failure 404 {object} transport.envelope
// @Router /listings/delete/{listing_id} [delete]
func (s *RestHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ListingApp.DeleteListing(ctx, userID, listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Listing deleted successfully"})
}

// UploadListingImage handler
// @Summary Upload listing image
// @Description Stores the file as {listing_id}.{ext}; jpg, jpeg, png, webp only
// @Tags Listings
// @Accept multipart/form-data
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Param file formData file true "Image file"
// @Success 200 {object} model.UploadImageResponse
// @Failure 400 {object} transport.envelope
// @Router /listings/{listing_id}/upload_image [post]
func (s *RestHandler) UploadListingImage(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	res, err := s.ListingApp.UploadImage(r.Context(), listingID, header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SearchListings handler
// @Summary Search listings
// @Description Case-insensitive substring match on listing name
// @Tags Listings
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {array} model.ListingWithOwner
// @Router /search [get]
func (s *RestHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	res, err := s.ListingApp.SearchListings(r.Context(), keyword)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// FilterListings handler
// @Summary Filter listings
// @Description Composable filter; unset parameters impose no constraint
// @Tags Listings
// @Produce json
// @Param name query string false "Name substring"
// @Param city query string false "Owner city"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param genre query string false "Genre name"
// @Param sort_by query string false "name or price"
// @Param sort_order query string false "asc or desc"
// @Success 200 {array} model.ListingWithOwner
// @Router /filters/listings [get]
func (s *RestHandler) FilterListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &model.ListingFilter{
		Name:      q.Get("name"),
		City:      q.Get("city"),
		Genre:     q.Get("genre"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	var err error
	if filter.MinPrice, err = queryPrice(q.Get("min_price")); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if filter.MaxPrice, err = queryPrice(q.Get("max_price")); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ListingApp.FilterListings(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListComments handler
// @Summary Comments for a listing
// @Tags Comments
// @Produce json
// @Param listing_id path int true "Listing ID"
// @Success 200 {array} model.CommentWithAuthor
// @Router /comments/{listing_id} [get]
func (s *RestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CommentApp.ListComments(r.Context(), listingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PostComment handler
// @Summary Post comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body model.CommentRequest true "Comment fields"
// @Success 200 {object} transport.envelope
// @Router /comments/post_comment [post]
func (s *RestHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	var req model.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommentApp.PostComment(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Comment posted successfully"})
}

// UpdateComment handler
// @Summary Update comment
// @Description Content update only; owner only
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Param request body model.CommentRequest true "Comment fields"
// @Success 200 {object} transport.envelope
// @Failure 403 {object} transport.envelope
// @Router /comments/update/{comment_id} [put]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	commentID, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommentApp.UpdateComment(ctx, userID, commentID, req.CommentContent); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Comment updated successfully"})
}

// DeleteComment handler
// @Summary Delete comment
// @Description Owner only
// @Tags Comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} transport.envelope
// @Failure 403 {object} transport.envelope
// @Router /comments/delete_comment/{comment_id} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	commentID, err := pathID(r, "comment_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommentApp.DeleteComment(ctx, userID, commentID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Comment deleted successfully"})
}

// ListGenres handler
// @Summary List genres
// @Tags Genres
// @Produce json
// @Success 200 {array} model.GenreEntity
// @Router /genres [get]
func (s *RestHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	res, err := s.GenreApp.ListGenres(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UserListingGenreView handler
// @Summary Denormalized user/listing/genre view
// @Tags Genres
// @Produce json
// @Success 200 {array} model.UserListingGenreRow
// @Router /view/user_listing_genre [get]
func (s *RestHandler) UserListingGenreView(w http.ResponseWriter, r *http.Request) {
	res, err := s.ListingApp.UserListingGenreView(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CleanupListingImages removes the stored image files for a deleted listing.
// Internal API, called by the rabbitmq consumer.
func (s *RestHandler) CleanupListingImages(w http.ResponseWriter, r *http.Request) {
	listingID, err := pathID(r, "listing_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ListingApp.RemoveImageFiles(r.Context(), listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Images removed"})
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}

func queryPrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
