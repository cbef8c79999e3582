package model

// ListingEntity represents a listings_table row
type ListingEntity struct {
	ListingID        uint64  `db:"listing_id" json:"listing_id"`
	ListingName      string  `db:"listing_name" json:"listing_name"`
	ListingPrice     float64 `db:"listing_price" json:"listing_price"`
	ListingOwnerID   string  `db:"listing_ownerid" json:"listing_ownerid"`
	ListingCondition string  `db:"listing_condition" json:"listing_condition"`
	ListingDate      string  `db:"listing_date" json:"listing_date"`
	ListingDesc      *string `db:"listing_desc" json:"listing_desc"`
	ListingImagePath *string `db:"listing_imagepath" json:"listing_imagepath"`
}

// ListingWithOwner is a listing joined with its owner's public columns.
// Password hashes are deliberately not part of the projection.
type ListingWithOwner struct {
	ListingEntity
	UserName    string `db:"user_name" json:"user_name"`
	UserCity    string `db:"user_city" json:"user_city"`
	UserAddress string `db:"user_restofaddress" json:"user_restofaddress"`
	UserPhone   string `db:"user_phonenumber" json:"user_phonenumber"`
}

// ListingDetail is the single-listing view: joined owner columns plus the
// genre names and comments attached to the listing.
type ListingDetail struct {
	ListingWithOwner
	Genres   []string            `json:"genres"`
	Comments []CommentWithAuthor `json:"comments"`
}

// ListingCreateRequest for creating a listing; the owner is always the token
// subject, never a request field.
type ListingCreateRequest struct {
	ListingName      string  `json:"listing_name" validate:"required"`
	ListingPrice     float64 `json:"listing_price" validate:"required"`
	ListingCondition string  `json:"listing_condition" validate:"required"`
	ListingDate      string  `json:"listing_date" validate:"required"`
	ListingDesc      *string `json:"listing_desc"`
	ListingImagePath *string `json:"listing_imagepath"`
	Genres           []int64 `json:"genres"`
}

type ListingCreateResponse struct {
	Message   string `json:"message"`
	ListingID uint64 `json:"listing_id"`
}

// ListingUpdateRequest replaces the mutable listing fields and the full genre
// link set.
type ListingUpdateRequest struct {
	ListingName      string  `json:"listing_name" validate:"required"`
	ListingPrice     float64 `json:"listing_price" validate:"required"`
	ListingCondition string  `json:"listing_condition" validate:"required"`
	ListingDesc      *string `json:"listing_desc"`
	Genres           []int64 `json:"genres" validate:"required"`
}

// ListingFilter composes the optional /filters/listings predicates.
// Price bounds are pointers so a zero bound still filters.
type ListingFilter struct {
	Name      string
	City      string
	MinPrice  *float64
	MaxPrice  *float64
	Genre     string
	SortBy    string
	SortOrder string
}

type UploadImageResponse struct {
	Message   string `json:"message"`
	ImagePath string `json:"image_path"`
}

// UserListingGenreRow mirrors the user_listing_genre_view projection.
type UserListingGenreRow struct {
	UserID       string  `db:"user_id" json:"user_id"`
	UserName     string  `db:"user_name" json:"user_name"`
	UserCity     string  `db:"user_city" json:"user_city"`
	ListingID    uint64  `db:"listing_id" json:"listing_id"`
	ListingName  string  `db:"listing_name" json:"listing_name"`
	ListingPrice float64 `db:"listing_price" json:"listing_price"`
	GenreName    *string `db:"genre_name" json:"genre_name"`
}
