package model

// CommentEntity represents a comments_table row
type CommentEntity struct {
	CommentID        uint64 `db:"comment_id" json:"comment_id"`
	CommentContent   string `db:"comment_content" json:"comment_content"`
	CommentDate      string `db:"comment_date" json:"comment_date"`
	CommentOwnerID   string `db:"comment_ownerid" json:"comment_ownerid"`
	CommentListingID uint64 `db:"comment_listingid" json:"comment_listingid"`
}

// CommentWithAuthor adds the commenter's display name to a comment row.
type CommentWithAuthor struct {
	CommentEntity
	UserName string `db:"user_name" json:"user_name"`
}

// CommentRequest is used for both posting and updating comments; updates only
// apply the content field.
type CommentRequest struct {
	CommentContent   string `json:"comment_content" validate:"required"`
	CommentDate      string `json:"comment_date" validate:"required"`
	CommentOwnerID   string `json:"comment_ownerid" validate:"required"`
	CommentListingID uint64 `json:"comment_listingid" validate:"required"`
}
