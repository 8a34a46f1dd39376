package models

// Vote type constants
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Request types

type SubmitVoteRequest struct {
	CatID    int64  `json:"cat_id" validate:"required,gt=0"`
	VoteType string `json:"vote_type" validate:"required,oneof=upvote downvote"`
}

// SeedCat is one record from the external image source: its own id and an image URL.
type SeedCat struct {
	ID  string `json:"id" validate:"required,max=255"`
	URL string `json:"url" validate:"required,url"`
}

type SeedCatsRequest struct {
	Cats []SeedCat `json:"cats" validate:"required,min=1,dive"`
}

// Response types

type SubmitVoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SeedCatsResponse struct {
	Success  bool `json:"success"`
	Inserted int  `json:"inserted"`
}

type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Domain types

type Cat struct {
	ID         int64   `json:"id"`
	ImageURL   string  `json:"image_url"`
	ExternalID *string `json:"external_id,omitempty"`
}

// CatScore is a cat with its vote totals, computed on every read.
type CatScore struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

type Winner struct {
	ID          int64  `json:"id"`
	ImageURL    string `json:"image_url"`
	UpvoteCount int    `json:"upvote_count"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
