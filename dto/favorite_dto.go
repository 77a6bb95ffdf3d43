package dto

// AddFavoriteRequest represents the payload for favoriting a sweet
type AddFavoriteRequest struct {
	SweetID string `json:"sweet_id" binding:"required"`
}
