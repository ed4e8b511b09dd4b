package dto

// LikeCountResponse for returning the like count of a message
type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// LikeCheckResponse for returning whether the caller has liked a message
type LikeCheckResponse struct {
	Liked bool `json:"liked"`
}

// LikeToggleResponse for returning the state after a toggle
type LikeToggleResponse struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}
