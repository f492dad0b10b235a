package domain

import "errors"

var (
	ErrSnapshotNotFound       = errors.New("snapshot not found")
	ErrBikeNotFound           = errors.New("bike not found")
	ErrItemNotFound           = errors.New("maintenance item not found")
	ErrLinkNotFound           = errors.New("documentation link not found")
	ErrInvalidImport          = errors.New("invalid import file")
	ErrInvalidInput           = errors.New("validation error")
	ErrRecommenderUnavailable = errors.New("recommendation service is not configured")
	ErrRecommendationFailed   = errors.New("recommendation request failed")
)
