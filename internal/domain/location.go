package domain

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerPosition is the last known position of a user. ConnectedAt is set
// while the user holds an open realtime connection.
type VolunteerPosition struct {
	UserID      uuid.UUID  `json:"user_id"`
	Point       Point      `json:"location"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

type LocationHistoryEntry struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Point      Point     `json:"location"`
	RecordedAt time.Time `json:"timestamp"`
	Role       Role      `json:"user_type"`
}

type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,lat"`
	Longitude *float64 `json:"longitude" validate:"required,lng"`
}

func (r LocationUpdateRequest) Point() Point {
	return Point{Lat: *r.Latitude, Lng: *r.Longitude}
}

type MyLocationResponse struct {
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	LastUpdate      *time.Time       `json:"last_update"`
	LocationHistory []HistoryPointDTO `json:"location_history"`
}

type HistoryPointDTO struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"user_type,omitempty"`
}

func HistoryDTOs(entries []LocationHistoryEntry) []HistoryPointDTO {
	out := make([]HistoryPointDTO, 0, len(entries))
	for _, h := range entries {
		out = append(out, HistoryPointDTO{
			Latitude:  h.Point.Lat,
			Longitude: h.Point.Lng,
			Timestamp: h.RecordedAt,
			Role:      h.Role,
		})
	}
	return out
}

// UserPosition joins a user with their last known position.
type UserPosition struct {
	User     User              `json:"user"`
	Position VolunteerPosition `json:"position"`
}

type UserLocationDTO struct {
	ID              uuid.UUID         `json:"id"`
	Username        string            `json:"username"`
	Phone           string            `json:"phone"`
	Role            Role              `json:"user_type"`
	Location        LocationDTO       `json:"location"`
	Online          bool              `json:"online"`
	TrailKM         float64           `json:"trail_km"`
	LocationHistory []HistoryPointDTO `json:"location_history"`
}

type LocationDTO struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	LastUpdate time.Time `json:"last_update"`
}

type UserLocationsResponse struct {
	Users []UserLocationDTO `json:"users"`
}

type NearbyVolunteersRequest struct {
	Lat      float64 `validate:"lat"`
	Lng      float64 `validate:"lng"`
	RadiusKM float64 `validate:"radius_km"`
}
