package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wamique00786/wesalvator/pkg/e"
)

// LocationMessage is the inbound realtime payload.
type LocationMessage struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

var errMissingCoordinate = errors.New("latitude and longitude are required")

// DecodeLocationMessage parses and validates a raw realtime frame.
func DecodeLocationMessage(raw []byte) (Point, error) {
	var msg LocationMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Point{}, fmt.Errorf("%w: invalid JSON format", e.ErrInvalidInput)
	}
	if msg.Latitude == nil || msg.Longitude == nil {
		return Point{}, fmt.Errorf("%w: %s", e.ErrInvalidInput, errMissingCoordinate)
	}
	p := Point{Lat: *msg.Latitude, Lng: *msg.Longitude}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

type LiveVolunteer struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// Snapshot is the outbound realtime payload: every connected volunteer's
// last pushed position.
type Snapshot struct {
	Volunteers []LiveVolunteer `json:"volunteers"`
}

// Find returns the entry for id, if present.
func (s Snapshot) Find(id uuid.UUID) (LiveVolunteer, bool) {
	for _, v := range s.Volunteers {
		if v.ID == id {
			return v, true
		}
	}
	return LiveVolunteer{}, false
}

// Within keeps the volunteers whose position lies within radiusKM of p.
func (s Snapshot) Within(p Point, radiusKM float64) Snapshot {
	out := Snapshot{Volunteers: make([]LiveVolunteer, 0, len(s.Volunteers))}
	for _, v := range s.Volunteers {
		if p.DistanceKM(Point{Lat: v.Latitude, Lng: v.Longitude}) <= radiusKM {
			out.Volunteers = append(out.Volunteers, v)
		}
	}
	return out
}

type ErrorMessage struct {
	Error string `json:"error"`
}
