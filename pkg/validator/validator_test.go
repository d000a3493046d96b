package validator_test

import (
	"testing"

	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/pkg/validator"
)

func f64ptr(v float64) *float64 { return &v }

func TestValidateStruct_LocationUpdate_OK(t *testing.T) {
	t.Parallel()

	req := domain.LocationUpdateRequest{Latitude: f64ptr(18.5204), Longitude: f64ptr(73.8567)}
	if err := validator.ValidateStruct(req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidateStruct_LocationUpdate_MissingLatitude(t *testing.T) {
	t.Parallel()

	req := domain.LocationUpdateRequest{Longitude: f64ptr(73.8567)}
	if err := validator.ValidateStruct(req); err == nil {
		t.Fatalf("expected error for missing latitude")
	}
}

func TestValidateStruct_LocationUpdate_OutOfRange(t *testing.T) {
	t.Parallel()

	req := domain.LocationUpdateRequest{Latitude: f64ptr(91), Longitude: f64ptr(10)}
	if err := validator.ValidateStruct(req); err == nil {
		t.Fatalf("expected error for latitude 91")
	}

	req = domain.LocationUpdateRequest{Latitude: f64ptr(10), Longitude: f64ptr(-180.5)}
	if err := validator.ValidateStruct(req); err == nil {
		t.Fatalf("expected error for longitude -180.5")
	}
}

func TestValidateStruct_NearbyRadius(t *testing.T) {
	t.Parallel()

	ok := domain.NearbyVolunteersRequest{Lat: 18.5, Lng: 73.8, RadiusKM: 10}
	if err := validator.ValidateStruct(ok); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	bad := domain.NearbyVolunteersRequest{Lat: 18.5, Lng: 73.8, RadiusKM: 500}
	if err := validator.ValidateStruct(bad); err == nil {
		t.Fatalf("expected error for radius 500")
	}
}
