package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(s string) *string   { return &s }
func fp(f float64) *float64 { return &f }

func TestCreatePlaceRequest_Valid(t *testing.T) {
	req := CreatePlaceRequest{
		Name:     "City Museum",
		Category: "Museum",
		Rating:   fp(4.5),
	}
	req.Normalize()

	assert.Nil(t, Validate(req))
}

func TestCreatePlaceRequest_MissingRequiredFields(t *testing.T) {
	req := CreatePlaceRequest{}

	errs := Validate(req)

	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "category", errs[1].Field)
}

func TestCreatePlaceRequest_Normalize(t *testing.T) {
	req := CreatePlaceRequest{
		Name:        "  City Museum  ",
		Category:    " Museum ",
		Description: sp("   "),
		Address:     sp(" 1 Main St "),
		Image:       sp(""),
	}
	req.Normalize()

	assert.Equal(t, "City Museum", req.Name)
	assert.Equal(t, "Museum", req.Category)
	// Blank optionals collapse to absent.
	assert.Nil(t, req.Description)
	assert.Nil(t, req.Image)
	require.NotNil(t, req.Address)
	assert.Equal(t, "1 Main St", *req.Address)
}

func TestCreatePlaceRequest_RatingBounds(t *testing.T) {
	req := CreatePlaceRequest{Name: "X", Category: "Park", Rating: fp(5.5)}

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "rating", errs[0].Field)
	assert.Equal(t, "must be at most 5", errs[0].Message)

	req.Rating = fp(-1)
	errs = Validate(req)
	require.Len(t, errs, 1)
	assert.Equal(t, "must be at least 0", errs[0].Message)
}

func TestCreatePlaceRequest_NegativePrice(t *testing.T) {
	req := CreatePlaceRequest{Name: "X", Category: "Park", Price: fp(-0.5)}

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
}

func TestCreatePlaceRequest_NameTooLong(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	req := CreatePlaceRequest{Name: string(long), Category: "Park"}

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "must be at most 100 characters", errs[0].Message)
}

func TestUpdatePlaceRequest_EmptyBodyIsValid(t *testing.T) {
	req := UpdatePlaceRequest{}
	req.Normalize()

	assert.Nil(t, Validate(req))
}

func TestUpdatePlaceRequest_SingleField(t *testing.T) {
	req := UpdatePlaceRequest{Price: fp(500)}
	req.Normalize()

	assert.Nil(t, Validate(req))
	assert.Nil(t, req.Name)
}

func TestUpdatePlaceRequest_Normalize(t *testing.T) {
	req := UpdatePlaceRequest{
		Name:     sp("  Renamed  "),
		Category: sp(""),
	}
	req.Normalize()

	require.NotNil(t, req.Name)
	assert.Equal(t, "Renamed", *req.Name)
	assert.Nil(t, req.Category)
}

func TestUpdatePlaceRequest_InvalidField(t *testing.T) {
	req := UpdatePlaceRequest{Rating: fp(9)}

	errs := Validate(req)

	require.Len(t, errs, 1)
	assert.Equal(t, "rating", errs[0].Field)
}
