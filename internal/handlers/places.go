package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/places-api/internal/services"
	"github.com/dimitrije/places-api/pkg/dto"
)

type PlaceHandler struct {
	places *services.PlaceService
}

func NewPlaceHandler(places *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{places: places}
}

// List is the one public endpoint: the full collection as a JSON array.
func (h *PlaceHandler) List(c *drift.Context) {
	places, err := h.places.List()
	if err != nil {
		c.InternalServerError("failed to load places")
		return
	}
	_ = c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) Create(c *drift.Context) {
	var req dto.CreatePlaceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	req.Normalize()
	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: errs})
		return
	}

	place, err := h.places.Create(req)
	if err != nil {
		c.InternalServerError("failed to create place")
		return
	}
	_ = c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) Update(c *drift.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.BadRequest("invalid place id")
		return
	}

	var req dto.UpdatePlaceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	req.Normalize()
	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: errs})
		return
	}

	place, err := h.places.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrPlaceNotFound) {
			c.NotFound("place not found")
			return
		}
		c.InternalServerError("failed to update place")
		return
	}
	_ = c.JSON(http.StatusOK, place)
}

func (h *PlaceHandler) Delete(c *drift.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.BadRequest("invalid place id")
		return
	}

	if err := h.places.Delete(id); err != nil {
		if errors.Is(err, services.ErrPlaceNotFound) {
			c.NotFound("place not found")
			return
		}
		c.InternalServerError("failed to delete place")
		return
	}
	_ = c.JSON(http.StatusOK, dto.MessageResponse{Message: "place deleted"})
}
