package services

import (
	"errors"
	"sync"
	"time"

	"github.com/dimitrije/places-api/internal/models"
	"github.com/dimitrije/places-api/internal/storage"
	"github.com/dimitrije/places-api/pkg/dto"
)

var ErrPlaceNotFound = errors.New("place not found")

// PlaceService is CRUD over the collection held by the datastore. Every
// mutation loads the whole document, changes it in memory and hands it back
// for persistence; there is no finer-grained API.
type PlaceService struct {
	store *storage.Store

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

func NewPlaceService(store *storage.Store) *PlaceService {
	return &PlaceService{
		store: store,
		now:   time.Now,
	}
}

// List returns the full collection in insertion order.
func (s *PlaceService) List() ([]models.Place, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Places, nil
}

// nextID allocates ids on the epoch-millisecond scale but monotonically, so
// rapid consecutive creates cannot collide.
func (s *PlaceService) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Create appends a validated place and persists the document. Input must be
// normalized and validated by the caller; Create only maps it.
func (s *PlaceService) Create(req dto.CreatePlaceRequest) (models.Place, error) {
	doc, err := s.store.Load()
	if err != nil {
		return models.Place{}, err
	}

	now := s.now()
	place := models.Place{
		ID:        s.nextID(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Image != nil {
		place.Image = *req.Image
	}

	doc.Places = append(doc.Places, place)
	if err := s.store.Save(doc); err != nil {
		return models.Place{}, err
	}
	return place, nil
}

// Update merges the provided fields over the existing record and refreshes
// its updatedAt. Absent fields keep their current values.
func (s *PlaceService) Update(id int64, req dto.UpdatePlaceRequest) (models.Place, error) {
	doc, err := s.store.Load()
	if err != nil {
		return models.Place{}, err
	}

	idx := indexOf(doc.Places, id)
	if idx < 0 {
		return models.Place{}, ErrPlaceNotFound
	}

	place := doc.Places[idx]
	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Category != nil {
		place.Category = *req.Category
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Image != nil {
		place.Image = *req.Image
	}
	if req.Price != nil {
		place.Price = req.Price
	}
	if req.Rating != nil {
		place.Rating = req.Rating
	}
	place.UpdatedAt = s.now()

	doc.Places[idx] = place
	if err := s.store.Save(doc); err != nil {
		return models.Place{}, err
	}
	return place, nil
}

// Delete removes a place and persists the document.
func (s *PlaceService) Delete(id int64) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	idx := indexOf(doc.Places, id)
	if idx < 0 {
		return ErrPlaceNotFound
	}

	doc.Places = append(doc.Places[:idx], doc.Places[idx+1:]...)
	return s.store.Save(doc)
}

func indexOf(places []models.Place, id int64) int {
	for i, p := range places {
		if p.ID == id {
			return i
		}
	}
	return -1
}
