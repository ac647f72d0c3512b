package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"estateBack/internal/models"
)

// PropertyMemoryRepository is a mutex-guarded map store. Listing order is
// insertion order, kept in a separate slice because map iteration is not
// stable.
type PropertyMemoryRepository struct {
	mu         sync.RWMutex
	order      []string
	properties map[string]models.Property
}

func NewPropertyMemoryRepository(seed []models.Property) *PropertyMemoryRepository {
	r := &PropertyMemoryRepository{
		properties: make(map[string]models.Property),
	}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.properties[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *PropertyMemoryRepository) GetProperties(ctx context.Context) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]models.Property, 0, len(r.order))
	for _, id := range r.order {
		properties = append(properties, r.properties[id])
	}
	return properties, nil
}

func (r *PropertyMemoryRepository) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	property, ok := r.properties[id]
	if !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	return property, nil
}

func (r *PropertyMemoryRepository) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	property.ID = uuid.NewString()
	r.properties[property.ID] = property
	r.order = append(r.order, property.ID)
	return property, nil
}

func (r *PropertyMemoryRepository) UpdateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[property.ID]; !ok {
		return models.Property{}, models.ErrPropertyNotFound
	}
	r.properties[property.ID] = property
	return property, nil
}

func (r *PropertyMemoryRepository) DeleteProperty(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.properties[id]; !ok {
		return models.ErrPropertyNotFound
	}
	delete(r.properties, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
