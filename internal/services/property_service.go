package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"estateBack/internal/lifecycle"
	"estateBack/internal/models"
	"estateBack/internal/repositories"
)

// Notifier pushes an event to a user's open websocket connection, if any.
type Notifier interface {
	Notify(userID string, n models.Notification)
}

type PropertyService struct {
	PropertyRepo repositories.PropertyRepository
	Notifier     Notifier
}

// CreateProperty validates a submission, applies defaults and stores it.
// The initial status is decided by the caller's role, never by the payload:
// admins publish directly, everyone else goes through approval.
func (s *PropertyService) CreateProperty(ctx context.Context, property models.Property, actor *models.Claims) (models.Property, error) {
	if err := models.ValidateProperty(property); err != nil {
		return models.Property{}, err
	}
	applyDefaults(&property)
	if actor.Role == models.RoleAdmin {
		property.Status = lifecycle.StatusAvailable
	} else {
		property.Status = lifecycle.StatusPending
	}
	property.OwnerID = actor.UserID
	return s.PropertyRepo.CreateProperty(ctx, property)
}

// GetProperties lists listings visible to the caller, newest last, filtered
// by the optional query constraints.
func (s *PropertyService) GetProperties(ctx context.Context, filter models.PropertyFilter, actor *models.Claims) ([]models.Property, error) {
	all, err := s.PropertyRepo.GetProperties(ctx)
	if err != nil {
		return nil, err
	}
	properties := make([]models.Property, 0, len(all))
	for _, p := range all {
		if !visibleTo(p, actor) {
			continue
		}
		if !matchesFilter(p, filter) {
			continue
		}
		properties = append(properties, p)
	}
	return properties, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id string) (models.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, id)
}

func (s *PropertyService) GetPropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	all, err := s.PropertyRepo.GetProperties(ctx)
	if err != nil {
		return nil, err
	}
	var properties []models.Property
	for _, p := range all {
		if p.OwnerID == ownerID {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

// UpdateProperty replaces all mutable fields of an existing listing. The id
// and owner are immutable; status changes must follow the transition table
// and leaving pending/rejected is an admin decision.
func (s *PropertyService) UpdateProperty(ctx context.Context, id string, incoming models.Property, actor *models.Claims) (models.Property, error) {
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if actor.Role != models.RoleAdmin && actor.UserID != existing.OwnerID {
		return models.Property{}, models.ErrForbidden
	}
	if err := models.ValidateProperty(incoming); err != nil {
		return models.Property{}, err
	}

	newStatus := incoming.Status
	if newStatus == "" {
		newStatus = existing.Status
	}
	if newStatus != existing.Status {
		if !lifecycle.IsStatus(newStatus) {
			return models.Property{}, &models.ValidationError{Field: "status", Message: "Unknown status"}
		}
		if !lifecycle.CanTransition(existing.Status, newStatus) {
			return models.Property{}, models.ErrInvalidTransition
		}
		if lifecycle.AdminOnly(existing.Status) && actor.Role != models.RoleAdmin {
			return models.Property{}, models.ErrForbidden
		}
	}

	applyDefaults(&incoming)
	incoming.ID = existing.ID
	incoming.OwnerID = existing.OwnerID
	incoming.Status = newStatus
	return s.PropertyRepo.UpdateProperty(ctx, incoming)
}

// ApproveProperty publishes a pending listing.
func (s *PropertyService) ApproveProperty(ctx context.Context, id string, actor *models.Claims) (models.Property, error) {
	return s.setStatus(ctx, id, lifecycle.StatusAvailable, "approved", actor)
}

// RejectProperty turns a submission down.
func (s *PropertyService) RejectProperty(ctx context.Context, id string, actor *models.Claims) (models.Property, error) {
	return s.setStatus(ctx, id, lifecycle.StatusRejected, "rejected", actor)
}

func (s *PropertyService) setStatus(ctx context.Context, id, status, verb string, actor *models.Claims) (models.Property, error) {
	if actor.Role != models.RoleAdmin {
		return models.Property{}, models.ErrForbidden
	}
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if existing.Status == status {
		return existing, nil
	}
	if !lifecycle.CanTransition(existing.Status, status) {
		return models.Property{}, models.ErrInvalidTransition
	}
	existing.Status = status
	updated, err := s.PropertyRepo.UpdateProperty(ctx, existing)
	if err != nil {
		return models.Property{}, err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(updated.OwnerID, models.Notification{
			Type:       "property_status",
			PropertyID: updated.ID,
			Title:      updated.Title,
			Status:     updated.Status,
			Message:    fmt.Sprintf("Your listing %q was %s", updated.Title, verb),
			CreatedAt:  time.Now(),
		})
	}
	return updated, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id string, actor *models.Claims) error {
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleAdmin && actor.UserID != existing.OwnerID {
		return models.ErrForbidden
	}
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

func applyDefaults(p *models.Property) {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
}

// Pending and rejected listings are only shown to their owner and to admins.
func visibleTo(p models.Property, actor *models.Claims) bool {
	if p.Status == lifecycle.StatusAvailable || p.Status == lifecycle.StatusSold {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.Role == models.RoleAdmin || actor.UserID == p.OwnerID
}

func matchesFilter(p models.Property, f models.PropertyFilter) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Area != "" && p.Area != f.Area {
		return false
	}
	if f.PropertyType != "" && p.PropertyType != f.PropertyType {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.MinPrice > 0 || f.MaxPrice > 0 {
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			return false
		}
		if f.MinPrice > 0 && price < f.MinPrice {
			return false
		}
		if f.MaxPrice > 0 && price > f.MaxPrice {
			return false
		}
	}
	return true
}
