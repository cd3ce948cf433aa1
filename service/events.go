package service

import (
	"github.com/kineticfest/registration-core/catalog"
	"github.com/kineticfest/registration-core/models"
)

type EventService struct{}

func NewEventService() *EventService {
	return &EventService{}
}

func (s *EventService) GetEvents() []models.Event {
	return catalog.Events()
}

func (s *EventService) GetEventBySlug(slug string) (*models.Event, error) {
	return catalog.EventBySlug(slug)
}
