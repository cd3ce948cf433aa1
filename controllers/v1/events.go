package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kineticfest/registration-core/service"
)

type EventController struct {
	eventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// GET /api/v1/events
func (ctl *EventController) GetEvents(c *gin.Context) {
	events := ctl.eventService.GetEvents()
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GET /api/v1/events/:slug
func (ctl *EventController) GetEventBySlug(c *gin.Context) {
	event, err := ctl.eventService.GetEventBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}
