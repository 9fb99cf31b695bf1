package v1handler

import (
	"hellofood/internal/handling"
	"hellofood/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CreateHandlingEventRequest struct {
	DeliveryID     *int64 `json:"delivery_id"     validate:"required"`
	ToAddressID    *int64 `json:"to_address_id"   validate:"required"`
	FromAddressID  *int64 `json:"from_address_id" validate:"required"`
	CompletionTime *int64 `json:"completion_time" validate:"required"`
}

func (h Handler) CreateHandlingEvent(c *gin.Context) {
	var req CreateHandlingEventRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	event, err := h.deps.HandlingEvents.Create(c.Request.Context(), handling.CreateParams{
		DeliveryID:     domain.DeliveryID(*req.DeliveryID),
		ToAddressID:    domain.AddressID(*req.ToAddressID),
		FromAddressID:  domain.AddressID(*req.FromAddressID),
		CompletionTime: *req.CompletionTime,
	})
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h Handler) GetHandlingEvent(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	event, err := h.deps.HandlingEvents.Get(c.Request.Context(), domain.HandlingEventID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, event)
}

func (h Handler) ListHandlingEvents(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	events, err := h.deps.HandlingEvents.ListByDelivery(c.Request.Context(), domain.DeliveryID(id))
	if err != nil {
		h.fail(c, err)

		return
	}
	if events == nil {
		events = []domain.HandlingEvent{}
	}

	c.JSON(http.StatusOK, events)
}
