package v1handler

import (
	"hellofood/internal/delivery"
	"hellofood/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UpdateDeliveryAddressRequest struct {
	DeliveryID *int64 `json:"delivery_id" validate:"required"`
	AddressID  *int64 `json:"address_id"  validate:"required"`
}

// CreateDelivery decodes the body into delivery.Input; presence checks and the
// business rules run in the delivery service.
func (h Handler) CreateDelivery(c *gin.Context) {
	var input delivery.Input
	if err := decode(c, &input); err != nil {
		h.fail(c, err)

		return
	}

	created, err := h.deps.Deliveries.CreateFromInput(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h Handler) GetDelivery(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	d, err := h.deps.Deliveries.Get(c.Request.Context(), domain.DeliveryID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, d)
}

func (h Handler) UpdateDeliveryAddress(c *gin.Context) {
	var req UpdateDeliveryAddressRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	err := h.deps.Deliveries.UpdateAddress(c.Request.Context(),
		domain.DeliveryID(*req.DeliveryID), domain.AddressID(*req.AddressID))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h Handler) ListUserDeliveries(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	deliveries, err := h.deps.Deliveries.ListByUser(c.Request.Context(), domain.UserID(id))
	if err != nil {
		h.fail(c, err)

		return
	}
	if deliveries == nil {
		deliveries = []domain.Delivery{}
	}

	c.JSON(http.StatusOK, deliveries)
}
