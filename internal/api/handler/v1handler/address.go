package v1handler

import (
	"hellofood/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddressRequest struct {
	Unit       string `json:"unit"`
	StreetName string `json:"street_name" validate:"required"`
	Suburb     string `json:"suburb"      validate:"required"`
	Postcode   *int   `json:"postcode"    validate:"required"`
}

func (r AddressRequest) toDomain() domain.Address {
	return domain.Address{
		Unit:       r.Unit,
		StreetName: r.StreetName,
		Suburb:     r.Suburb,
		Postcode:   *r.Postcode,
	}
}

func (h Handler) CreateAddress(c *gin.Context) {
	var req AddressRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	address, err := h.deps.Addresses.Create(c.Request.Context(), req.Unit, req.StreetName, req.Suburb, *req.Postcode)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, address)
}

func (h Handler) GetAddress(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	address, err := h.deps.Addresses.Get(c.Request.Context(), domain.AddressID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, address)
}
