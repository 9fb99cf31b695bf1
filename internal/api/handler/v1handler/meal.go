package v1handler

import (
	"hellofood/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateMealRequest struct {
	Cuisine string           `json:"cuisine" validate:"required"`
	Recipe  string           `json:"recipe"  validate:"required"`
	Price   *decimal.Decimal `json:"price"   validate:"required"`
}

func (h Handler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	meal, err := h.deps.Meals.Create(c.Request.Context(), req.Cuisine, req.Recipe, *req.Price)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h Handler) GetMeal(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	meal, err := h.deps.Meals.Get(c.Request.Context(), domain.MealID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, meal)
}

// ListMeals returns the meals of one cuisine.
func (h Handler) ListMeals(c *gin.Context) {
	cuisine, err := requiredQuery(c, "cuisine")
	if err != nil {
		h.fail(c, err)

		return
	}

	meals, err := h.deps.Meals.ListByCuisine(c.Request.Context(), cuisine)
	if err != nil {
		h.fail(c, err)

		return
	}
	if meals == nil {
		meals = []domain.Meal{}
	}

	c.JSON(http.StatusOK, meals)
}
