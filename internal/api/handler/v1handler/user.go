package v1handler

import (
	"hellofood/internal/user"
	"hellofood/pkg/domain"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type StandardUserRequest struct {
	Email        string          `json:"email"          validate:"required"`
	Name         string          `json:"name"`
	MealsPerWeek *int            `json:"meals_per_week" validate:"required"`
	AddressID    *int64          `json:"address_id"`
	Address      *AddressRequest `json:"address"`
}

type TrialUserRequest struct {
	Email         string           `json:"email"          validate:"required"`
	Name          string           `json:"name"`
	MealsPerWeek  *int             `json:"meals_per_week" validate:"required"`
	AddressID     *int64           `json:"address_id"`
	Address       *AddressRequest  `json:"address"`
	TrialEndDate  *int64           `json:"trial_end_date" validate:"required"`
	DiscountValue *decimal.Decimal `json:"discount_value" validate:"required"`
}

// UserResponse flattens the user variant and adds the derived payment state.
type UserResponse struct {
	ID                   domain.UserID    `json:"id"`
	Kind                 domain.UserKind  `json:"kind"`
	Email                string           `json:"email"`
	Name                 string           `json:"name"`
	MealsPerWeek         int              `json:"meals_per_week"`
	AddressID            domain.AddressID `json:"address_id"`
	TrialEndDate         *int64           `json:"trial_end_date,omitempty"`
	Discount             decimal.Decimal  `json:"discount_value"`
	LockedFromDuePayment bool             `json:"locked_from_due_payment"`
}

func (h Handler) userResponse(u *domain.User) UserResponse {
	res := UserResponse{
		ID:                   u.ID,
		Kind:                 u.Kind,
		Email:                u.Email,
		Name:                 u.Name,
		MealsPerWeek:         u.MealsPerWeek,
		AddressID:            u.AddressID,
		Discount:             u.DiscountAsDecimal(),
		LockedFromDuePayment: u.IsLockedFromDuePayment(h.deps.Now()),
	}
	if u.Trial != nil {
		endDate := u.Trial.EndDate
		res.TrialEndDate = &endDate
	}

	return res
}

func profile(email, name string, mealsPerWeek int, addressID *int64, address *AddressRequest) user.Profile {
	p := user.Profile{
		Email:        email,
		Name:         name,
		MealsPerWeek: mealsPerWeek,
	}
	if addressID != nil {
		p.AddressID = domain.AddressID(*addressID)
	}
	if address != nil {
		a := address.toDomain()
		p.Address = &a
	}

	return p
}

func (h Handler) CreateTrialUser(c *gin.Context) {
	var req TrialUserRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	created, err := h.deps.Users.CreateTrial(c.Request.Context(), user.TrialParams{
		Profile:      profile(req.Email, req.Name, *req.MealsPerWeek, req.AddressID, req.Address),
		TrialEndDate: *req.TrialEndDate,
		Discount:     *req.DiscountValue,
	})
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, h.userResponse(created))
}

func (h Handler) CreateStandardUser(c *gin.Context) {
	var req StandardUserRequest
	if err := bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	created, err := h.deps.Users.CreateStandard(c.Request.Context(), user.StandardParams{
		Profile: profile(req.Email, req.Name, *req.MealsPerWeek, req.AddressID, req.Address),
	})
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, h.userResponse(created))
}

func (h Handler) GetUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.fail(c, err)

		return
	}

	u, err := h.deps.Users.Get(c.Request.Context(), domain.UserID(id))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, h.userResponse(u))
}

func (h Handler) GetUserByEmail(c *gin.Context) {
	email, err := requiredQuery(c, "email")
	if err != nil {
		h.fail(c, err)

		return
	}

	u, err := h.deps.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, h.userResponse(u))
}
