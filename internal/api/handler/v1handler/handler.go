// Package v1handler implements the /v1 JSON API on top of the domain services.
package v1handler

import (
	"context"
	"errors"
	"hellofood/internal/address"
	"hellofood/internal/delivery"
	"hellofood/internal/handling"
	"hellofood/internal/meal"
	"hellofood/internal/user"
	"hellofood/pkg/logger"
	"hellofood/pkg/serrors"
	"hellofood/pkg/validation"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type Deps struct {
	Meals          meal.Service
	Addresses      address.Service
	Users          user.Service
	Deliveries     delivery.Service
	HandlingEvents handling.Service

	// Now is the clock used for payment lock checks. Defaults to time.Now.
	Now func() time.Time
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	return &Handler{deps: deps}
}

// Register mounts every v1 route on r.
func (h Handler) Register(r gin.IRouter) {
	r.POST("/addresses", h.CreateAddress)
	r.GET("/addresses/:id", h.GetAddress)

	r.POST("/meals", h.CreateMeal)
	r.GET("/meals", h.ListMeals)
	r.GET("/meals/:id", h.GetMeal)

	r.POST("/users/trial", h.CreateTrialUser)
	r.POST("/users/standard", h.CreateStandardUser)
	r.GET("/users", h.GetUserByEmail)
	r.GET("/users/:id", h.GetUser)
	r.GET("/users/:id/deliveries", h.ListUserDeliveries)

	r.POST("/deliveries", h.CreateDelivery)
	r.PUT("/deliveries/address", h.UpdateDeliveryAddress)
	r.GET("/deliveries/:id", h.GetDelivery)
	r.GET("/deliveries/:id/handling-events", h.ListHandlingEvents)

	r.POST("/handling-events", h.CreateHandlingEvent)
	r.GET("/handling-events/:id", h.GetHandlingEvent)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrValidation:   "invalid request",
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrMultiplicity: "conflicting records found",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrValidation:   http.StatusBadRequest,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrMultiplicity: http.StatusInternalServerError,
}

// NewError maps err to a status code and a response body. Uncategorized
// errors become a generic internal error and only their cause is logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status, known := statusCodes[kind]
	if !known {
		logger.Error(ctx, "request failed", zap.Error(err), logger.ErrorKind(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := defaultMessages[kind]
	var semantic *serrors.Error
	if errors.As(err, &semantic) && semantic.Message() != "" {
		message = semantic.Message()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), logger.ErrorKind(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), logger.ErrorKind(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h Handler) fail(c *gin.Context, err error) {
	res := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(res.StatusCode, res.Response)
}

func decode(c *gin.Context, dst any) error {
	if err := c.ShouldBindWith(dst, binding.JSON); err != nil {
		return validation.FromDecodeError(err)
	}

	return nil
}

// bind decodes the JSON body into dst and validates it.
func bind(c *gin.Context, dst any) error {
	if err := decode(c, dst); err != nil {
		return err
	}

	return validation.Struct(dst)
}

func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, serrors.With(serrors.ErrValidation, "id must be a positive integer, got %q", raw)
	}

	return id, nil
}

func requiredQuery(c *gin.Context, name string) (string, error) {
	value := c.Query(name)
	if value == "" {
		return "", serrors.With(serrors.ErrValidation, "%s query parameter is required", name)
	}

	return value, nil
}
