package logger

import (
	"hellofood/pkg/domain"
	"hellofood/pkg/serrors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func AddressID(id domain.AddressID) zapcore.Field {
	return zap.Int64("address_id", int64(id))
}

func MealID(id domain.MealID) zapcore.Field {
	return zap.Int64("meal_id", int64(id))
}

func UserID(id domain.UserID) zapcore.Field {
	return zap.Int64("user_id", int64(id))
}

func DeliveryID(id domain.DeliveryID) zapcore.Field {
	return zap.Int64("delivery_id", int64(id))
}

func HandlingEventID(id domain.HandlingEventID) zapcore.Field {
	return zap.Int64("handling_event_id", int64(id))
}

// ErrorKind reports the serrors kind of err, or "INTERNAL" for
// uncategorized errors.
func ErrorKind(err error) zapcore.Field {
	kind := serrors.KindOf(err)
	if kind == nil {
		kind = serrors.ErrInternal
	}

	return zap.String("error_kind", kind.Error())
}
