package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const ordersTable = "orders"

func OrderChannel(orderID uuid.UUID) string {
	return "order:" + orderID.String()
}

func KitchenChannel(kitchenID uuid.UUID) string {
	return "kitchen:" + kitchenID.String()
}

func UserChannel(userID uuid.UUID) string {
	return "user:" + userID.String()
}

// publish delivers an event best effort; realtime push never fails the
// operation that triggered it.
func publish(ctx context.Context, notifier Notifier, log logrus.FieldLogger, channel string, payload interface{}) {
	if notifier == nil {
		return
	}
	if err := notifier.Publish(ctx, channel, payload); err != nil {
		log.WithError(err).WithField("channel", channel).Warn("failed to publish realtime event")
	}
}
