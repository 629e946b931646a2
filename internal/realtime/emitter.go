// Package realtime pushes ledger events to connected clients.
//
// Delivery is best-effort: an Emit never blocks on a slow client and a dropped
// message is recovered by the client polling the REST endpoints.
package realtime

import (
	"context"
	"strconv"
	"time"
)

const (
	EventBalanceChanged      = "balance.changed"
	EventNotificationCreated = "notification.created"

	BroadcastRoom = "broadcast"
)

type Emitter interface {
	Emit(ctx context.Context, room, event string, payload any) error
}

func UserRoom(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

type Envelope struct {
	Room    string    `json:"room"`
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	SentAt  time.Time `json:"sent_at"`
}
