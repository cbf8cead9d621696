package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// MatchAcceptedEvent announces a newly formed mutual match to every
// connected client.
type MatchAcceptedEvent struct {
	Type      string    `json:"type"`
	MatchID   uuid.UUID `json:"matchId"`
	UserAID   uuid.UUID `json:"userAId"`
	UserBID   uuid.UUID `json:"userBId"`
	Timestamp string    `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchAccepted is a no-op until a hub is installed, so callers never
// have to care whether realtime delivery is wired up.
func NotifyMatchAccepted(matchID, userAID, userBID uuid.UUID) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := MatchAcceptedEvent{
		Type:      "match_accepted",
		MatchID:   matchID,
		UserAID:   userAID,
		UserBID:   userBID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
