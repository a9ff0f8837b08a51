package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is what a connected user receives when someone follows them or
// interacts with their content.
type Event struct {
	Type      string `json:"type"`
	Actor     string `json:"actor"`
	TargetID  string `json:"target_id,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HubNotifier adapts the hub to the usecase layer's Notifier contract.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(ownerID uuid.UUID, eventType, actor, kind string, targetID uuid.UUID) {
	if n == nil || n.hub == nil {
		return
	}

	evt := Event{
		Type:      eventType,
		Actor:     actor,
		Kind:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if targetID != uuid.Nil {
		evt.TargetID = targetID.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Publish(ownerID, b)
}
