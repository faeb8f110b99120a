package notification

import (
	"encoding/json"
	"slices"
	"time"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Data      Payload   `json:"data"`
	Frequency Frequency `json:"frequency"`
	Methods   []Method  `json:"methods"`
}

// New validates data against t, renders the message and snapshots the
// delivery settings from prefs. The result is unread.
func New(id string, t Type, data Payload, prefs Preferences, now time.Time) (Notification, error) {
	if !t.IsValid() {
		return Notification{}, ErrUnknownType
	}
	if data == nil {
		data, _ = DecodePayload(t, nil)
	}
	if !MatchesType(t, data) {
		return Notification{}, ErrPayloadTypeMismatch
	}
	if err := data.Validate(); err != nil {
		return Notification{}, err
	}

	title, content, err := Render(t, data)
	if err != nil {
		return Notification{}, err
	}
	freq, methods := prefs.DeliveryFor(t)

	return Notification{
		ID:        id,
		Type:      t,
		Title:     title,
		Content:   content,
		Timestamp: now,
		Read:      false,
		Data:      data,
		Frequency: freq,
		Methods:   methods,
	}, nil
}

func (n Notification) HasMethod(m Method) bool {
	return slices.Contains(n.Methods, m)
}

// UnmarshalJSON picks the payload variant from the type field. Records of an
// unknown type keep an empty OtherData payload instead of failing the whole
// collection.
func (n *Notification) UnmarshalJSON(b []byte) error {
	type alias Notification
	var raw struct {
		alias
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*n = Notification(raw.alias)

	data, err := DecodePayload(n.Type, raw.Data)
	if err != nil {
		data = OtherData{}
	}
	n.Data = data
	return nil
}

func CountUnread(ns []Notification) int {
	count := 0
	for _, n := range ns {
		if !n.Read {
			count++
		}
	}
	return count
}
