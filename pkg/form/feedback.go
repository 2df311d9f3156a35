package form

import (
	"github.com/google/uuid"

	"github.com/b/form-tabs/pkg/reactive"
)

// MessageType classifies feedback.
type MessageType string

const (
	TypeError   MessageType = "error"
	TypeWarning MessageType = "warning"
	TypeSuccess MessageType = "success"
)

// Message is one feedback record for a field.
type Message struct {
	ID       string
	Address  Address
	Type     MessageType
	Code     string
	Messages []string
}

// Query selects messages. Address is a pattern as accepted by
// Address.Match; empty Type or Code match anything.
type Query struct {
	Address string
	Type    MessageType
	Code    string
}

// Feedback collects validation messages keyed by field address.
type Feedback struct {
	messages []Message
	revision *reactive.Cell[int]
}

func newFeedback() *Feedback {
	return &Feedback{revision: reactive.NewCell(0)}
}

// Update stores m, replacing the record with the same address, type and
// code. A message with no text removes that record.
func (f *Feedback) Update(m Message) {
	idx := -1
	for i, cur := range f.messages {
		if cur.Address.Equal(m.Address) && cur.Type == m.Type && cur.Code == m.Code {
			idx = i
			break
		}
	}
	switch {
	case len(m.Messages) == 0 && idx < 0:
		return
	case len(m.Messages) == 0:
		f.messages = append(f.messages[:idx], f.messages[idx+1:]...)
	case idx >= 0:
		m.ID = f.messages[idx].ID
		f.messages[idx] = m
	default:
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		f.messages = append(f.messages, m)
	}
	f.bump()
}

// Clear drops every message at addr or below it.
func (f *Feedback) Clear(addr Address) {
	kept := f.messages[:0]
	removed := false
	for _, m := range f.messages {
		if m.Address.HasPrefix(addr) {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	if removed {
		f.bump()
	}
}

// QueryMessages returns the messages matching q in insertion order.
func (f *Feedback) QueryMessages(q Query) []Message {
	var out []Message
	for _, m := range f.messages {
		if q.Type != "" && m.Type != q.Type {
			continue
		}
		if q.Code != "" && m.Code != q.Code {
			continue
		}
		if q.Address != "" && !m.Address.Match(q.Address) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Len returns the number of stored records.
func (f *Feedback) Len() int {
	return len(f.messages)
}

// Subscribe calls fn after every change to the store.
func (f *Feedback) Subscribe(fn func()) (unsubscribe func()) {
	return f.revision.Subscribe(func(int) { fn() })
}

func (f *Feedback) bump() {
	f.revision.Set(f.revision.Get() + 1)
}
