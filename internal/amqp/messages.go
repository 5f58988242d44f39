package amqp

import (
	"encoding/json"
	"time"
)

// DaySavedMessage announces that a business day was written back to the
// store. Consumers (backup jobs, dashboards) fetch details themselves;
// the message only carries totals.
type DaySavedMessage struct {
	Date         string    `json:"date"`
	Appointments int       `json:"appointments"`
	Expenses     int       `json:"expenses"`
	Sales        int       `json:"sales"`
	NetCents     int64     `json:"net_cents"`
	Guarded      []string  `json:"guarded,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewDaySavedMessage(date string, appointments, expenses, sales int, netCents int64, guarded []string) *DaySavedMessage {
	return &DaySavedMessage{
		Date:         date,
		Appointments: appointments,
		Expenses:     expenses,
		Sales:        sales,
		NetCents:     netCents,
		Guarded:      guarded,
		Timestamp:    time.Now(),
	}
}

func (m *DaySavedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func DaySavedMessageFromJSON(data []byte) (*DaySavedMessage, error) {
	var msg DaySavedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
