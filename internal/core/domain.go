package core

import (
	"errors"
	"strings"
	"time"
)

// DateFormat is the canonical on-sheet date representation.
const DateFormat = "2006-01-02"

type (
	// Date is a calendar day. The time-of-day portion is always zero;
	// appointments carry their slot separately as an "HH:MM" string.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	PaymentMethod string

	// Appointment is a booked service for one slot of one staff member.
	// Secondary is zero unless the payment was split across two methods.
	Appointment struct {
		Date      Date
		Slot      string
		Client    string
		Service   string
		Staff     string
		Payment   PaymentMethod
		Primary   Money
		Secondary Money
		Total     Money
	}

	Expense struct {
		Date        Date
		Description string
		Amount      Money
	}

	Sale struct {
		Date   Date
		Item   string
		Amount Money
		Seller string
	}
)

// PaymentUnspecified marks rows loaded from the store without a payment
// method column value.
const PaymentUnspecified PaymentMethod = "unspecified"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyClient      = errors.New("empty client name")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyItem        = errors.New("empty item")
	ErrEmptySlot        = errors.New("empty time slot")
	ErrEmptyStaff       = errors.New("empty staff member")
	ErrSplitMismatch    = errors.New("split amounts do not add up to total")
)

// NewDate creates a Date at day precision in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the canonical YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Equal compares at day precision.
func (d Date) Equal(other Date) bool {
	if d.IsZero() || other.IsZero() {
		return d.IsZero() && other.IsZero()
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// String returns the canonical YYYY-MM-DD form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateFormat)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (a Appointment) Validate() error {
	if err := a.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(a.Slot) == "" {
		return ErrEmptySlot
	}
	if strings.TrimSpace(a.Client) == "" {
		return ErrEmptyClient
	}
	if strings.TrimSpace(a.Staff) == "" {
		return ErrEmptyStaff
	}
	if err := a.Total.Validate(); err != nil {
		return err
	}
	if a.Primary.Cents < 0 || a.Secondary.Cents < 0 {
		return ErrInvalidAmount
	}
	if a.Secondary.Cents > 0 && a.Primary.Cents+a.Secondary.Cents != a.Total.Cents {
		return ErrSplitMismatch
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	return e.Amount.Validate()
}

func (s Sale) Validate() error {
	if err := s.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Item) == "" {
		return ErrEmptyItem
	}
	if strings.TrimSpace(s.Seller) == "" {
		return ErrEmptyStaff
	}
	return s.Amount.Validate()
}
