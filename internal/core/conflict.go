package core

import "strings"

// SlotPolicy decides when a proposed appointment collides with an
// existing one. The default is strict whole-slot exclusivity: one
// appointment per staff member per slot. AllowQuickShare enables the
// shop's add-on exception: two appointments may share a slot when
// exactly one of the pair is the quick service.
type SlotPolicy struct {
	AllowQuickShare bool
	QuickService    string
}

// DefaultQuickService is the short add-on cut from the shop's service
// list.
const DefaultQuickService = "Pezim"

// StrictSlotPolicy is whole-slot exclusivity with no exceptions.
func StrictSlotPolicy() SlotPolicy {
	return SlotPolicy{}
}

// Conflicts reports whether booking service at (date, slot, staff) would
// collide with an existing appointment. Matching is exact on all three
// keys; the scan is linear, daily record counts are small.
func (p SlotPolicy) Conflicts(existing []Appointment, date Date, slot, staff, service string) bool {
	for _, a := range existing {
		if !a.Date.Equal(date) || a.Slot != slot || a.Staff != staff {
			continue
		}
		if p.AllowQuickShare && p.sharable(a.Service, service) {
			continue
		}
		return true
	}
	return false
}

// sharable is true when exactly one of the two services is the quick
// service, letting a fast add-on ride along with a regular cut.
func (p SlotPolicy) sharable(existingService, newService string) bool {
	quick := p.QuickService
	if quick == "" {
		quick = DefaultQuickService
	}
	a := strings.EqualFold(strings.TrimSpace(existingService), quick)
	b := strings.EqualFold(strings.TrimSpace(newService), quick)
	return a != b
}
