package models

import (
	"strings"
	"time"
)

// Guest is one invitation: a named party reachable through a unique code.
type Guest struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Name           string     `json:"name"`
	Code           string     `gorm:"uniqueIndex" json:"code"`
	NumberOfGuests int        `gorm:"default:1" json:"numberOfGuests"`
	Phone          *string    `json:"phone"`
	Confirmed      bool       `json:"confirmed"`
	WillAttend     *bool      `json:"willAttend"`
	ConfirmedAt    *time.Time `json:"confirmedAt"`
	Message        *string    `json:"message"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Attending reports whether the guest responded and will attend.
func (g *Guest) Attending() bool {
	return g.Confirmed && g.WillAttend != nil && *g.WillAttend
}

// Declined reports whether the guest responded and will not attend.
func (g *Guest) Declined() bool {
	return g.Confirmed && g.WillAttend != nil && !*g.WillAttend
}

type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterConfirmed FilterType = "confirmed"
	FilterPending   FilterType = "pending"
	FilterDeclined  FilterType = "declined"
)

// FilterGuests returns the guests whose name contains searchTerm
// (case-insensitive) and whose RSVP state matches filter. Both predicates
// must hold.
func FilterGuests(guests []Guest, searchTerm string, filter FilterType) []Guest {
	term := strings.ToLower(searchTerm)

	var result []Guest
	for _, g := range guests {
		if term != "" && !strings.Contains(strings.ToLower(g.Name), term) {
			continue
		}
		switch filter {
		case FilterConfirmed:
			if !g.Attending() {
				continue
			}
		case FilterPending:
			if g.Confirmed {
				continue
			}
		case FilterDeclined:
			if !g.Declined() {
				continue
			}
		}
		result = append(result, g)
	}
	return result
}

// DashboardStats aggregates the guest list for the admin dashboard.
type DashboardStats struct {
	TotalGuests     int `json:"totalGuests"`
	ConfirmedGuests int `json:"confirmedGuests"`
	PendingGuests   int `json:"pendingGuests"`
	DeclinedGuests  int `json:"declinedGuests"`
	TotalPeople     int `json:"totalPeople"`
	ConfirmedPeople int `json:"confirmedPeople"`
	PendingPeople   int `json:"pendingPeople"`
	DeclinedPeople  int `json:"declinedPeople"`
}

// ComputeStats derives dashboard counts from the full guest list. The list
// is small, so recomputing on every read beats maintaining incremental
// counters.
func ComputeStats(guests []Guest) DashboardStats {
	stats := DashboardStats{TotalGuests: len(guests)}
	for _, g := range guests {
		stats.TotalPeople += g.NumberOfGuests
		switch {
		case g.Attending():
			stats.ConfirmedGuests++
			stats.ConfirmedPeople += g.NumberOfGuests
		case g.Declined():
			stats.DeclinedGuests++
			stats.DeclinedPeople += g.NumberOfGuests
		default:
			stats.PendingGuests++
			stats.PendingPeople += g.NumberOfGuests
		}
	}
	return stats
}
