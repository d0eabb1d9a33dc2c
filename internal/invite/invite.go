// Package invite holds the small helpers around distributing invitations:
// share links, invitation URLs and the countdown shown on the invitation
// page.
package invite

import (
	"net/url"
	"strings"
	"time"
)

// Countdown is the time left until the wedding, broken down for display.
// All fields are zero once the date has passed.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func TimeRemaining(target, now time.Time) Countdown {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{}
	}
	return Countdown{
		Days:    int(d.Hours()) / 24,
		Hours:   int(d.Hours()) % 24,
		Minutes: int(d.Minutes()) % 60,
		Seconds: int(d.Seconds()) % 60,
	}
}

// WhatsAppLink builds a wa.me link that opens a chat with the guest and a
// prefilled message. Everything but digits is stripped from the phone
// number.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	// QueryEscape encodes spaces as "+", which wa.me renders literally.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + digits.String() + "?text=" + encoded
}

// InvitationURL returns the public page for a guest code.
func InvitationURL(baseURL, code string) string {
	return strings.TrimSuffix(baseURL, "/") + "/invitacion/" + code
}
