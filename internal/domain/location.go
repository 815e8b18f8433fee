package domain

import "strings"

// Location is one bookable destination as offered by the destination picker.
type Location struct {
	Value string `json:"value"` // slug, e.g. las-vegas-nv
	Label string `json:"label"`
	State string `json:"state"`
}

// City is the part of Label before the comma.
func (l Location) City() string {
	if i := strings.IndexByte(l.Label, ','); i >= 0 {
		return l.Label[:i]
	}
	return l.Label
}
