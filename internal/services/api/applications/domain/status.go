// Package domain holds the applications types shared by http, service and repo
//
// status graph
//
//	Applied ──► Under Review ──► Accepted
//	   │              │
//	   └──────────────┴────────► Rejected
//
// Accepted and Rejected are terminal
package domain

import (
	"time"
)

// Status is where an application sits, values match what students see
type Status string

// application statuses
const (
	StatusApplied     Status = "Applied"
	StatusUnderReview Status = "Under Review"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
)

// Statuses lists every status in dashboard order
var Statuses = []Status{StatusApplied, StatusUnderReview, StatusAccepted, StatusRejected}

var transitions = map[Status][]Status{
	StatusApplied:     {StatusUnderReview, StatusRejected},
	StatusUnderReview: {StatusAccepted, StatusRejected},
}

// ParseStatus accepts the display form or its snake case twin
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if s == string(st) || s == st.Key() {
			return st, true
		}
	}
	return "", false
}

// Key is the snake case form used in query strings and analytics
func (s Status) Key() string {
	switch s {
	case StatusUnderReview:
		return "under_review"
	case StatusApplied:
		return "applied"
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	}
	return ""
}

// Terminal reports whether no transition leaves s
func (s Status) Terminal() bool {
	_, ok := transitions[s]
	return !ok
}

// CanMoveTo reports whether s may transition to next
func (s Status) CanMoveTo(next Status) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

// Application is a student's application to one internship
type Application struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"student_id"`
	ListingID       string    `json:"listing_id"`
	InternshipTitle string    `json:"internship_title"`
	CompanyName     string    `json:"company_name"`
	Note            string    `json:"note,omitempty"`
	Feedback        string    `json:"feedback,omitempty"`
	Status          Status    `json:"status"`
	AppliedAt       time.Time `json:"applied_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
