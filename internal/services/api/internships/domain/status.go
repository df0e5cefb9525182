// Package domain holds the internships types shared by http, service and repo
package domain

import (
	"time"

	"internhub/internal/core/discovery"
)

// Status is where a posting sits in the review workflow
type Status string

// posting statuses
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusClosed   Status = "closed"
)

// Candidate reports whether postings with this status take part in discovery
// pending postings show up unverified, the way the student dashboard lists them
func (s Status) Candidate() bool { return s == StatusPending || s == StatusApproved }

// Posting is a listing plus what the marketplace tracks around it
type Posting struct {
	discovery.Listing

	Status       Status    `json:"status"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Open reports whether students can still apply at now
func (p Posting) Open(now time.Time) bool {
	if p.Status != StatusApproved && p.Status != StatusPending {
		return false
	}
	return p.ClosesAt == nil || !p.ClosesAt.Before(now)
}

// Decision is a college's verdict on a pending posting
type Decision string

// review decisions
const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status maps the decision onto the resulting posting status
func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}
