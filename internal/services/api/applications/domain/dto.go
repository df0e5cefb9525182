package domain

// ApplyInput is the body of POST /applications
type ApplyInput struct {
	StudentID string `json:"student_id" validate:"required,max=64" example:"stu_42"`
	ListingID string `json:"listing_id" validate:"required,max=64" example:"frontend-techcorp"`
	Note      string `json:"note,omitempty" validate:"max=4000"`
}

// ListInput selects one student's applications
type ListInput struct {
	StudentID string `json:"student_id" validate:"required,max=64"`
}

// StatusInput moves an application along the status graph
type StatusInput struct {
	Status   string `json:"status" validate:"required,application_status" example:"Under Review"`
	Feedback string `json:"feedback,omitempty" validate:"max=4000"`
}

// Counts is the per status tally shown on the student dashboard
type Counts struct {
	Applied     int `json:"applied"`
	UnderReview int `json:"under_review"`
	Accepted    int `json:"accepted"`
	Rejected    int `json:"rejected"`
}

// Add tallies one application
func (c *Counts) Add(s Status) {
	switch s {
	case StatusApplied:
		c.Applied++
	case StatusUnderReview:
		c.UnderReview++
	case StatusAccepted:
		c.Accepted++
	case StatusRejected:
		c.Rejected++
	}
}

// ListResult is a student's applications, newest first, with counts
type ListResult struct {
	Items  []Application `json:"items"`
	Counts Counts        `json:"counts"`
}
