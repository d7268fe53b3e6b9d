package submission

import "time"

const (
	// StatusPending marks a submission awaiting correction. The grading
	// pipeline, not this service, moves it to StatusCorrected.
	StatusPending = "pending"
	// StatusCorrected marks a graded submission.
	StatusCorrected = "corrected"
)

// Submission is one exercise handed in from the dashboard. Only metadata
// lives here; the document bytes go to external storage.
type Submission struct {
	ID           string
	Phone        string
	DocumentName string
	Instructions string
	Status       string
	SubmittedAt  time.Time
}
