package model

// Submission is one whitelist application as received over HTTP. It is
// rendered into a review message immediately and never stored.
type Submission struct {
	UserID   string
	Username string
	Form     FormData
}
