package domain

// ActivityLog is one audit trail entry as rendered on the admin screens.
type ActivityLog struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

// ProfileUpdate is the writable subset of the current user's profile.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// ImportReport summarizes a spreadsheet/CSV import round trip. Parsing and
// row-level validation happen server-side; the client only renders counts.
type ImportReport struct {
	Filename string   `json:"filename"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
