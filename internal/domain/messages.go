package domain

// User-facing messages rendered by the error and login views. The
// not-found texts are part of the page contract and must not drift.
const (
	MsgCandidateNotFound = "Candidate with the specified identifier was not found"
	MsgVacancyNotFound   = "Vacancy with the specified identifier was not found"
	MsgUserEmailExists   = "A user with this email already exists"
	MsgBadCredentials    = "Email or password is incorrect"

	// GuestName pre-fills the registration form when nobody is logged in.
	GuestName = "Guest"
)
