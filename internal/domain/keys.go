package domain

// KeyUser is the request-context and session key under which the
// logged-in user travels.
const KeyUser = "user"
