package domain

// SlugVerification is the outcome of a slug availability check.
// Existing is nil when the slug is available; Suggestions is empty when
// available and holds exactly three alternatives otherwise.
type SlugVerification struct {
	Available   bool
	Existing    *Office
	Suggestions []string
}
