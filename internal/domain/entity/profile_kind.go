package entity

// ProfileKind represents the side of the job board an account belongs to.
// It is resolved once at the authentication boundary instead of probing
// account attributes at each call site.
type ProfileKind string

const (
	// KindSeeker indicates a job seeker account.
	KindSeeker ProfileKind = "seeker"
	// KindRecruiter indicates a recruiter account.
	KindRecruiter ProfileKind = "recruiter"
)

// String returns the string representation of the ProfileKind.
func (k ProfileKind) String() string {
	return string(k)
}

// IsValid checks if the ProfileKind is a valid value.
func (k ProfileKind) IsValid() bool {
	switch k {
	case KindSeeker, KindRecruiter:
		return true
	default:
		return false
	}
}
