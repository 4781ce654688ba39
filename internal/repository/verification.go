package repository

// Verification is the trust label on stats and recordings. It is set by an
// out-of-band review process; everything created through the portal starts
// unverified.
const (
	VerificationUnverified = "UNVERIFIED"
	VerificationVerified   = "VERIFIED"
)
