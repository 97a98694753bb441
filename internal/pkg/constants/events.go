package constants

// NATS Subjects
const (
	// Ride events
	SubjectRidePublished = "ride.published"
	SubjectRideUpdated   = "ride.updated"
	SubjectRideRemoved   = "ride.removed"
	SubjectRideReserved  = "ride.reserved"
	SubjectRideSettled   = "ride.settled"

	// Wallet events
	SubjectWalletUpdated = "wallet.updated"
)

// Redis mirror key prefixes
const (
	KeyRideMirror   = "ride:"
	KeyWalletMirror = "wallet:"
)
