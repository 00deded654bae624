package domain

// Center identifies the location a booked session takes place at.
type Center struct {
	Title        string
	Organization string
	Address      string
}

// Invitation is the ephemeral payload of a send-invitation request.
// It is never persisted; it is consumed by the mail dispatch and discarded.
type Invitation struct {
	To      string
	Booking InvitationBooking
}

// InvitationBooking is the booking snapshot an invitation is generated from.
// Time is a "HH:MM" time of day; Duration is in whole hours.
type InvitationBooking struct {
	Name     string
	Email    string
	Course   string
	Lesson   string
	Branch   string
	Date     string
	Time     string
	Duration int
	Center   Center
}
