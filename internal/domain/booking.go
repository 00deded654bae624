package domain

// Booking is a scheduled learning session at a branch of the studio.
// Date is stored as the raw "YYYY-MM-DD" string the client submitted;
// the count-by-date query matches it exactly.
type Booking struct {
	ID     string
	Date   string
	Name   string
	Email  string
	Lesson string
	Course string
	Branch string
}
