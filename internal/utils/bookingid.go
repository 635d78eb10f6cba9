package utils // package utils provides helper functions for hashing and identifier generation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// bookingIDPrefix tags every booking identifier issued by this service.
const bookingIDPrefix = "MVM"

// NewBookingID returns a fresh booking identifier of the form
// MVM-<YYYYMMDD>-<8 hex chars>, e.g. "MVM-20240501-3f2a9c1d".  The random
// suffix is the first eight hex characters of a UUID.  No collision check is
// performed; at eight hex characters the collision probability within a
// single day is negligible for this deployment's scale.
func NewBookingID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s-%s", bookingIDPrefix, now.Format("20060102"), suffix)
}

// BookingID is the parsed form of a booking identifier.
type BookingID struct {
	Date   time.Time // day the booking was issued (UTC midnight)
	Suffix string    // 8 lowercase hex characters
}

// ErrBadBookingID is returned by ParseBookingID for malformed identifiers.
var ErrBadBookingID = errors.New("malformed booking id")

// ParseBookingID validates the MVM-<YYYYMMDD>-<8 hex> contract and returns
// the parsed components.
func ParseBookingID(s string) (BookingID, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != bookingIDPrefix {
		return BookingID{}, ErrBadBookingID
	}
	day, err := time.Parse("20060102", parts[1])
	if err != nil {
		return BookingID{}, ErrBadBookingID
	}
	if len(parts[2]) != 8 {
		return BookingID{}, ErrBadBookingID
	}
	for _, r := range parts[2] {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return BookingID{}, ErrBadBookingID
		}
	}
	return BookingID{Date: day, Suffix: parts[2]}, nil
}
