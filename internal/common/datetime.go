package common

import "time"

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMMDDHHMMSSWithoutDash = "20060102150405"
)

// Now is swapped in tests to freeze time.
var Now = time.Now
