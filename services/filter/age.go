package filter

import "time"

// AgeBuckets lists the bucket labels in display order. Ages under 18 fall in
// no bucket.
var AgeBuckets = []string{"18-24", "25-30", "31-35", "36-40", "41-45", "46-55", "56+"}

// AgeAt returns the completed-birthdays age of dob at now: calendar-year
// subtraction, minus one if the birthday has not yet occurred this year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// BucketFor maps an age to its bucket label, or "" for ages under 18.
func BucketFor(age int) string {
	switch {
	case age < 18:
		return ""
	case age <= 24:
		return "18-24"
	case age <= 30:
		return "25-30"
	case age <= 35:
		return "31-35"
	case age <= 40:
		return "36-40"
	case age <= 45:
		return "41-45"
	case age <= 55:
		return "46-55"
	default:
		return "56+"
	}
}
