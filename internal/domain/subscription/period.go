package subscription

import "time"

// AddMonths adds n calendar months to t. Day-of-month overflow rolls into the
// following month, so Jan 31 + 1 month is Mar 3 in a non-leap year.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
