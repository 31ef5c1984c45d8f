package repoargs

import "time"

type IssueCoupon struct {
	UserID     int64
	TemplateID int64
	ExpiryDate *time.Time
}
