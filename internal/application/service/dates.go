package service

import (
	"time"

	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/sangkips/lanchonete-pos/pkg/format"
)

// clock supplies "today" in the business time zone
type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(loc *time.Location) clock {
	if loc == nil {
		loc = time.Local
	}
	return clock{now: time.Now, loc: loc}
}

func (c clock) today() string {
	return format.Today(c.now().In(c.loc))
}

func validDate(s string) bool {
	_, err := time.Parse(format.DateLayout, s)
	return err == nil
}

// checkDateFilter validates an optional ?data= style filter
func checkDateFilter(field, date string) error {
	if date == "" || validDate(date) {
		return nil
	}
	return apperror.NewValidationError([]apperror.FieldError{
		{Field: field, Message: "must be a date in YYYY-MM-DD format"},
	})
}
