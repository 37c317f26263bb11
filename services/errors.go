// Package services holds the business operations behind the HTTP handlers.
package services

import (
	"errors"

	"qr-attendance/pkg/apperror"
)

// wrap passes taxonomy errors through untouched and turns anything else into an Internal error.
func wrap(msg string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Internal(msg, err)
}

var errNoCalendar = errors.New("working-day calendar not configured")
