// Package timezone centralizes time handling in the configured application
// timezone so that date-only comparisons (check-in, check-out, pricing ranges)
// behave consistently regardless of the host's local zone.
package timezone
