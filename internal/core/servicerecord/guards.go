// Package servicerecord contains the pure guard logic for service record
// input. The guard is deliberately simpler than the vehicle form: all four
// fields are required and a single combined result is surfaced, no
// per-field messages.
package servicerecord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/garage/internal/ports/primary"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ParseForm validates raw service record input and builds the domain
// record. Rules: date, type, and description non-blank, cost parses to a
// value strictly greater than zero. Violations block the command with one
// combined reason.
func ParseForm(carID int64, date, recordType, description, cost string) (primary.ServiceRecord, GuardResult) {
	costValue, err := strconv.ParseFloat(cost, 64)
	if isBlank(date) || isBlank(recordType) || isBlank(description) || err != nil || costValue <= 0 {
		return primary.ServiceRecord{}, GuardResult{
			Allowed: false,
			Reason:  "date, type, and description are required and cost must be greater than zero",
		}
	}

	return primary.ServiceRecord{
		CarID:       carID,
		Date:        date,
		Description: description,
		Cost:        costValue,
		Type:        recordType,
	}, GuardResult{Allowed: true}
}

// Validate checks a constructed record against the persistence invariant:
// all four required fields non-blank and a strictly positive cost.
func Validate(record primary.ServiceRecord) GuardResult {
	if isBlank(record.Date) || isBlank(record.Type) || isBlank(record.Description) || record.Cost <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "date, type, and description are required and cost must be greater than zero",
		}
	}
	return GuardResult{Allowed: true}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
