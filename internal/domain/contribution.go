package domain

import (
	"regexp"
	"strings"
	"time"
)

// Contribution is a single recorded donation for the event.
type Contribution struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Relation    string    `json:"relation"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContributionInput carries the raw form fields for a new contribution.
type ContributionInput struct {
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Normalize trims whitespace from all string fields.
func (in *ContributionInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Relation = strings.TrimSpace(in.Relation)
	in.Address = strings.TrimSpace(in.Address)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Date = strings.TrimSpace(in.Date)
}

// Validate checks the input rules in a fixed order and returns the first
// failing rule's message. The checks stop at the first failure so the caller
// always gets exactly one reason.
func (in ContributionInput) Validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "Name is required"}
	}
	if in.Relation == "" {
		return &ValidationError{Field: "relation", Reason: "S/O or D/O is required"}
	}
	if in.Address == "" {
		return &ValidationError{Field: "address", Reason: "Address is required"}
	}
	if in.PhoneNumber == "" {
		return &ValidationError{Field: "phoneNumber", Reason: "Phone number is required"}
	}
	if !phonePattern.MatchString(in.PhoneNumber) {
		return &ValidationError{Field: "phoneNumber", Reason: "Phone number must be 10 digits"}
	}
	if in.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "Amount must be greater than 0"}
	}
	if in.Date == "" {
		return &ValidationError{Field: "date", Reason: "Date is required"}
	}
	return nil
}

// ValidationError reports the first form rule an input failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// HasPhone reports whether any contribution in the list carries the exact
// phone number. The comparison is case-sensitive byte equality.
func HasPhone(list []Contribution, phone string) bool {
	for _, c := range list {
		if c.PhoneNumber == phone {
			return true
		}
	}
	return false
}

// TotalAmount sums the amounts of the given contributions.
func TotalAmount(list []Contribution) int64 {
	var total int64
	for _, c := range list {
		total += c.Amount
	}
	return total
}
