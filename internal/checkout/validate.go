package checkout

import (
	"regexp"
	"strings"
)

const (
	MsgMissingFields = "Please fill in all fields"
	MsgInvalidEmail  = "Please enter a valid email address"
	MsgSubmitFailed  = "Failed to place order. Please try again."
	MsgOrderPlaced   = "Order placed successfully! Redirecting to orders..."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the customer fields collected at checkout.
type Form struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerAddress string `json:"customer_address"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (f Form) normalized() Form {
	return Form{
		CustomerName:    strings.TrimSpace(f.CustomerName),
		CustomerEmail:   strings.TrimSpace(f.CustomerEmail),
		CustomerAddress: strings.TrimSpace(f.CustomerAddress),
	}
}

// Validate checks f after trimming surrounding whitespace. Missing fields
// are reported before a malformed email.
func (f Form) Validate() error {
	n := f.normalized()
	switch {
	case n.CustomerName == "":
		return &ValidationError{Field: "customer_name", Message: MsgMissingFields}
	case n.CustomerEmail == "":
		return &ValidationError{Field: "customer_email", Message: MsgMissingFields}
	case n.CustomerAddress == "":
		return &ValidationError{Field: "customer_address", Message: MsgMissingFields}
	case !emailPattern.MatchString(n.CustomerEmail):
		return &ValidationError{Field: "customer_email", Message: MsgInvalidEmail}
	}
	return nil
}
