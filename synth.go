package ledgerdocs

import "fmt"

// Word tables for synthetic counterparty details. The values only need to
// look plausible on a rendered document; what matters is that they are
// drawn from the record-scoped generator, so the same record always gets
// the same address, phone number, and account identifiers.

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Washington", "Lincoln", "Jefferson",
	"Highland", "Sunset", "Riverside", "Park", "Lakeview", "Madison",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Way"}

var cities = []string{
	"Springfield", "Riverton", "Fairview", "Georgetown", "Clayton",
	"Arlington", "Franklin", "Greenville", "Bristol", "Salem",
}

var states = []string{"CA", "TX", "NY", "WA", "IL", "OH", "GA", "NC", "CO", "AZ"}

// Address returns a deterministic single-line postal address.
func (s *Synth) Address() string {
	return fmt.Sprintf("%d %s %s, %s, %s %s",
		s.IntBetween(100, 9999),
		s.pick(streetNames),
		s.pick(streetSuffixes),
		s.pick(cities),
		s.pick(states),
		s.Digits(5),
	)
}

// PhoneNumber returns a deterministic US-formatted phone number.
func (s *Synth) PhoneNumber() string {
	return fmt.Sprintf("(%s) %s-%s", s.Digits(3), s.Digits(3), s.Digits(4))
}

// ConfirmationNumber returns an 8-digit confirmation number.
func (s *Synth) ConfirmationNumber() string {
	return s.Digits(8)
}

// AccountNumber returns a synthetic account identifier like "ACT-48251".
func (s *Synth) AccountNumber() string {
	return "ACT-" + s.Digits(5)
}

// LocationCode returns a synthetic location code like "LOC-731".
func (s *Synth) LocationCode() string {
	return "LOC-" + s.Digits(3)
}
