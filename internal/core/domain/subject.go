package domain

import "fmt"

// Subject is a registered economic subject as returned by the ARES registry.
// Field names mirror the registry's JSON response; only the fields this tool
// reads are mapped, the rest of the payload is dropped on decode.
type Subject struct {
	// Name is the registered business name (obchodni jmeno).
	Name string `json:"obchodniJmeno"`

	// ICO is the identifier as echoed by the registry. Not necessarily
	// byte-identical to the canonical form sent in the request.
	ICO string `json:"ico"`

	// DIC is the tax identifier, when assigned.
	DIC string `json:"dic,omitempty"`

	// LegalForm is the registry code of the subject's legal form.
	LegalForm string `json:"pravniForma,omitempty"`

	// Established is the registration date, ISO 8601.
	Established string `json:"datumVzniku,omitempty"`

	// Seat is the registered address of the subject.
	Seat Address `json:"sidlo"`
}

// Address is the registered seat. The registry provides many structured
// address fields; the single pre-rendered text form is the one used in
// formal communication.
type Address struct {
	// Text is the full postal address rendered as one line.
	Text string `json:"textovaAdresa"`

	// CountryCode is the ISO country code of the seat.
	CountryCode string `json:"kodStatu,omitempty"`
}

// FormalDescription renders the subject the way Czech formal written
// communication identifies it: name, identifier and full address, joined by
// fixed connective phrasing. Returns ErrIncompleteRecord when any of the
// three fields is absent; sparse upstream records are normal, not a fault.
func (s *Subject) FormalDescription() (string, error) {
	if s.Name == "" || s.ICO == "" || s.Seat.Text == "" {
		return "", ErrIncompleteRecord
	}
	return fmt.Sprintf("%s, IČO %s, sídlem %s", s.Name, s.ICO, s.Seat.Text), nil
}
