package person

import (
	"errors"
	"strings"
)

var (
	ErrNegativeAge    = errors.New("age cannot be negative")
	ErrMissingContact = errors.New("contact number is required")
)

// Profile holds the mutable personal-information portion of a person record.
// Doctors and patients share these fields; the aggregate types that embed a
// Profile replace the class hierarchy the system grew out of.
// Gender is true for male, false for female.
type Profile struct {
	Name    string
	Age     int
	Gender  bool
	Contact string
	Address string
}

// NewProfile validates and normalizes the personal fields. Name and address
// are trimmed; a negative age or empty contact aborts construction.
func NewProfile(name string, age int, gender bool, contact, address string) (Profile, error) {
	if age < 0 {
		return Profile{}, ErrNegativeAge
	}
	if contact == "" {
		return Profile{}, ErrMissingContact
	}
	return Profile{
		Name:    strings.TrimSpace(name),
		Age:     age,
		Gender:  gender,
		Contact: contact,
		Address: strings.TrimSpace(address),
	}, nil
}

// GenderLabel renders the boolean flag the way reports display it.
func (p Profile) GenderLabel() string {
	if p.Gender {
		return "Male"
	}
	return "Female"
}
