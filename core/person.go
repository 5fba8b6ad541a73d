package core

import "strings"

// Person is an immutable holder of the parts of a person's name. All fields
// are unexported and assigned only by NewPerson, so a constructed Person
// cannot be modified: uppercasing and formatting are pure queries.
type Person struct {
	firstName  string
	middleName string
	lastName   string
}

// NewPerson stores all three parts verbatim. No trimming, no case
// normalization, no validation: empty strings are accepted and passed
// through. Pass "" for middle when there is none.
func NewPerson(first, middle, last string) Person {
	return Person{
		firstName:  first,
		middleName: middle,
		lastName:   last,
	}
}

func (p Person) FirstName() string {
	return p.firstName
}

func (p Person) MiddleName() string {
	return p.middleName
}

func (p Person) LastName() string {
	return p.lastName
}

// DisplayString returns "first last". The middle name is intentionally excluded.
func (p Person) DisplayString() string {
	return p.firstName + " " + p.lastName
}

// AllCaps returns DisplayString with every character mapped to uppercase,
// leaving the receiver untouched.
func (p Person) AllCaps() string {
	return strings.ToUpper(p.DisplayString())
}
