package role

import (
	"errors"
	"fmt"
)

// Role is the closed set of caller roles. Keeping it a distinct type forces
// every authorization site through Parse instead of comparing free strings.
type Role string

const (
	Admin   Role = "Admin"
	Doctor  Role = "Doctor"
	Patient Role = "Patient"
)

var ErrUnknownRole = errors.New("unknown role")

func Parse(s string) (Role, error) {
	switch Role(s) {
	case Admin, Doctor, Patient:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) Valid() bool {
	_, err := Parse(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
