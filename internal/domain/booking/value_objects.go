package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCustomerName = errors.New("customer name is required")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrNegativeExtraGuests = errors.New("extra guests cannot be negative")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,30}$`)
)

const maxNameLength = 255

// Customer is the guest contact block captured on the booking header.
type Customer struct {
	name          string
	email         string
	phone         string
	paymentMethod string
	extraGuests   int
}

func NewCustomer(name, email, phone, paymentMethod string, extraGuests int) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return Customer{}, ErrInvalidCustomerName
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return Customer{}, ErrInvalidPhone
	}
	if extraGuests < 0 {
		return Customer{}, ErrNegativeExtraGuests
	}
	return Customer{
		name:          name,
		email:         email,
		phone:         phone,
		paymentMethod: strings.TrimSpace(paymentMethod),
		extraGuests:   extraGuests,
	}, nil
}

// ReconstructCustomer restores stored contact data without re-validating it.
func ReconstructCustomer(name, email, phone, paymentMethod string, extraGuests int) Customer {
	return Customer{
		name:          name,
		email:         email,
		phone:         phone,
		paymentMethod: paymentMethod,
		extraGuests:   extraGuests,
	}
}

func (c Customer) Name() string          { return c.name }
func (c Customer) Email() string         { return c.email }
func (c Customer) Phone() string         { return c.phone }
func (c Customer) PaymentMethod() string { return c.paymentMethod }
func (c Customer) ExtraGuests() int      { return c.extraGuests }
