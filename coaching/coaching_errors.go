package coaching

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrClientNotFound = errors.New("client not found")

var ErrLeadNotFound = errors.New("lead not found")

var ErrReminderNotFound = errors.New("reminder not found")

var ErrTestimonialNotFound = errors.New("testimonial not found")

var ErrInvalidInput = errors.New("invalid input")

var ErrInvalidDiscount = errors.New("discount is not one of the allowed percentages")

var ErrInvalidService = errors.New("unknown service type")

var ErrDuplicateClient = errors.New("a client with this name already exists")

var ErrAlreadyClient = errors.New("this person is already a client")

var ErrConfirmationRequired = errors.New("destructive action requires confirmation")

var ErrPriceMismatch = errors.New("final price does not match base price and discount")
