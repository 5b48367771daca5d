package tickets

import "errors"

// Storage conditions.
var ErrAlreadyExists = errors.New("ticket already exists")
var ErrNotFound = errors.New("ticket not found")
var ErrInternal = errors.New("internal failure")

// Binder conditions, one per failure class an operation may report.
var ErrProvisioning = errors.New("failed to provision a topic for the ticket")
var ErrNoTicket = errors.New("no active ticket for the user")
var ErrUnknownThread = errors.New("thread is not bound to any ticket")
var ErrDeliveryBlocked = errors.New("delivery to the user is blocked")
