package domain

import (
	"errors"
	"os"
)

const (
	RoleDonor    = "donor"
	RoleReceiver = "receiver"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MesaageUserNotAllowed       = "user not allowed"

	JwtSecret = os.Getenv("JWT_SECRET")

	// Closed error kinds every repository translates provider errors into.
	// Handlers map these to HTTP statuses and never see driver error codes.
	ErrNotFound     = errors.New("record not found")
	ErrConflict     = errors.New("conflicting record already exists")
	ErrUnauthorized = errors.New("unauthorized access")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrUserNotAllowed = errors.New("user not allowed")
)
