package apperrors

import (
	"net/http"
)

// Predeclared errors and factories for recurring business outcomes.

// ErrAlreadyExists converts a repository duplicate into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrInvalidOperation flags an operation not permitted in the current state.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth & account status ---

// ErrInvalidCredentials is returned for every authentication failure: unknown
// username, wrong password, inactive account, pending approval. The uniform
// message prevents user enumeration through the response shape.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

var ErrUsernameTaken = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidToken covers unknown, malformed or already-used tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrTokenExpired is for tokens that were valid once but aged out.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

var ErrInvalidAccountRole = New(
	CodeInvalidOperation,
	"auth",
	"Unknown account role",
	http.StatusBadRequest,
)

// --- Listings & campaigns ---

var ErrSubscriptionRequired = New(
	CodeForbidden,
	"subscription",
	"An active foreclosure subscription is required",
	http.StatusForbidden,
)

var ErrCampaignAlreadySent = New(
	CodeInvalidStatus,
	"campaign",
	"Campaign has already been sent",
	http.StatusConflict,
)

var ErrUnsupportedImportFormat = New(
	CodeValidationFailed,
	"import",
	"Unsupported file format; expected .xlsx or .csv",
	http.StatusUnsupportedMediaType,
)
