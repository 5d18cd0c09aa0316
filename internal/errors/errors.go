package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that map it to a transport response
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindForbidden       Kind = "forbidden"
	KindInvalidArgument Kind = "invalid_argument"
	KindInternal        Kind = "internal"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a violated state precondition
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reason == t.Reason
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents an actor lacking the required relationship
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrIdeaNotFound           = &NotFoundError{Entity: "idea"}
	ErrClaimApprovalNotFound  = &NotFoundError{Entity: "pending claim approval"}
	ErrBountyNotFound         = &NotFoundError{Entity: "bounty"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrTeamNotFound           = &NotFoundError{Entity: "team"}
	ErrManagerNotFound        = &NotFoundError{Entity: "team manager"}
	ErrNotificationNotFound   = &NotFoundError{Entity: "notification"}
	ErrManagerRequestNotFound = &NotFoundError{Entity: "manager request"}
)

// State Conflict Errors
var (
	ErrIdeaNotOpen               = &ConflictError{Entity: "idea", Reason: "idea is not open for claiming"}
	ErrIdeaNotClaimed            = &ConflictError{Entity: "idea", Reason: "idea is not claimed"}
	ErrIdeaAlreadyComplete       = &ConflictError{Entity: "idea", Reason: "idea is already complete"}
	ErrActiveClaimExists         = &ConflictError{Entity: "claim approval", Reason: "a pending or approved claim already exists for this idea"}
	ErrClaimRaceLost             = &ConflictError{Entity: "claim approval", Reason: "idea was claimed by another approval"}
	ErrClaimApprovalTerminal     = &ConflictError{Entity: "claim approval", Reason: "approval is already resolved"}
	ErrApprovalSlotAlreadySet    = &ConflictError{Entity: "claim approval", Reason: "decision already recorded for this approver"}
	ErrBountyAlreadyResolved     = &ConflictError{Entity: "bounty", Reason: "approval already recorded"}
	ErrBountyNotGated            = &ConflictError{Entity: "bounty", Reason: "bounty does not require approval"}
	ErrManagerRequestResolved    = &ConflictError{Entity: "manager request", Reason: "request is already resolved"}
	ErrManagerRequestPending     = &ConflictError{Entity: "manager request", Reason: "a pending request already exists"}
	ErrTeamAlreadyManaged        = &ConflictError{Entity: "team", Reason: "team already has a manager"}
	ErrUserAlreadyInTeam         = &ConflictError{Entity: "user", Reason: "user is already a member of this team"}
	ErrSubStatusTransitionDenied = &ConflictError{Entity: "idea", Reason: "sub-status transition not allowed"}
)

// Validation Errors
var (
	ErrProgressOutOfRange    = &ValidationError{Field: "progress_percentage", Message: "must be between 0 and 100"}
	ErrBlockedReasonRequired = &ValidationError{Field: "blocked_reason", Message: "required when sub-status is blocked or on_hold"}
	ErrInvalidSubStatus      = &ValidationError{Field: "sub_status", Message: "unknown sub-status"}
	ErrInvalidDecision       = &ValidationError{Field: "decision", Message: "must be approve or deny"}
	ErrInvalidApproverRole   = &ValidationError{Field: "approver_role", Message: "must be owner or manager"}
	ErrNegativeAmount        = &ValidationError{Field: "amount", Message: "must not be negative"}
	ErrInvalidPagination     = &ValidationError{Field: "pagination", Message: "invalid pagination parameters"}
)

// Authorization Errors
var (
	ErrNotIdeaOwner          = &ForbiddenError{Message: "only the idea owner may decide in the owner slot"}
	ErrNotClaimerManager     = &ForbiddenError{Message: "only the claimer's manager may decide in the manager slot"}
	ErrNotAuthorizedForIdea  = &ForbiddenError{Message: "actor is not the claimer, a responsible manager or an admin"}
	ErrAdminRequired         = &ForbiddenError{Message: "admin role required"}
	ErrUserNotVerified       = &ForbiddenError{Message: "user profile is not verified"}
	ErrBountyOwnerOrAdmin    = &ForbiddenError{Message: "only the idea owner or an admin may manage bounties"}
	ErrMissingActorInContext = &AuthenticationError{Message: "actor email not found in context"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// KindOf reports the taxonomy kind of err
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case IsNotFound(err):
		return KindNotFound
	case IsConflict(err):
		return KindConflict
	case IsForbidden(err):
		return KindForbidden
	case IsValidation(err):
		return KindInvalidArgument
	default:
		return KindInternal
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
