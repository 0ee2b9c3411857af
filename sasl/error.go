/*
 * Copyright (c) 2020 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package sasl

const (
	abortedReason              = "aborted"
	accountDisabledReason      = "account-disabled"
	credentialsExpiredReason   = "credentials-expired"
	encryptionRequiredReason   = "encryption-required"
	incorrectEncodingReason    = "incorrect-encoding"
	invalidAuthzIDReason       = "invalid-authzid"
	invalidMechanismReason     = "invalid-mechanism"
	malformedRequestReason     = "malformed-request"
	mechanismTooWeakReason     = "mechanism-too-weak"
	notAuthorizedReason        = "not-authorized"
	temporaryAuthFailureReason = "temporary-auth-failure"
)

// ErrorCondition represents a recognized SASL failure condition
// (RFC 6120 6.5).
type ErrorCondition uint8

const (
	// Aborted represents an 'aborted' failure condition.
	Aborted ErrorCondition = iota

	// AccountDisabled represents an 'account-disabled' failure condition.
	AccountDisabled

	// CredentialsExpired represents a 'credentials-expired' failure condition.
	CredentialsExpired

	// EncryptionRequired represents an 'encryption-required' failure condition.
	EncryptionRequired

	// IncorrectEncoding represents an 'incorrect-encoding' failure condition.
	IncorrectEncoding

	// InvalidAuthzID represents an 'invalid-authzid' failure condition.
	InvalidAuthzID

	// InvalidMechanism represents an 'invalid-mechanism' failure condition.
	InvalidMechanism

	// MalformedRequest represents a 'malformed-request' failure condition.
	MalformedRequest

	// MechanismTooWeak represents a 'mechanism-too-weak' failure condition.
	MechanismTooWeak

	// NotAuthorized represents a 'not-authorized' failure condition.
	NotAuthorized

	// TemporaryAuthFailure represents a 'temporary-auth-failure' failure condition.
	TemporaryAuthFailure
)

// ErrorConditionFromReason maps a failure condition token to its
// recognized condition. Unrecognized tokens classify as NotAuthorized,
// as RFC 6120 6.5 mandates treating unknown conditions as a generic
// authentication failure.
func ErrorConditionFromReason(reason string) ErrorCondition {
	switch reason {
	case abortedReason:
		return Aborted
	case accountDisabledReason:
		return AccountDisabled
	case credentialsExpiredReason:
		return CredentialsExpired
	case encryptionRequiredReason:
		return EncryptionRequired
	case incorrectEncodingReason:
		return IncorrectEncoding
	case invalidAuthzIDReason:
		return InvalidAuthzID
	case invalidMechanismReason:
		return InvalidMechanism
	case malformedRequestReason:
		return MalformedRequest
	case mechanismTooWeakReason:
		return MechanismTooWeak
	case temporaryAuthFailureReason:
		return TemporaryAuthFailure
	}
	return NotAuthorized
}

// String returns the condition canonical name.
func (ec ErrorCondition) String() string {
	switch ec {
	case Aborted:
		return abortedReason
	case AccountDisabled:
		return accountDisabledReason
	case CredentialsExpired:
		return credentialsExpiredReason
	case EncryptionRequired:
		return encryptionRequiredReason
	case IncorrectEncoding:
		return incorrectEncodingReason
	case InvalidAuthzID:
		return invalidAuthzIDReason
	case InvalidMechanism:
		return invalidMechanismReason
	case MalformedRequest:
		return malformedRequestReason
	case MechanismTooWeak:
		return mechanismTooWeakReason
	case NotAuthorized:
		return notAuthorizedReason
	case TemporaryAuthFailure:
		return temporaryAuthFailureReason
	}
	return ""
}
