package message

import "fmt"

// ResultCode is the LDAPResult resultCode ENUMERATED, RFC 4511 §4.1.9.
type ResultCode int

const (
	ResultSuccess                      ResultCode = 0
	ResultOperationsError              ResultCode = 1
	ResultProtocolError                ResultCode = 2
	ResultTimeLimitExceeded            ResultCode = 3
	ResultSizeLimitExceeded            ResultCode = 4
	ResultCompareFalse                 ResultCode = 5
	ResultCompareTrue                  ResultCode = 6
	ResultAuthMethodNotSupported       ResultCode = 7
	ResultStrongerAuthRequired         ResultCode = 8
	ResultReferral                     ResultCode = 10
	ResultAdminLimitExceeded           ResultCode = 11
	ResultUnavailableCriticalExtension ResultCode = 12
	ResultConfidentialityRequired      ResultCode = 13
	ResultSaslBindInProgress           ResultCode = 14
	ResultNoSuchAttribute              ResultCode = 16
	ResultUndefinedAttributeType       ResultCode = 17
	ResultInappropriateMatching        ResultCode = 18
	ResultConstraintViolation          ResultCode = 19
	ResultAttributeOrValueExists       ResultCode = 20
	ResultInvalidAttributeSyntax       ResultCode = 21
	ResultNoSuchObject                 ResultCode = 32
	ResultAliasProblem                 ResultCode = 33
	ResultInvalidDNSyntax              ResultCode = 34
	ResultAliasDereferencingProblem    ResultCode = 36
	ResultInappropriateAuthentication  ResultCode = 48
	ResultInvalidCredentials           ResultCode = 49
	ResultInsufficientAccessRights     ResultCode = 50
	ResultBusy                         ResultCode = 51
	ResultUnavailable                  ResultCode = 52
	ResultUnwillingToPerform           ResultCode = 53
	ResultLoopDetect                   ResultCode = 54
	ResultNamingViolation              ResultCode = 64
	ResultObjectClassViolation         ResultCode = 65
	ResultNotAllowedOnNonLeaf          ResultCode = 66
	ResultNotAllowedOnRDN              ResultCode = 67
	ResultEntryAlreadyExists           ResultCode = 68
	ResultObjectClassModsProhibited    ResultCode = 69
	ResultAffectsMultipleDSAs          ResultCode = 71
	ResultOther                        ResultCode = 80
	ResultCanceled                     ResultCode = 118
	ResultNoSuchOperation              ResultCode = 119
	ResultTooLate                      ResultCode = 120
	ResultCannotCancel                 ResultCode = 121
	ResultAssertionFailed              ResultCode = 122
	ResultAuthorizationDenied          ResultCode = 123
)

func (r ResultCode) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultOperationsError:
		return "OperationsError"
	case ResultProtocolError:
		return "ProtocolError"
	case ResultTimeLimitExceeded:
		return "TimeLimitExceeded"
	case ResultSizeLimitExceeded:
		return "SizeLimitExceeded"
	case ResultCompareFalse:
		return "CompareFalse"
	case ResultCompareTrue:
		return "CompareTrue"
	case ResultAuthMethodNotSupported:
		return "AuthMethodNotSupported"
	case ResultStrongerAuthRequired:
		return "StrongerAuthRequired"
	case ResultReferral:
		return "Referral"
	case ResultAdminLimitExceeded:
		return "AdminLimitExceeded"
	case ResultUnavailableCriticalExtension:
		return "UnavailableCriticalExtension"
	case ResultConfidentialityRequired:
		return "ConfidentialityRequired"
	case ResultSaslBindInProgress:
		return "SaslBindInProgress"
	case ResultNoSuchAttribute:
		return "NoSuchAttribute"
	case ResultUndefinedAttributeType:
		return "UndefinedAttributeType"
	case ResultInappropriateMatching:
		return "InappropriateMatching"
	case ResultConstraintViolation:
		return "ConstraintViolation"
	case ResultAttributeOrValueExists:
		return "AttributeOrValueExists"
	case ResultInvalidAttributeSyntax:
		return "InvalidAttributeSyntax"
	case ResultNoSuchObject:
		return "NoSuchObject"
	case ResultAliasProblem:
		return "AliasProblem"
	case ResultInvalidDNSyntax:
		return "InvalidDNSyntax"
	case ResultAliasDereferencingProblem:
		return "AliasDereferencingProblem"
	case ResultInappropriateAuthentication:
		return "InappropriateAuthentication"
	case ResultInvalidCredentials:
		return "InvalidCredentials"
	case ResultInsufficientAccessRights:
		return "InsufficientAccessRights"
	case ResultBusy:
		return "Busy"
	case ResultUnavailable:
		return "Unavailable"
	case ResultUnwillingToPerform:
		return "UnwillingToPerform"
	case ResultLoopDetect:
		return "LoopDetect"
	case ResultNamingViolation:
		return "NamingViolation"
	case ResultObjectClassViolation:
		return "ObjectClassViolation"
	case ResultNotAllowedOnNonLeaf:
		return "NotAllowedOnNonLeaf"
	case ResultNotAllowedOnRDN:
		return "NotAllowedOnRDN"
	case ResultEntryAlreadyExists:
		return "EntryAlreadyExists"
	case ResultObjectClassModsProhibited:
		return "ObjectClassModsProhibited"
	case ResultAffectsMultipleDSAs:
		return "AffectsMultipleDSAs"
	case ResultOther:
		return "Other"
	case ResultCanceled:
		return "Canceled"
	case ResultNoSuchOperation:
		return "NoSuchOperation"
	case ResultTooLate:
		return "TooLate"
	case ResultCannotCancel:
		return "CannotCancel"
	case ResultAssertionFailed:
		return "AssertionFailed"
	case ResultAuthorizationDenied:
		return "AuthorizationDenied"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}
