package payment

// AuthorizationRef carries the settlement identifiers handed back by a
// payment gateway: the gateway transaction id and the acquirer authorization
// code. The zero value is the empty reference, used for methods that settle
// without authorization.
type AuthorizationRef struct {
	transactionID     string
	authorizationCode string
}

// NewAuthorizationRef creates a reference from gateway identifiers.
// Either field may be empty while the gateway interaction is incomplete.
func NewAuthorizationRef(transactionID, authorizationCode string) AuthorizationRef {
	return AuthorizationRef{
		transactionID:     transactionID,
		authorizationCode: authorizationCode,
	}
}

// TransactionID returns the gateway transaction identifier.
func (r AuthorizationRef) TransactionID() string {
	return r.transactionID
}

// AuthorizationCode returns the acquirer authorization code.
func (r AuthorizationRef) AuthorizationCode() string {
	return r.authorizationCode
}

// IsEmpty reports whether no identifier is present at all.
func (r AuthorizationRef) IsEmpty() bool {
	return r.transactionID == "" && r.authorizationCode == ""
}

// IsComplete reports whether both identifiers are present.
func (r AuthorizationRef) IsComplete() bool {
	return r.transactionID != "" && r.authorizationCode != ""
}
