package session

// Store persists the credential across restarts. Set and Clear act on all
// four fields as one atomic unit; Get folds any partially-populated state to
// the zero Credential rather than ever returning some fields without others.
type Store interface {
	Get() (Credential, error)
	Set(cred Credential) error
	Clear() error
}
