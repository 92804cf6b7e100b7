package domain

type CtxKey string

const (
	KeyRequestID    CtxKey = "RequestID"
	KeyRemoteIP     CtxKey = "RemoteIP"
	KeyUserAgent    CtxKey = "UserAgent"
	KeyAdminSubject CtxKey = "AdminSubject"
)

// RequestMeta carries the caller details recorded alongside a submission.
type RequestMeta struct {
	RequestID string
	RemoteIP  string
	UserAgent string
}
