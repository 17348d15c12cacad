package errno

const (
	StatusOK             = 10000
	StatusSessionRenewed = 10001
)

const (
	SessionEmpty = 40000 + iota
	SessionExpired
	SessionInvalid
)

const (
	InternalError = 50000 + iota
	InvalidParam
	ItemNotFound
	CartEmpty
	CartUnavailable
)
