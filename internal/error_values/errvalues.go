package errorvalues

import "errors"

var (
	ErrUserNotFound  = errors.New("user doesn't exists")
	ErrUserSuspended = errors.New("user suspended")
	ErrInvalidToken  = errors.New("invalid token")

	ErrMissionNotFound    = errors.New("mission doesn't exist")
	ErrMissionExists      = errors.New("mission with such id already exists")
	ErrMissionExpired     = errors.New("mission expired")
	ErrQuotaExceeded      = errors.New("mission join quota exceeded")
	ErrInvalidMissionType = errors.New("unknown mission type")
	ErrInvalidEndpoint    = errors.New("invalid mission endpoint")
	ErrInvalidGroupID     = errors.New("invalid group id")

	ErrInvalidTimezone = errors.New("unsupported timezone")
	// Record was changed by a concurrent writer and retries were exhausted
	ErrConcurrentUpdate = errors.New("concurrent update of user mission")
)
