package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidRegion    = errors.New("region is not one of CTR, ZN, ZS, ZL, ZO, RM")
	ErrEmptyMessage     = errors.New("message is required")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrEmptyUserName    = errors.New("user name is required")
	ErrUserNameTooLong  = errors.New("user name is too long")
	ErrInvalidMissionID = errors.New("invalid mission id")
)
