package service

import "errors"

var (
	// ErrRegionUndefined is returned when an action needs a region and none
	// is persisted.
	ErrRegionUndefined = errors.New("region is not defined")
	// ErrInvalidRegion is returned for values outside the region set.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrNoPendingSelection is returned by Select when nothing awaits a region.
	ErrNoPendingSelection = errors.New("no pending region selection")
	// ErrRegionNotSaved is returned by Select when persisting the choice failed.
	ErrRegionNotSaved = errors.New("region was not saved")

	ErrDeviceTokenMissing = errors.New("device token is not available")
	ErrUserNameRequired   = errors.New("user name is required")
	ErrEmptyMessage       = errors.New("message is empty")
	ErrMissionNotFound    = errors.New("mission not found")
)
