package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-relief-sync/models"
)

// Field names accepted by [BridgeRequestValidator.Validate].
const (
	FieldRegion    = "region"
	FieldMessage   = "message"
	FieldUserName  = "user_name"
	FieldMissionID = "mission_id"
)

const (
	MaxMessageLength  = 1000
	MaxUserNameLength = 64
)

// MissionID wraps a path parameter so it can be dispatched by type.
type MissionID int64

// BridgeRequestValidator implements [Validator] for the bodies accepted by
// the local HTTP bridge.
type BridgeRequestValidator struct{}

func NewBridgeRequestValidator() Validator {
	return &BridgeRequestValidator{}
}

func (v *BridgeRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegionSelectionRequest:
		return v.validateRegionSelection(value, fields...)
	case *models.RegionSelectionRequest:
		return v.validateRegionSelection(*value, fields...)

	case models.ChatPostRequest:
		return v.validateChatPost(value, fields...)
	case *models.ChatPostRequest:
		return v.validateChatPost(*value, fields...)

	case models.ProfileRequest:
		return v.validateProfile(value, fields...)
	case *models.ProfileRequest:
		return v.validateProfile(*value, fields...)

	case MissionID:
		return v.validateMissionID(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BridgeRequestValidator) validateRegionSelection(req models.RegionSelectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRegion}
	}

	for _, f := range fields {
		switch f {
		case FieldRegion:
			if !models.Region(req.Region).Valid() {
				return ErrInvalidRegion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateChatPost(req models.ChatPostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldMessage:
			msg := strings.TrimSpace(req.Message)
			if msg == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(msg) > MaxMessageLength {
				return ErrMessageTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateProfile(req models.ProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserName:
			name := strings.TrimSpace(req.UserName)
			if name == "" {
				return ErrEmptyUserName
			}
			if utf8.RuneCountInString(name) > MaxUserNameLength {
				return ErrUserNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BridgeRequestValidator) validateMissionID(id MissionID, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMissionID}
	}

	for _, f := range fields {
		switch f {
		case FieldMissionID:
			if id <= 0 {
				return ErrInvalidMissionID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
