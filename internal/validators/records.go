package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/biz-records/models"
)

// Field names of business records, as they appear on the wire.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldOwnedBy     = "owned_by"
	FieldCreatedBy   = "created_by"
	FieldDatabase    = "database"
	FieldClient      = "client"
)

const (
	MaxRecordNameLength  = 150
	MaxDescriptionLength = 200
)

// RecordValidator validates business clients, databases and projects and
// their partial-update inputs.
//
// For a full record every default field is checked. For an input only the
// provided fields are checked; passing field names turns them into required
// fields, which is how a full replacement (PUT) is validated.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BusinessClient:
		return v.validateClient(value)
	case *models.BusinessClient:
		return v.validateClient(*value)
	case models.ClientInput:
		return v.validateClientInput(value, fields...)
	case *models.ClientInput:
		return v.validateClientInput(*value, fields...)

	case models.Database:
		return v.validateDatabase(value)
	case *models.Database:
		return v.validateDatabase(*value)
	case models.DatabaseInput:
		return v.validateDatabaseInput(value, fields...)
	case *models.DatabaseInput:
		return v.validateDatabaseInput(*value, fields...)

	case models.Project:
		return v.validateProject(value)
	case *models.Project:
		return v.validateProject(*value)
	case models.ProjectInput:
		return v.validateProjectInput(value, fields...)
	case *models.ProjectInput:
		return v.validateProjectInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateClient(c models.BusinessClient) error {
	return checkName(c.Name)
}

func (v *RecordValidator) validateClientInput(in models.ClientInput, required ...string) error {
	if in == (models.ClientInput{}) && len(required) == 0 {
		return ErrNoFieldsToUpdate
	}

	for _, f := range required {
		switch f {
		case FieldName:
			if in.Name == nil {
				return fieldError(f, ErrRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	if in.Name != nil {
		return checkName(*in.Name)
	}

	return nil
}

func (v *RecordValidator) validateDatabase(d models.Database) error {
	if err := checkName(d.Name); err != nil {
		return err
	}
	if err := checkDescription(d.Description); err != nil {
		return err
	}
	if err := checkReference(FieldOwnedBy, d.OwnedBy); err != nil {
		return err
	}

	return checkReference(FieldCreatedBy, d.CreatedBy)
}

func (v *RecordValidator) validateDatabaseInput(in models.DatabaseInput, required ...string) error {
	if in == (models.DatabaseInput{}) && len(required) == 0 {
		return ErrNoFieldsToUpdate
	}

	for _, f := range required {
		var missing bool
		switch f {
		case FieldName:
			missing = in.Name == nil
		case FieldDescription:
			missing = in.Description == nil
		case FieldOwnedBy:
			missing = in.OwnedBy == nil
		default:
			return ErrUnknownField
		}
		if missing {
			return fieldError(f, ErrRequired)
		}
	}

	if in.Name != nil {
		if err := checkName(*in.Name); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkDescription(*in.Description); err != nil {
			return err
		}
	}
	if in.OwnedBy != nil {
		return checkReference(FieldOwnedBy, *in.OwnedBy)
	}

	return nil
}

func (v *RecordValidator) validateProject(p models.Project) error {
	if err := checkName(p.Name); err != nil {
		return err
	}
	if err := checkDescription(p.Description); err != nil {
		return err
	}
	if err := checkReference(FieldDatabase, p.Database); err != nil {
		return err
	}
	if err := checkReference(FieldClient, p.Client); err != nil {
		return err
	}

	return checkReference(FieldCreatedBy, p.CreatedBy)
}

func (v *RecordValidator) validateProjectInput(in models.ProjectInput, required ...string) error {
	if in == (models.ProjectInput{}) && len(required) == 0 {
		return ErrNoFieldsToUpdate
	}

	for _, f := range required {
		var missing bool
		switch f {
		case FieldName:
			missing = in.Name == nil
		case FieldDescription:
			missing = in.Description == nil
		case FieldDatabase:
			missing = in.Database == nil
		case FieldClient:
			missing = in.Client == nil
		default:
			return ErrUnknownField
		}
		if missing {
			return fieldError(f, ErrRequired)
		}
	}

	if in.Name != nil {
		if err := checkName(*in.Name); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := checkDescription(*in.Description); err != nil {
			return err
		}
	}
	if in.Database != nil {
		if err := checkReference(FieldDatabase, *in.Database); err != nil {
			return err
		}
	}
	if in.Client != nil {
		return checkReference(FieldClient, *in.Client)
	}

	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fieldError(FieldName, ErrRequired)
	}
	if utf8.RuneCountInString(name) > MaxRecordNameLength {
		return fieldError(FieldName, ErrTooLong)
	}

	return nil
}

func checkDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fieldError(FieldDescription, ErrTooLong)
	}

	return nil
}

func checkReference(field string, id int64) error {
	if id <= 0 {
		return fieldError(field, ErrInvalidReference)
	}

	return nil
}
