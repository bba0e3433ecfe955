package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/biz-records/models"
	"github.com/stretchr/testify/assert"
)

func TestRecordValidator_Client(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.BusinessClient{Name: "Acme"}))
	requireFieldError(t, v.Validate(ctx, models.BusinessClient{Name: "  "}), FieldName, ErrRequired)
	requireFieldError(t, v.Validate(ctx, &models.BusinessClient{Name: strings.Repeat("n", 151)}), FieldName, ErrTooLong)
}

func TestRecordValidator_ClientInput(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.ClientInput{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ClientInput{Name: strPtr("Acme")}))
	requireFieldError(t, v.Validate(ctx, models.ClientInput{}, FieldName), FieldName, ErrRequired)
	assert.ErrorIs(t, v.Validate(ctx, models.ClientInput{Name: strPtr("x")}, "colour"), ErrUnknownField)
}

func TestRecordValidator_Database(t *testing.T) {
	valid := models.Database{Name: "main", Description: "primary", OwnedBy: 1, CreatedBy: 2}
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, valid))

	tests := []struct {
		name   string
		mutate func(d *models.Database)
		field  string
		target error
	}{
		{"blank name", func(d *models.Database) { d.Name = "" }, FieldName, ErrRequired},
		{"long description", func(d *models.Database) { d.Description = strings.Repeat("d", 201) }, FieldDescription, ErrTooLong},
		{"missing owner", func(d *models.Database) { d.OwnedBy = 0 }, FieldOwnedBy, ErrInvalidReference},
		{"missing creator", func(d *models.Database) { d.CreatedBy = 0 }, FieldCreatedBy, ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			requireFieldError(t, v.Validate(ctx, &d), tt.field, tt.target)
		})
	}
}

func TestRecordValidator_DatabaseInput(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DatabaseInput{Description: strPtr("")}))
	assert.NoError(t, v.Validate(ctx, models.DatabaseInput{Name: strPtr("n"), OwnedBy: intPtr(1)}, FieldName, FieldOwnedBy))
	requireFieldError(t, v.Validate(ctx, models.DatabaseInput{Name: strPtr("n")}, FieldName, FieldOwnedBy), FieldOwnedBy, ErrRequired)
	requireFieldError(t, v.Validate(ctx, models.DatabaseInput{OwnedBy: intPtr(-1)}), FieldOwnedBy, ErrInvalidReference)
}

func TestRecordValidator_Project(t *testing.T) {
	valid := models.Project{Name: "p", Database: 1, Client: 1, CreatedBy: 1}
	v := NewRecordValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, valid))

	p := valid
	p.Client = 0
	requireFieldError(t, v.Validate(ctx, p), FieldClient, ErrInvalidReference)

	p = valid
	p.Database = 0
	requireFieldError(t, v.Validate(ctx, p), FieldDatabase, ErrInvalidReference)
}

func TestRecordValidator_ProjectInput(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, &models.ProjectInput{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.ProjectInput{Client: intPtr(3)}))
	requireFieldError(t,
		v.Validate(ctx, models.ProjectInput{Name: strPtr("p"), Database: intPtr(1)}, FieldName, FieldDatabase, FieldClient),
		FieldClient, ErrRequired)
}

func TestRecordValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewRecordValidator().Validate(context.Background(), "client"), ErrUnsupportedType)
}
