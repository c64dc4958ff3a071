package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

func TestEmployeesCreateWithPhoto(t *testing.T) {
	_, c := newAuthedClient(t)
	employees := NewEmployeesClient(c)

	rate := 18.5
	created, err := employees.CreateWithPhoto(context.Background(), models.EmployeeCreateRequest{
		UserID:       "u-1",
		Name:         "Carol",
		Position:     "Technician",
		Department:   "Maintenance",
		SalaryType:   models.SalaryHourly,
		SalaryAmount: 2960,
		SalaryRate:   &rate,
		IsActive:     true,
	}, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Carol", created.Name)
	assert.Equal(t, models.SalaryHourly, created.SalaryType)
	require.NotNil(t, created.SalaryRate)
	assert.Equal(t, 18.5, *created.SalaryRate)
	assert.True(t, created.IsActive)

	// The record is visible through the plain resource methods.
	got, err := employees.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carol", got.Name)
}

func TestEmployeesUpdateAndDelete(t *testing.T) {
	srv, c := newAuthedClient(t)
	employees := NewEmployeesClient(c)
	ctx := context.Background()

	seeded := srv.SeedEmployee(models.Employee{
		Name:         "Dan",
		Position:     "Clerk",
		Department:   "Finance",
		SalaryType:   models.SalaryMonthly,
		SalaryAmount: 4000,
		IsActive:     true,
	})

	updated, err := employees.Update(ctx, seeded.ID, models.EmployeeCreateRequest{
		Name:         "Dan",
		Position:     "Senior Clerk",
		Department:   "Finance",
		SalaryType:   models.SalaryMonthly,
		SalaryAmount: 4500,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Clerk", updated.Position)
	assert.Equal(t, 4500.0, updated.SalaryAmount)

	ok, err := employees.Delete(ctx, seeded.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := employees.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
