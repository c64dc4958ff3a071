package controllers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/hrtest"
)

func newBackend(t *testing.T) (*hrtest.Server, *api.HR) {
	t.Helper()

	srv := hrtest.NewServer()
	t.Cleanup(srv.Close)

	admin := srv.AddUser("Admin", "admin@corp.test", "pass", models.RoleAdmin)
	token := srv.TokenFor(admin.ID)

	return srv, api.NewHR(api.New(srv.URL, func() string { return token }))
}

func TestAttendanceControllerPaging(t *testing.T) {
	srv, hr := newBackend(t)
	for i := 0; i < 45; i++ {
		srv.SeedAttendance(models.Attendance{
			ID:         fmt.Sprintf("att-%03d", i),
			EmployeeID: "emp-1",
			Date:       "2026-08-01",
			Status:     models.AttendancePresent,
		})
	}

	c := NewAttendanceController(hr.Attendance, testLogger())
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, 1))
	s := c.State()
	assert.Len(t, s.Items, DefaultPageSize)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 45, s.TotalItems)
	assert.Equal(t, 3, s.TotalPages)
	assert.True(t, s.HasNextPage())
	assert.False(t, s.HasPreviousPage())

	require.NoError(t, c.Load(ctx, 3))
	s = c.State()
	assert.Len(t, s.Items, 5)
	assert.False(t, s.HasNextPage())
	assert.True(t, s.HasPreviousPage())

	// Out-of-range page numbers clamp to the first page.
	require.NoError(t, c.Load(ctx, 0))
	assert.Equal(t, 1, c.State().Page)
}

func TestAttendanceControllerMutationReloadsCurrentPage(t *testing.T) {
	srv, hr := newBackend(t)
	seeded := srv.SeedAttendance(models.Attendance{
		EmployeeID: "emp-1",
		Date:       "2026-08-01",
		Status:     models.AttendanceAbsent,
	})

	c := NewAttendanceController(hr.Attendance, testLogger())
	ctx := context.Background()
	require.NoError(t, c.Load(ctx, 1))

	require.NoError(t, c.Update(ctx, seeded.ID, models.AttendanceCreateRequest{
		EmployeeID: "emp-1",
		Date:       "2026-08-01",
		Status:     models.AttendancePresent,
	}))
	s := c.State()
	require.Len(t, s.Items, 1)
	assert.Equal(t, models.AttendancePresent, s.Items[0].Status)

	require.NoError(t, c.Delete(ctx, seeded.ID))
	assert.Empty(t, c.State().Items)
}

func TestAttendanceControllerCheckInShowsUp(t *testing.T) {
	_, hr := newBackend(t)
	c := NewAttendanceController(hr.Attendance, testLogger())
	ctx := context.Background()

	require.NoError(t, c.Load(ctx, 1))
	require.NoError(t, c.CheckIn(ctx, "emp-9"))

	s := c.State()
	require.Len(t, s.Items, 1)
	assert.Equal(t, "emp-9", s.Items[0].EmployeeID)
	assert.NotNil(t, s.Items[0].CheckIn)
}

func TestAttendanceControllerLoadFailure(t *testing.T) {
	srv, hr := newBackend(t)
	c := NewAttendanceController(hr.Attendance, testLogger())
	ctx := context.Background()

	srv.SeedAttendance(models.Attendance{EmployeeID: "emp-1", Date: "2026-08-01", Status: models.AttendancePresent})
	require.NoError(t, c.Load(ctx, 1))

	srv.Close()
	require.Error(t, c.Load(ctx, 1))

	s := c.State()
	// Last good page survives the failure.
	assert.Len(t, s.Items, 1)
	assert.NotEmpty(t, s.Error)
	assert.False(t, s.IsLoading)
}
