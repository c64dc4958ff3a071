package api

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/hrtest"
)

func seedAttendanceRecords(srv *hrtest.Server, n int) {
	for i := 0; i < n; i++ {
		srv.SeedAttendance(models.Attendance{
			ID:         fmt.Sprintf("att-%03d", i),
			EmployeeID: fmt.Sprintf("emp-%d", i%3),
			Date:       "2026-08-01",
			Status:     models.AttendancePresent,
		})
	}
}

func TestAttendanceListPage(t *testing.T) {
	srv, c := newAuthedClient(t)
	seedAttendanceRecords(srv, 45)

	att := NewAttendanceClient(c)
	ctx := context.Background()

	page1, err := att.ListPage(ctx, 1, 20)
	require.NoError(t, err)
	assert.Len(t, page1.Data, 20)
	assert.Equal(t, 45, page1.TotalItems)
	assert.Equal(t, 3, page1.TotalPages)
	assert.True(t, page1.HasNextPage())
	assert.False(t, page1.HasPreviousPage())

	page3, err := att.ListPage(ctx, 3, 20)
	require.NoError(t, err)
	assert.Len(t, page3.Data, 5)
	assert.False(t, page3.HasNextPage())
	assert.True(t, page3.HasPreviousPage())
}

func TestAttendanceByEmployee(t *testing.T) {
	srv, c := newAuthedClient(t)
	seedAttendanceRecords(srv, 9)

	att := NewAttendanceClient(c)
	records, err := att.ByEmployee(context.Background(), "emp-1", "", "")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, rec := range records {
		assert.Equal(t, "emp-1", rec.EmployeeID)
	}
}

func TestAttendanceCheckInThenOut(t *testing.T) {
	_, c := newAuthedClient(t)
	att := NewAttendanceClient(c)
	ctx := context.Background()

	in, err := att.CheckIn(ctx, "emp-7")
	require.NoError(t, err)
	require.NotNil(t, in.CheckIn)
	assert.Nil(t, in.CheckOut)
	assert.Equal(t, models.AttendancePresent, in.Status)

	// Check-out lands on the same day's record, not a new one.
	out, err := att.CheckOut(ctx, "emp-7")
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	require.NotNil(t, out.CheckIn)
	require.NotNil(t, out.CheckOut)
}
