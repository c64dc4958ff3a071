package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

const attendancePath = "/admin/attendance"

// AttendanceClient is the attendance resource plus paging and the
// manager check-in/check-out operations.
type AttendanceClient struct {
	*Resource[models.Attendance, models.AttendanceCreateRequest]
}

// NewAttendanceClient binds the client to /admin/attendance.
func NewAttendanceClient(c *Client) *AttendanceClient {
	return &AttendanceClient{
		Resource: NewResource[models.Attendance, models.AttendanceCreateRequest](c, attendancePath),
	}
}

// ListPage fetches one page of attendance records. Pages are 1-indexed.
func (a *AttendanceClient) ListPage(ctx context.Context, page, pageSize int) (models.PaginatedResponse[models.Attendance], error) {
	var zero models.PaginatedResponse[models.Attendance]

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	data, _, err := a.c.do(ctx, http.MethodGet, attendancePath, q, nil)
	if err != nil {
		return zero, err
	}
	return decodeResource[models.PaginatedResponse[models.Attendance]](data)
}

// ByEmployee lists one employee's attendance, optionally bounded by
// start/end dates (empty strings mean unbounded).
func (a *AttendanceClient) ByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]models.Attendance, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}

	data, _, err := a.c.do(ctx, http.MethodGet, attendancePath, q, nil)
	if err != nil {
		return nil, err
	}
	return decodeResource[[]models.Attendance](data)
}

type checkRequest struct {
	EmployeeID string `json:"employeeId"`
}

// CheckIn records the start of an employee's working day.
func (a *AttendanceClient) CheckIn(ctx context.Context, employeeID string) (models.Attendance, error) {
	return a.check(ctx, "/manager/attendance/check-in", employeeID)
}

// CheckOut records the end of an employee's working day.
func (a *AttendanceClient) CheckOut(ctx context.Context, employeeID string) (models.Attendance, error) {
	return a.check(ctx, "/manager/attendance/check-out", employeeID)
}

func (a *AttendanceClient) check(ctx context.Context, path, employeeID string) (models.Attendance, error) {
	var zero models.Attendance
	data, _, err := a.c.do(ctx, http.MethodPost, path, nil, checkRequest{EmployeeID: employeeID})
	if err != nil {
		return zero, err
	}
	return decodeResource[models.Attendance](data)
}
