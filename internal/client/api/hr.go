package api

import "github.com/mobiledv/hrdesk/internal/client/models"

// HR bundles every backend client over one shared low-level Client.
// The composition root builds a single HR value and hands the pieces
// to the controllers that need them.
type HR struct {
	Auth       *AuthClient
	Employees  *EmployeesClient
	Users      *Resource[models.User, models.UserCreateRequest]
	Attendance *AttendanceClient
	Salaries   *SalariesClient
	Projects   *Resource[models.Project, models.ProjectCreateRequest]
}

// NewHR wires all resource clients onto c.
func NewHR(c *Client) *HR {
	return &HR{
		Auth:       NewAuthClient(c),
		Employees:  NewEmployeesClient(c),
		Users:      NewResource[models.User, models.UserCreateRequest](c, "/admin/users"),
		Attendance: NewAttendanceClient(c),
		Salaries:   NewSalariesClient(c),
		Projects:   NewResource[models.Project, models.ProjectCreateRequest](c, "/admin/projects"),
	}
}
