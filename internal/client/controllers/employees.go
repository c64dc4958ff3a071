package controllers

import (
	"context"

	"github.com/mobiledv/hrdesk/internal/client/api"
	"github.com/mobiledv/hrdesk/internal/client/models"
	"github.com/mobiledv/hrdesk/internal/logging"
)

// EmployeesController drives the employees screen. Besides plain CRUD
// it supports the multipart create carrying a photo.
type EmployeesController struct {
	*ListController[models.Employee, models.EmployeeCreateRequest]
	api *api.EmployeesClient
}

// NewEmployeesController builds the controller over the employees client.
func NewEmployeesController(a *api.EmployeesClient, log logging.Logger) *EmployeesController {
	return &EmployeesController{
		ListController: NewListController[models.Employee, models.EmployeeCreateRequest](a, log, "employees"),
		api:            a,
	}
}

// CreateWithPhoto submits a new employee with a photo attachment and
// reloads the list on success.
func (c *EmployeesController) CreateWithPhoto(ctx context.Context, req models.EmployeeCreateRequest, photo []byte) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		_, err := c.api.CreateWithPhoto(ctx, req, photo)
		return err
	})
}
