package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

const salariesPath = "/admin/salaries"

// SalariesClient covers the salary endpoints: the record list, per
// employee history, server-side calculation, and payment status updates.
type SalariesClient struct {
	c *Client
}

// NewSalariesClient binds the client to /admin/salaries.
func NewSalariesClient(c *Client) *SalariesClient {
	return &SalariesClient{c: c}
}

// List fetches all salary records.
func (s *SalariesClient) List(ctx context.Context) ([]models.SalaryRecord, error) {
	data, _, err := s.c.do(ctx, http.MethodGet, salariesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResource[[]models.SalaryRecord](data)
}

// History fetches the salary history of one employee.
func (s *SalariesClient) History(ctx context.Context, employeeID string) ([]models.SalaryRecord, error) {
	data, _, err := s.c.do(ctx, http.MethodGet, salariesPath+"/history/"+url.PathEscape(employeeID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResource[[]models.SalaryRecord](data)
}

// Calculate asks the backend to compute a salary record for a period.
func (s *SalariesClient) Calculate(ctx context.Context, req models.SalaryCalculationRequest) (models.SalaryRecord, error) {
	var zero models.SalaryRecord
	data, _, err := s.c.do(ctx, http.MethodPost, salariesPath+"/calculate", nil, req)
	if err != nil {
		return zero, err
	}
	return decodeResource[models.SalaryRecord](data)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentStatus sets the payment status of an existing record.
func (s *SalariesClient) UpdatePaymentStatus(ctx context.Context, id, status string) (models.SalaryRecord, error) {
	var zero models.SalaryRecord
	data, _, err := s.c.do(ctx, http.MethodPut, salariesPath+"/"+url.PathEscape(id)+"/status", nil, statusRequest{Status: status})
	if err != nil {
		return zero, err
	}
	return decodeResource[models.SalaryRecord](data)
}
