package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

const employeesPath = "/admin/employees"

// EmployeesClient is the employees resource plus the multipart create
// the backend requires for new employee records (fields + photo).
type EmployeesClient struct {
	*Resource[models.Employee, models.EmployeeCreateRequest]
}

// NewEmployeesClient binds the client to /admin/employees.
func NewEmployeesClient(c *Client) *EmployeesClient {
	return &EmployeesClient{
		Resource: NewResource[models.Employee, models.EmployeeCreateRequest](c, employeesPath),
	}
}

// ByDepartment lists employees belonging to one department.
func (e *EmployeesClient) ByDepartment(ctx context.Context, department string) ([]models.Employee, error) {
	data, _, err := e.c.do(ctx, http.MethodGet, employeesPath+"/department/"+department, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResource[[]models.Employee](data)
}

// CreateWithPhoto submits a new employee as multipart form data carrying
// the structured fields plus a JPEG photo attachment.
func (e *EmployeesClient) CreateWithPhoto(ctx context.Context, req models.EmployeeCreateRequest, photo []byte) (models.Employee, error) {
	var zero models.Employee

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"userId":       req.UserID,
		"name":         req.Name,
		"position":     req.Position,
		"department":   req.Department,
		"salaryType":   string(req.SalaryType),
		"salaryAmount": strconv.FormatFloat(req.SalaryAmount, 'f', -1, 64),
		"isActive":     strconv.FormatBool(req.IsActive),
	}
	if req.SalaryRate != nil {
		fields["salaryRate"] = strconv.FormatFloat(*req.SalaryRate, 'f', -1, 64)
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return zero, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	if err != nil {
		return zero, fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return zero, fmt.Errorf("write photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return zero, fmt.Errorf("finish multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.c.requestURL(employeesPath, nil), &buf)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	data, _, err := e.c.send(httpReq)
	if err != nil {
		return zero, err
	}
	return decodeResource[models.Employee](data)
}
