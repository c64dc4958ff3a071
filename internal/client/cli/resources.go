package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

// ListEmployees reloads and prints the employee list.
func (a *App) ListEmployees(ctx context.Context) error {
	if err := a.employees.Load(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, e := range a.employees.State().Items {
		active := "inactive"
		if e.IsActive {
			active = "active"
		}
		printlnFn(e.ID, "|", e.Name, "|", e.Position, "|", e.Department, "|", active)
	}
	return nil
}

// AddEmployee prompts for the new employee's fields and a photo file,
// then submits the multipart create.
func (a *App) AddEmployee(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	position, err := getSimpleText(a.reader, "Position", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department", os.Stdout)
	if err != nil {
		return err
	}
	salaryType, err := getSimpleText(a.reader, "Salary type (MONTHLY/DAILY/HOURLY)", os.Stdout)
	if err != nil {
		return err
	}
	amountText, err := getSimpleText(a.reader, "Salary amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		printlnFn("Invalid amount:", amountText)
		return err
	}
	photoPath, err := getSimpleText(a.reader, "Photo file (jpeg)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := os.ReadFile(photoPath)
	if err != nil {
		printlnFn("Cannot read photo:", err.Error())
		return err
	}

	req := models.EmployeeCreateRequest{
		UserID:       userID,
		Name:         name,
		Position:     position,
		Department:   department,
		SalaryType:   models.SalaryType(salaryType),
		SalaryAmount: amount,
		IsActive:     true,
	}
	if err := a.employees.CreateWithPhoto(ctx, req, photo); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Employee created")
	return nil
}

// RemoveEmployee deletes an employee by id.
func (a *App) RemoveEmployee(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rmemployee <id>")
		return nil
	}
	if err := a.employees.Delete(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Employee removed")
	return nil
}

// ListUsers reloads and prints the user accounts.
func (a *App) ListUsers(ctx context.Context) error {
	if err := a.users.Load(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, u := range a.users.State().Items {
		printlnFn(u.ID, "|", u.FullName, "|", u.Email, "|", u.Role)
	}
	return nil
}

// ListProjects reloads and prints the project list.
func (a *App) ListProjects(ctx context.Context) error {
	if err := a.projects.Load(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, p := range a.projects.State().Items {
		printlnFn(p.ID, "|", p.Name, "|", p.Status, "|", fmt.Sprintf("%d members", len(p.EmployeeIDs)))
	}
	return nil
}

// AddProject prompts for a new project's fields and creates it.
func (a *App) AddProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Project name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	startDate, err := getSimpleText(a.reader, "Start date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.ProjectCreateRequest{
		Name:        name,
		Description: description,
		StartDate:   startDate,
		Status:      models.ProjectActive,
	}
	if err := a.projects.Create(ctx, req); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Project created")
	return nil
}

// RemoveProject deletes a project by id.
func (a *App) RemoveProject(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rmproject <id>")
		return nil
	}
	if err := a.projects.Delete(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Project removed")
	return nil
}
