package cli

import (
	"context"
	"fmt"
)

// ShowDashboard loads and prints the aggregated overview.
func (a *App) ShowDashboard(ctx context.Context) error {
	if err := a.dashboard.Load(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	data := a.dashboard.State().Data
	printlnFn(fmt.Sprintf("Employees: %d total, %d active", data.TotalEmployees, data.ActiveEmployees))
	printlnFn(fmt.Sprintf("Projects:  %d total, %d active", data.TotalProjects, data.ActiveProjects))
	printlnFn(fmt.Sprintf("Pending salaries: %d", data.PendingSalaries))
	printlnFn(fmt.Sprintf("Attendance rate:  %.1f%%", data.MonthlyAttendanceRate))
	if len(data.RecentEmployees) > 0 {
		printlnFn("Recently added employees:")
		for _, e := range data.RecentEmployees {
			printlnFn("  -", e.Name, "("+e.Position+")")
		}
	}
	return nil
}

// GenerateReport runs one of the per-collection reports.
// Usage: report <employees|attendance|salaries|projects>
func (a *App) GenerateReport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: report <employees|attendance|salaries|projects>")
		return nil
	}

	var err error
	switch args[0] {
	case "employees":
		err = a.reports.GenerateEmployeeReport(ctx)
	case "attendance":
		err = a.reports.GenerateAttendanceReport(ctx)
	case "salaries":
		err = a.reports.GenerateSalaryReport(ctx)
	case "projects":
		err = a.reports.GenerateProjectReport(ctx)
	default:
		printlnFn("Unknown report:", args[0])
		return nil
	}
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	s := a.reports.State()
	switch args[0] {
	case "employees":
		printlnFn(fmt.Sprintf("Employee report: %d rows", len(s.EmployeeReport)))
	case "attendance":
		printlnFn(fmt.Sprintf("Attendance report: %d rows", len(s.AttendanceReport)))
	case "salaries":
		printlnFn(fmt.Sprintf("Salary report: %d rows", len(s.SalaryReport)))
	case "projects":
		printlnFn(fmt.Sprintf("Project report: %d rows", len(s.ProjectReport)))
	}
	return nil
}
