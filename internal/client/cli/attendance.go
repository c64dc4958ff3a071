package cli

import (
	"context"
	"fmt"
	"strconv"
)

// ListAttendance loads and prints one page of attendance records.
// Usage: attendance [page]
func (a *App) ListAttendance(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Usage: attendance [page]")
			return nil
		}
		page = parsed
	}

	if err := a.attendance.Load(ctx, page); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	s := a.attendance.State()
	for _, rec := range s.Items {
		in, out := "-", "-"
		if rec.CheckIn != nil {
			in = *rec.CheckIn
		}
		if rec.CheckOut != nil {
			out = *rec.CheckOut
		}
		printlnFn(rec.ID, "|", rec.EmployeeID, "|", rec.Date, "|", in, "-", out, "|", rec.Status)
	}
	printlnFn(fmt.Sprintf("Page %d/%d (%d records)", s.Page, s.TotalPages, s.TotalItems))
	return nil
}

// CheckIn records the start of an employee's working day.
func (a *App) CheckIn(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: checkin <employeeId>")
		return nil
	}
	if err := a.attendance.CheckIn(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Checked in")
	return nil
}

// CheckOut records the end of an employee's working day.
func (a *App) CheckOut(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: checkout <employeeId>")
		return nil
	}
	if err := a.attendance.CheckOut(ctx, args[0]); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Checked out")
	return nil
}
