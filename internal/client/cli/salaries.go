package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/mobiledv/hrdesk/internal/client/models"
)

// ListSalaries reloads and prints the salary records.
func (a *App) ListSalaries(ctx context.Context) error {
	if err := a.salaries.Load(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	for _, rec := range a.salaries.State().Items {
		printlnFn(rec.ID, "|", rec.EmployeeID, "|", rec.PeriodStart, "..", rec.PeriodEnd,
			"|", fmt.Sprintf("%.2f", rec.NetAmount), "|", rec.PaymentStatus)
	}
	return nil
}

// CalculateSalary prompts for a period and asks the backend to compute
// a salary record for it.
func (a *App) CalculateSalary(ctx context.Context) error {
	employeeID, err := getSimpleText(a.reader, "Employee id", os.Stdout)
	if err != nil {
		return err
	}
	periodStart, err := getSimpleText(a.reader, "Period start (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	periodEnd, err := getSimpleText(a.reader, "Period end (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	bonusText, err := getSimpleText(a.reader, "Bonus (0 for none)", os.Stdout)
	if err != nil {
		return err
	}
	bonus, err := strconv.ParseFloat(bonusText, 64)
	if err != nil {
		printlnFn("Invalid bonus:", bonusText)
		return err
	}

	req := models.SalaryCalculationRequest{
		EmployeeID:  employeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Bonus:       bonus,
	}
	if err := a.salaries.Calculate(ctx, req); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Salary calculated")
	return nil
}

// PaySalary marks a salary record as paid.
func (a *App) PaySalary(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: paysalary <id>")
		return nil
	}
	if err := a.salaries.UpdatePaymentStatus(ctx, args[0], models.PaymentPaid); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Payment recorded")
	return nil
}
