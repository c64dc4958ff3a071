package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(args ...any) { fmt.Println(args...) }

const (
	helpAnonymous = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: whoami, refresh, employees, addemployee, rmemployee, " +
		"users, projects, addproject, rmproject, attendance [page], checkin <employeeId>, " +
		"checkout <employeeId>, salaries, calcsalary, paysalary <id>, dashboard, " +
		"report <employees|attendance|salaries|projects>, logout, exit"
)

// repl reads commands line by line and dispatches them. The command set
// follows the session phase: until login succeeds only the auth flow is
// reachable. Handler errors are already printed by the handlers; the
// loop itself only reports unknown commands.
func (a *App) repl(ctx context.Context) {
	printlnFn("HR desktop client (type 'help' for commands)")

	for {
		fmt.Printf("hrdesk %s > ", a.prompt())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "refresh":
			_ = a.RefreshProfile(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "employees":
			_ = a.ListEmployees(ctx)
		case "addemployee":
			_ = a.AddEmployee(ctx)
		case "rmemployee":
			_ = a.RemoveEmployee(ctx, args)
		case "users":
			_ = a.ListUsers(ctx)
		case "projects":
			_ = a.ListProjects(ctx)
		case "addproject":
			_ = a.AddProject(ctx)
		case "rmproject":
			_ = a.RemoveProject(ctx, args)
		case "attendance":
			_ = a.ListAttendance(ctx, args)
		case "checkin":
			_ = a.CheckIn(ctx, args)
		case "checkout":
			_ = a.CheckOut(ctx, args)
		case "salaries":
			_ = a.ListSalaries(ctx)
		case "calcsalary":
			_ = a.CalculateSalary(ctx)
		case "paysalary":
			_ = a.PaySalary(ctx, args)
		case "dashboard":
			_ = a.ShowDashboard(ctx)
		case "report":
			_ = a.GenerateReport(ctx, args)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
