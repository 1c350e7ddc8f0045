package session

import (
	"context"
	"log/slog"
)

const (
	menuDeptSales = "View Sales by Department"
	menuNewDept   = "Create New Department"
)

// SupervisorSession is the supervisor menu loop: the department profit report
// and department creation.
type SupervisorSession struct {
	log     *slog.Logger
	reports Reports
	in      PromptSource
	out     DisplaySink
	admin   *AdminFlow
}

func NewSupervisorSession(log *slog.Logger, catalog Catalog, reports Reports, in PromptSource, out DisplaySink) *SupervisorSession {
	return &SupervisorSession{
		log:     log,
		reports: reports,
		in:      in,
		out:     out,
		admin:   NewAdminFlow(log, catalog, in, out),
	}
}

func (s *SupervisorSession) Run(ctx context.Context) error {
	for {
		choice, err := s.in.Ask(Prompt{
			Name:    "action",
			Message: "What would you like to do?",
			Choices: []string{menuDeptSales, menuNewDept, menuExit},
		})
		if err != nil {
			return err
		}

		switch choice {
		case menuDeptSales:
			report, err := s.reports.DepartmentProfitReport(ctx)
			if err != nil {
				return err
			}
			s.out.Table(profitHeader, profitRows(report))
		case menuNewDept:
			if err := s.admin.CreateDepartment(ctx); err != nil {
				return err
			}
		case menuExit:
			s.out.Message("Goodbye!")
			return nil
		}
	}
}
