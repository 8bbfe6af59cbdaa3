package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/yigit/studentportal/internal/app/models"
	"github.com/yigit/studentportal/internal/app/services"
	"github.com/yigit/studentportal/internal/seed"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	services *services.Services
	out      io.Writer
}

func newCommandLine(svc *services.Services, out io.Writer) *commandLine {
	return &commandLine{services: svc, out: out}
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errHelp
	}

	switch args[0] {
	case "add-staff":
		return cli.addStaff(ctx, args[1:])
	case "seed-courses":
		return cli.seedCourses(ctx)
	case "students":
		return cli.listStudents(ctx, args[1:])
	default:
		fmt.Fprintf(cli.out, "unknown command %q\n", args[0])
		return errHelp
	}
}

func (cli *commandLine) addStaff(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("add-staff", pflag.ContinueOnError)
	fs.SetOutput(cli.out)
	email := fs.String("email", "", "staff email (login name)")
	name := fs.String("name", "", "display name")
	role := fs.String("role", string(models.RoleStaff), "admin or staff")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *name == "" {
		fs.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password: ")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		return errors.New("password must not be empty")
	}

	staff, created, err := cli.services.AuthService.UpsertStaff(ctx, services.StaffInput{
		Email:    *email,
		Password: string(pwd),
		Name:     *name,
		Role:     models.StaffRole(*role),
	})
	if err != nil {
		return err
	}

	verb := "updated"
	if created {
		verb = "created"
	}
	color.New(color.FgGreen).Fprintf(cli.out, "Staff account %s: %s (%s)\n", verb, staff.Email, staff.Role)
	return nil
}

func (cli *commandLine) seedCourses(ctx context.Context) error {
	catalog := seed.DefaultCatalog()
	if err := cli.services.CourseService.ReplaceCatalog(ctx, catalog); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(cli.out, "Course catalog replaced with %d categories\n", len(catalog))
	return nil
}

func (cli *commandLine) listStudents(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("students", pflag.ContinueOnError)
	fs.SetOutput(cli.out)
	status := fs.String("status", "", "Pending, Approved, Rejected or all")
	search := fs.String("search", "", "free-text search")
	all := fs.Bool("all", false, "include disabled students")
	if err := fs.Parse(args); err != nil {
		return err
	}

	students, err := cli.services.StudentService.ListStudents(ctx, services.StudentFilter{
		Status:          *status,
		Search:          *search,
		IncludeDisabled: *all,
	})
	if err != nil {
		return err
	}

	color.New(color.FgYellow).Fprintf(cli.out, "\n%d registrations\n", len(students))
	table := tablewriter.NewWriter(cli.out)
	table.SetHeader([]string{"ID", "Name", "NIC", "Course", "Study Center", "Status", "Disabled", "Applied"})
	for _, s := range students {
		table.Append([]string{
			s.ID,
			s.FullName,
			s.NIC,
			s.SelectedCourse,
			s.PreferredStudyCenter,
			string(s.Status),
			yesNo(s.Disabled),
			s.AppliedDate.Format("2006-01-02"),
		})
	}
	table.Render()
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
