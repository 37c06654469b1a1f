package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/meucampus/planner/core/account"
	"github.com/meucampus/planner/core/class"
	"github.com/meucampus/planner/core/dashboard"
	"github.com/meucampus/planner/core/subject"
	"github.com/meucampus/planner/core/task"
	"github.com/meucampus/planner/core/teacher"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	accountSvc   *account.Service
	teacherSvc   *teacher.Service
	subjectSvc   *subject.Service
	classSvc     *class.Service
	taskSvc      *task.Service
	dashboardSvc *dashboard.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login -email EMAIL - log into Meu Campus; the password is prompted next")
	fmt.Println("  logout - discard the stored session")
	fmt.Println("  me - show the logged in profile")
	fmt.Println("  teachers|subjects|classes|tasks [-page N] [-perpage N] [-search TEXT] - list records")
	fmt.Println("  schedule -subject ID -teacher ID -room ROOM -start 2006-01-02T15:04 -end 2006-01-02T15:04 - schedule a one-off class")
	fmt.Println("  schedule -subject ID -teacher ID -room ROOM -recurring -day 1..7 -time HH:MM - schedule a weekly class")
	fmt.Println("  dashboard - show today's classes and upcoming tasks")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The account's email. The password will be prompted next.")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listPage := listCmd.Int("page", 1, "Page to fetch.")
	listPerPage := listCmd.Int("perpage", 10, "Records per page.")
	listSearch := listCmd.String("search", "", "Filter records by name.")

	scheduleCmd := flag.NewFlagSet("schedule", flag.ExitOnError)
	schedSubject := scheduleCmd.String("subject", "", "Subject id.")
	schedTeacher := scheduleCmd.String("teacher", "", "Teacher id.")
	schedRoom := scheduleCmd.String("room", "", "Room.")
	schedRecurring := scheduleCmd.Bool("recurring", false, "Repeat weekly instead of scheduling a single class.")
	schedStart := scheduleCmd.String("start", "", "One-off start, 2006-01-02T15:04.")
	schedEnd := scheduleCmd.String("end", "", "One-off end, 2006-01-02T15:04.")
	schedDay := scheduleCmd.Int("day", 0, "Recurring day of week, 1 (Segunda) to 7 (Domingo).")
	schedAt := scheduleCmd.String("time", "", "Recurring time of day, HH:MM.")

	switch args[1] {
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginEmail, string(pwd))
	case "logout":
		return cli.accountSvc.Logout()
	case "me":
		return cli.me()
	case "teachers", "subjects", "classes", "tasks":
		if err := listCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.list(args[1], *listPage, *listPerPage, *listSearch)
	case "schedule":
		if err := scheduleCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.schedule(class.Values{
			SubjectID:   *schedSubject,
			TeacherID:   *schedTeacher,
			Room:        *schedRoom,
			IsRecurring: *schedRecurring,
			Start:       *schedStart,
			End:         *schedEnd,
			Day:         class.Weekday(*schedDay),
			At:          *schedAt,
		})
	case "dashboard":
		return cli.dashboard()
	default:
		cli.printUsage()
		return errHelp
	}
}
