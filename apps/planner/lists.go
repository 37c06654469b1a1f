package main

import (
	"context"
	"fmt"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/class"
	"github.com/meucampus/planner/core/task"
)

func (cli *commandLine) list(kind string, page, perPage int, search string) error {
	ctx := context.Background()
	filter := core.ListFilter{Page: page, PerPage: perPage, Search: search}

	switch kind {
	case "teachers":
		res, err := cli.teacherSvc.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, tchr := range res.List {
			fmt.Printf("%s\t%s\t%s\n", tchr.ID, tchr.Name, tchr.Email)
		}
		printPaging(res.Page, res.Pages, res.Total)
	case "subjects":
		res, err := cli.subjectSvc.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, subj := range res.List {
			fmt.Printf("%s\t%s\t%s\n", subj.ID, subj.Name, subj.Description)
		}
		printPaging(res.Page, res.Pages, res.Total)
	case "classes":
		res, err := cli.classSvc.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, cls := range res.List {
			printClass(cls)
		}
		printPaging(res.Page, res.Pages, res.Total)
	case "tasks":
		res, err := cli.taskSvc.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, tsk := range res.List {
			printTask(tsk)
		}
		printPaging(res.Page, res.Pages, res.Total)
	}
	return nil
}

func (cli *commandLine) dashboard() error {
	ctx := context.Background()

	classes, err := cli.dashboardSvc.Classes(ctx, 1, 10)
	if err != nil {
		return err
	}
	fmt.Println("Aulas de hoje:")
	for _, cls := range classes.List {
		printClass(cls)
	}

	tasks, err := cli.dashboardSvc.UpcomingTasks(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Próximas tarefas:")
	for _, tsk := range tasks {
		printTask(tsk)
	}
	return nil
}

func printClass(cls class.Class) {
	name := cls.SubjectID
	if cls.Subject != nil {
		name = cls.Subject.Name
	}
	when := fmt.Sprintf("%s - %s", cls.StartTime, cls.EndTime)
	if cls.IsRecurring && cls.DayOfWeek != nil {
		when = fmt.Sprintf("%s às %s", cls.DayOfWeek, cls.StartTime)
	}
	fmt.Printf("%s\t%s\tsala %s\t%s\n", cls.ID, name, cls.Room, when)
}

func printTask(tsk task.Task) {
	status := " "
	if tsk.IsDelivered.Valid && tsk.IsDelivered.Bool {
		status = "x"
	}
	fmt.Printf("[%s] %s\t%s\tentrega %s\n", status, tsk.ID, tsk.Title, tsk.DueDate)
}

func printPaging(page, pages, total int) {
	fmt.Printf("página %d de %d (%d no total)\n", page, pages, total)
}
