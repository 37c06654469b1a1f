package main

import (
	"context"

	"github.com/meucampus/planner/core/class"
)

func (cli *commandLine) schedule(vals class.Values) error {
	ctx := context.Background()

	form, err := class.Open(ctx, cli.subjectSvc, cli.teacherSvc, nil)
	if err != nil {
		return err
	}
	form.SetValues(vals)
	return form.Submit(ctx, cli.classSvc, nil)
}
