package main

import (
	"context"

	"github.com/meucampus/planner/core/account"
)

func (cli *commandLine) login(email, pwd string) error {
	return cli.accountSvc.Login(context.Background(), account.Credentials{
		Email:    email,
		Password: pwd,
	})
}

func (cli *commandLine) me() error {
	profile, err := cli.accountSvc.Me(context.Background())
	if err != nil {
		return err
	}
	logger.Printf("%s <%s>\n", profile.Name, profile.Email)
	return nil
}
