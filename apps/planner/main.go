package main

import (
	"fmt"
	"log"
	"os"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/account"
	"github.com/meucampus/planner/core/class"
	"github.com/meucampus/planner/core/dashboard"
	"github.com/meucampus/planner/core/subject"
	"github.com/meucampus/planner/core/task"
	"github.com/meucampus/planner/core/teacher"
	logsvc "github.com/meucampus/planner/services/logger"
	notifysvc "github.com/meucampus/planner/services/notify"
	"github.com/meucampus/planner/services/restclient"
	sessionsvc "github.com/meucampus/planner/services/session"
	"github.com/meucampus/planner/storage/listcache"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "PLANNER : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.Conf
	session := sessionsvc.NewFileStore(conf.SessionFile)
	notifier := notifysvc.NewConsoleNotifier()

	var appLogger core.Logger
	if conf.RollbarToken != "" {
		rollbarLogger := logsvc.NewRollbarLogger(logger, conf)
		rollbarLogger.Enable(!(conf.Debug || conf.TestMode))
		appLogger = rollbarLogger
	}

	api := restclient.NewClient(&restclient.Options{
		BaseURL: conf.API.BaseURL,
		APIKey:  conf.API.Key,
		Timeout: conf.API.Timeout,
		Session: session,
		Logger:  appLogger,
		OnSessionExpired: func() {
			_, _ = fmt.Fprintln(os.Stderr, "Sessão expirada. Faça login novamente.")
		},
	})
	cache := listcache.NewMemory()

	cli := &commandLine{
		accountSvc:   account.NewService(api, session, notifier),
		teacherSvc:   teacher.NewService(api, cache, notifier),
		subjectSvc:   subject.NewService(api, cache, notifier),
		classSvc:     class.NewService(api, cache, notifier),
		taskSvc:      task.NewService(api, cache, notifier),
		dashboardSvc: dashboard.NewService(api, cache),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
