package task_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/task"
	notifysvc "github.com/meucampus/planner/services/notify"
	"github.com/meucampus/planner/storage/listcache"
	testutil "github.com/meucampus/planner/tests"
)

func TestMarkDelivered(t *testing.T) {
	srv := testutil.NewServer(t)
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := task.NewService(api, listcache.NewMemory(), notifier)

	ut := task.UpdateTask{ID: "tsk-1", IsDelivered: null.BoolFrom(true)}
	if _, err := svc.Update(context.Background(), ut); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	req := srv.LastRequest(t, "PUT", "/tasks")
	if got := req.Query.Get("id"); got != "tsk-1" {
		t.Errorf("Update() id query = %q, want tsk-1", got)
	}
	var sent map[string]interface{}
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatal(err)
	}
	if sent["isDelivered"] != true {
		t.Errorf("Update() sent %s", req.Body)
	}
	if _, ok := sent["title"]; ok {
		t.Errorf("Update() sent untouched title: %s", req.Body)
	}
	if len(notifier.Successes) != 1 || notifier.Successes[0] != "Tarefa atualizada com sucesso!" {
		t.Errorf("success toasts = %v", notifier.Successes)
	}
}

func TestAll(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.Tasks = []task.Task{
		{ID: "tsk-1", SubjectID: "sub-1", Title: "Lista 3", DueDate: "2026-03-20T23:59:00Z"},
	}
	api, _ := srv.Client(t)

	svc := task.NewService(api, listcache.NewMemory(), notifysvc.NewRecorderNotifier())
	all, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 1 || all[0].Title != "Lista 3" {
		t.Fatalf("All() = %+v", all)
	}
	if _, err := svc.All(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := srv.CountRequests("GET", "/tasks/all"); n != 1 {
		t.Errorf("GET /tasks/all requests = %d, want a cached second read", n)
	}

	// with caching disabled every read goes to the server
	uncached := task.NewService(api, core.NopListCache{}, notifysvc.NewRecorderNotifier())
	for i := 0; i < 2; i++ {
		if _, err := uncached.All(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if n := srv.CountRequests("GET", "/tasks/all"); n != 3 {
		t.Errorf("GET /tasks/all requests = %d, want 3 with caching disabled", n)
	}
}

func TestCreateRequiresDueDate(t *testing.T) {
	srv := testutil.NewServer(t)
	api, _ := srv.Client(t)
	svc := task.NewService(api, core.NopListCache{}, notifysvc.NewRecorderNotifier())

	nt := task.NewTask{SubjectID: "sub-1", Title: "Lista 3"}
	if _, err := svc.Create(context.Background(), nt); err == nil {
		t.Error("Create() error = nil, want validation failure")
	}
	if n := srv.CountRequests("POST", "/tasks"); n != 0 {
		t.Errorf("POST /tasks requests = %d, want none", n)
	}
}
