package class_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/class"
	notifysvc "github.com/meucampus/planner/services/notify"
	"github.com/meucampus/planner/storage/listcache"
	testutil "github.com/meucampus/planner/tests"
)

func TestServiceSchedule(t *testing.T) {
	srv := testutil.NewServer(t)
	api, _ := srv.Client(t)
	cache := listcache.NewMemory()
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, cache, notifier)
	ctx := context.Background()

	// warm the list cache, scheduling must drop it
	if _, err := svc.List(ctx, core.ListFilter{Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	payload := class.NewScheduleClass("sub-1", "tch-1", "B204", class.Recurring{Day: class.Monday, At: "08:00"})
	cls, err := svc.Schedule(ctx, payload)
	if err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if cls.ID == "" {
		t.Error("Schedule() returned class without id")
	}

	req := srv.LastRequest(t, "POST", "/classes")
	var sent map[string]interface{}
	if err := json.Unmarshal(req.Body, &sent); err != nil {
		t.Fatalf("request body: %v", err)
	}
	if sent["isRecurring"] != true || sent["dayOfWeek"] != float64(class.Monday) || sent["startTime"] != "08:00" {
		t.Errorf("Schedule() sent %s", req.Body)
	}

	if _, ok := cache.Get(core.ListKey{Kind: "classes", Page: 1, PerPage: 10}); ok {
		t.Error("classes list still cached after scheduling")
	}
	if len(notifier.Successes) != 1 || notifier.Successes[0] != "Aula agendada com sucesso!" {
		t.Errorf("success toasts = %v", notifier.Successes)
	}

	if _, err := svc.List(ctx, core.ListFilter{Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if n := srv.CountRequests("GET", "/classes"); n != 2 {
		t.Errorf("GET /classes requests = %d, want a refetch after invalidation", n)
	}
}

func TestServiceAll(t *testing.T) {
	srv := testutil.NewServer(t)
	day := class.Monday
	srv.Classes = []class.Class{
		{ID: "cls-1", SubjectID: "sub-1", Room: "A101", IsRecurring: true, DayOfWeek: &day, StartTime: "08:00"},
	}
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, listcache.NewMemory(), notifier)
	ctx := context.Background()

	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != 1 || all[0].ID != "cls-1" {
		t.Fatalf("All() = %+v", all)
	}
	if _, err := svc.All(ctx); err != nil {
		t.Fatal(err)
	}
	if n := srv.CountRequests("GET", "/classes/all"); n != 1 {
		t.Errorf("GET /classes/all requests = %d, want a cached second read", n)
	}

	// scheduling drops the unpaginated list too
	payload := class.NewScheduleClass("sub-1", "tch-1", "B204", class.Recurring{Day: class.Friday, At: "10:00"})
	if _, err := svc.Schedule(ctx, payload); err != nil {
		t.Fatalf("Schedule() error = %v", err)
	}
	if _, err := svc.All(ctx); err != nil {
		t.Fatal(err)
	}
	if n := srv.CountRequests("GET", "/classes/all"); n != 2 {
		t.Errorf("GET /classes/all requests = %d, want a refetch after scheduling", n)
	}
}

func TestServiceScheduleConflict(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.FailNext("POST", "/classes", testutil.Failure{Status: 409, Message: "Sala ocupada nesse horário."})
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, listcache.NewMemory(), notifier)

	payload := class.NewScheduleClass("sub-1", "tch-1", "B204", class.Recurring{Day: class.Monday, At: "08:00"})
	if _, err := svc.Schedule(context.Background(), payload); err == nil {
		t.Fatal("Schedule() error = nil, want conflict")
	}
	if len(notifier.Errors) != 1 || notifier.Errors[0] != "Sala ocupada nesse horário." {
		t.Errorf("error toasts = %v, want the server's message", notifier.Errors)
	}
	if len(notifier.Successes) != 0 {
		t.Errorf("success toasts = %v, want none", notifier.Successes)
	}
}

func TestServiceScheduleFallbackMessage(t *testing.T) {
	srv := testutil.NewServer(t)
	srv.FailNext("POST", "/classes", testutil.Failure{Status: 500})
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, listcache.NewMemory(), notifier)

	payload := class.NewScheduleClass("sub-1", "tch-1", "B204", class.Recurring{Day: class.Monday, At: "08:00"})
	if _, err := svc.Schedule(context.Background(), payload); err == nil {
		t.Fatal("Schedule() error = nil, want failure")
	}
	if len(notifier.Errors) != 1 || notifier.Errors[0] != "Ocorreu um erro ao agendar a aula." {
		t.Errorf("error toasts = %v, want the fallback message", notifier.Errors)
	}
}

func TestServiceUpdate(t *testing.T) {
	srv := testutil.NewServer(t)
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, listcache.NewMemory(), notifier)

	payload := class.NewScheduleClass("sub-1", "tch-1", "C305", class.OneOff{})
	if _, err := svc.Update(context.Background(), class.UpdateClass{ID: "cls-9", ScheduleClass: payload}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	req := srv.LastRequest(t, "PUT", "/classes")
	if got := req.Query.Get("id"); got != "cls-9" {
		t.Errorf("Update() id query = %q, want cls-9", got)
	}
	if len(notifier.Successes) != 1 || notifier.Successes[0] != "Aula atualizada com sucesso!" {
		t.Errorf("success toasts = %v", notifier.Successes)
	}
}

func TestServiceDelete(t *testing.T) {
	srv := testutil.NewServer(t)
	api, _ := srv.Client(t)
	notifier := notifysvc.NewRecorderNotifier()
	svc := class.NewService(api, listcache.NewMemory(), notifier)

	if err := svc.Delete(context.Background(), "cls-9"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	req := srv.LastRequest(t, "DELETE", "/classes")
	if got := req.Query.Get("id"); got != "cls-9" {
		t.Errorf("Delete() id query = %q, want cls-9", got)
	}
	if len(notifier.Successes) != 1 || notifier.Successes[0] != "Aula deletada com sucesso!" {
		t.Errorf("success toasts = %v", notifier.Successes)
	}
}
