package testutil

import (
	"bytes"
	"io"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/class"
	"github.com/meucampus/planner/core/subject"
	"github.com/meucampus/planner/core/task"
	"github.com/meucampus/planner/core/teacher"
	"github.com/meucampus/planner/services/restclient"
	sessionsvc "github.com/meucampus/planner/services/session"
)

// Request is one captured API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header map[string][]string
	Body   []byte
}

// Failure makes the server answer an endpoint with an error envelope
// instead of its fixture data.
type Failure struct {
	Status  int
	Message string
	Errors  []core.EnvelopeError
}

// Server is an in-process stand-in for the Meu Campus API. It serves the
// `{message, errors, data}` envelope off in-memory fixtures and records
// every request it sees.
type Server struct {
	*httptest.Server

	Token  string
	APIKey string

	mu       sync.Mutex
	requests []Request
	failures map[string]Failure

	Teachers []teacher.Teacher
	Subjects []subject.Subject
	Classes  []class.Class
	Tasks    []task.Task
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Token:    "test-token",
		APIKey:   "test-api-key",
		failures: make(map[string]Failure),
	}

	e := echo.New()
	e.Use(s.record)

	e.POST("/user/login", s.login)
	e.POST("/user", s.ok("Conta criada!"))
	e.POST("/user/recovery-link", s.ok("Link enviado!"))
	e.POST("/user/reset-password", s.ok("Senha alterada!"))
	e.GET("/user/me", s.me)
	e.PUT("/user/me", s.me)

	e.GET("/teachers", func(c echo.Context) error { return list(c, s.Teachers) })
	e.GET("/teachers/all", func(c echo.Context) error { return respond(c, "", s.Teachers) })
	e.POST("/teachers", func(c echo.Context) error {
		var tchr teacher.Teacher
		if err := c.Bind(&tchr); err != nil {
			return err
		}
		tchr.ID = uuid.New().String()
		s.Teachers = append(s.Teachers, tchr)
		return respond(c, "Professor criado!", tchr)
	})
	e.PUT("/teachers", s.ok("Professor atualizado!"))
	e.DELETE("/teachers", s.ok("Professor excluído!"))

	e.GET("/subjects", func(c echo.Context) error { return list(c, s.Subjects) })
	e.GET("/subjects/all", func(c echo.Context) error { return respond(c, "", s.Subjects) })
	e.POST("/subjects", func(c echo.Context) error {
		var subj subject.Subject
		if err := c.Bind(&subj); err != nil {
			return err
		}
		subj.ID = uuid.New().String()
		s.Subjects = append(s.Subjects, subj)
		return respond(c, "Disciplina criada!", subj)
	})
	e.PUT("/subjects", s.ok("Disciplina atualizada!"))
	e.DELETE("/subjects", s.ok("Disciplina excluída!"))

	e.GET("/classes", func(c echo.Context) error { return list(c, s.Classes) })
	e.GET("/classes/all", func(c echo.Context) error { return respond(c, "", s.Classes) })
	e.GET("/classes/dashboard", func(c echo.Context) error { return list(c, s.Classes) })
	e.POST("/classes", func(c echo.Context) error {
		var cls class.Class
		if err := c.Bind(&cls); err != nil {
			return err
		}
		cls.ID = uuid.New().String()
		s.Classes = append(s.Classes, cls)
		return respond(c, "Aula agendada!", cls)
	})
	e.PUT("/classes", func(c echo.Context) error {
		var cls class.Class
		if err := c.Bind(&cls); err != nil {
			return err
		}
		cls.ID = c.QueryParam("id")
		return respond(c, "Aula atualizada!", cls)
	})
	e.DELETE("/classes", s.ok("Aula deletada!"))

	e.GET("/tasks", func(c echo.Context) error { return list(c, s.Tasks) })
	e.GET("/tasks/all", func(c echo.Context) error { return respond(c, "", s.Tasks) })
	e.GET("/tasks/upcoming", func(c echo.Context) error { return respond(c, "", s.Tasks) })
	e.POST("/tasks", s.ok("Tarefa criada!"))
	e.PUT("/tasks", s.ok("Tarefa atualizada!"))
	e.DELETE("/tasks", s.ok("Tarefa excluída!"))

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// Client returns an API client pointed at the server, holding an already
// authenticated in-memory session.
func (s *Server) Client(t *testing.T) (*restclient.Client, *sessionsvc.MemStore) {
	t.Helper()

	session := sessionsvc.NewMemStore(s.Token)
	client := restclient.NewClient(&restclient.Options{
		BaseURL: s.URL,
		APIKey:  s.APIKey,
		Session: session,
	})
	return client, session
}

// FailNext makes the given endpoint (eg. "POST /classes") answer with f
// until cleared.
func (s *Server) FailNext(method, path string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = f
}

// LastRequest fails the test when no request matches.
func (s *Server) LastRequest(t *testing.T, method, path string) Request {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Method == method && s.requests[i].Path == path {
			return s.requests[i]
		}
	}
	t.Fatalf("no %s %s request captured", method, path)
	return Request{}
}

func (s *Server) CountRequests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, req := range s.requests {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Header: req.Header,
			Body:   body,
		})
		failure, failed := s.failures[req.Method+" "+req.URL.Path]
		s.mu.Unlock()

		if failed {
			return c.JSON(failure.Status, core.Envelope{
				Message: failure.Message,
				Errors:  failure.Errors,
			})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	return respond(c, "Login feito com sucesso!", map[string]string{"token": s.Token})
}

func (s *Server) me(c echo.Context) error {
	return respond(c, "", map[string]string{
		"id":    "me-id",
		"name":  "Aluno Teste",
		"email": "aluno@test.com",
	})
}

func (s *Server) ok(msg string) echo.HandlerFunc {
	return func(c echo.Context) error { return respond(c, msg, nil) }
}

func respond(c echo.Context, msg string, data interface{}) error {
	env := map[string]interface{}{"message": msg, "errors": []core.EnvelopeError{}}
	if data != nil {
		env["data"] = data
	}
	return c.JSON(200, env)
}

func list[T any](c echo.Context, all []T) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("perPage"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	lo := (page - 1) * perPage
	if lo > len(all) {
		lo = len(all)
	}
	hi := lo + perPage
	if hi > len(all) {
		hi = len(all)
	}
	pages := (len(all) + perPage - 1) / perPage

	return respond(c, "", core.Page[T]{
		Page:    page,
		PerPage: perPage,
		Total:   len(all),
		Pages:   pages,
		List:    all[lo:hi],
	})
}
