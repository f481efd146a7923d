package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/form-platform/internal/api/handlers"
	"github.com/linskybing/form-platform/internal/api/middleware"
	"github.com/linskybing/form-platform/internal/api/routes"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/internal/repository/memory"
	"github.com/linskybing/form-platform/pkg/email"
	"github.com/linskybing/form-platform/pkg/validation"
	"github.com/linskybing/form-platform/pkg/ws"
	"github.com/stretchr/testify/require"
)

var setupOnce sync.Once

func setupGlobals() {
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		if config.JwtSecret == "" {
			config.JwtSecret = "test-secret"
		}
		if config.Issuer == "" {
			config.Issuer = "form-platform-test"
		}
		middleware.Init()
		if err := validation.Register(); err != nil {
			panic(err)
		}
	})
}

// RecordingMailer accepts every recipient and keeps the messages.
type RecordingMailer struct {
	mu       sync.Mutex
	Messages []email.Message
}

func (m *RecordingMailer) SendBatch(_ context.Context, msg email.Message) (email.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, msg)
	return email.Result{Sent: len(msg.Recipients)}, nil
}

func (m *RecordingMailer) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Messages)
}

// Env is a router wired to an in-memory store.
type Env struct {
	T        *testing.T
	Store    *memory.Store
	Repos    *repository.Repos
	Services *application.Services
	Hub      *ws.Hub
	Mailer   *RecordingMailer
	Router   *gin.Engine
	roles    map[string]user.Role
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	setupGlobals()

	store := memory.NewStore()
	repos := store.Repos()
	hub := ws.NewHub()
	mailer := &RecordingMailer{}
	services := application.New(repos, application.Deps{Mailer: mailer, Publisher: hub})

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, handlers.New(services, repos, hub))

	env := &Env{
		T:        t,
		Store:    store,
		Repos:    repos,
		Services: services,
		Hub:      hub,
		Mailer:   mailer,
		Router:   r,
		roles:    map[string]user.Role{},
	}
	for i, name := range []string{user.RoleRoot, user.RoleAdmin, user.RoleManager, user.RoleProjectManager, user.RoleTeacher, user.RoleStudent} {
		env.roles[name] = store.AddRole(name, i)
	}
	return env
}

// User adds a user with the named role, creating the role when it is unknown.
func (e *Env) User(username, roleName string) user.User {
	role, ok := e.roles[roleName]
	if !ok {
		role = e.Store.AddRole(roleName, len(e.roles))
		e.roles[roleName] = role
	}
	u := e.Store.AddUser(username, username+"@example.com", &role)
	u.Role = &role
	return u
}

func (e *Env) Token(u user.User) string {
	e.T.Helper()
	role := ""
	if u.Role != nil {
		role = u.Role.Name
	}
	token, err := middleware.GenerateToken(u.ID, u.Username, role, u.RoleID, time.Hour)
	require.NoError(e.T, err)
	return token
}

// Do sends body as JSON with token as the bearer credential. An empty token sends none.
func (e *Env) Do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	e.T.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// Envelope mirrors response.Envelope with Data left raw for typed decoding.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination *struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Limit int   `json:"limit"`
	} `json:"pagination"`
}

// Decode checks the status and unmarshals the envelope, and its data into out when out is non-nil.
func Decode(t *testing.T, w *httptest.ResponseRecorder, status int, out interface{}) Envelope {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}
