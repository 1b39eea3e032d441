// ABOUTME: In-memory stand-in for the training platform REST API.
// ABOUTME: Backs package tests and the `coach fakeapi` development server.
package fakeapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/coach/internal/models"
)

type athleteRecord struct {
	models.Athlete
	password string
}

type trainerRecord struct {
	models.Trainer
	password string
}

type assignment struct {
	athleteID int64
	sessionID int64
}

// Request is one call the server received.
type Request struct {
	Method string
	Path   string
	Body   []byte
	Auth   string
}

// Server holds all platform state in maps guarded by a mutex.
type Server struct {
	mu sync.Mutex

	athletes      map[int64]*athleteRecord
	trainers      map[int64]*trainerRecord
	drills        map[int64]*models.Drill
	sessions      map[int64]*models.Session
	sessionDrills map[int64][]int64
	assigned      map[assignment]bool
	nextID        int64

	requests []Request
	engine   *gin.Engine
}

// New returns an empty server with all routes registered.
func New() *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		athletes:      make(map[int64]*athleteRecord),
		trainers:      make(map[int64]*trainerRecord),
		drills:        make(map[int64]*models.Drill),
		sessions:      make(map[int64]*models.Session),
		sessionDrills: make(map[int64][]int64),
		assigned:      make(map[assignment]bool),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.record)
	s.routes(r)
	s.engine = r
	return s
}

// Handler exposes the server for httptest or http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Requests returns a copy of every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many requests the server has received.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Body:   body,
		Auth:   c.GetHeader("Authorization"),
	})
	s.mu.Unlock()
	c.Next()
}

// SeedAthlete stores an athlete with a password and returns its id.
func (s *Server) SeedAthlete(a models.Athlete, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.newID()
	s.athletes[a.ID] = &athleteRecord{Athlete: a, password: password}
	return a.ID
}

// SeedTrainer stores a trainer with a password and returns its id.
func (s *Server) SeedTrainer(t models.Trainer, password string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.newID()
	s.trainers[t.ID] = &trainerRecord{Trainer: t, password: password}
	return t.ID
}

// SeedDrill stores a drill and returns its id.
func (s *Server) SeedDrill(d models.Drill) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.newID()
	s.drills[d.ID] = &d
	return d.ID
}

// SeedSession stores a session with the given drills and returns its id.
func (s *Server) SeedSession(sess models.Session, drillIDs ...int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.ID = s.newID()
	sess.Drills = nil
	s.sessions[sess.ID] = &sess
	s.sessionDrills[sess.ID] = append([]int64(nil), drillIDs...)
	return sess.ID
}

// Assign links an athlete to a session.
func (s *Server) Assign(athleteID, sessionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assigned[assignment{athleteID, sessionID}] = true
}

// Athlete returns a copy of the stored athlete.
func (s *Server) Athlete(id int64) (models.Athlete, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.athletes[id]
	if !ok {
		return models.Athlete{}, false
	}
	return rec.Athlete, true
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

// sessionWithDrills copies a session and fills its ordered drill list.
// Caller holds s.mu.
func (s *Server) sessionWithDrills(id int64) models.Session {
	sess := *s.sessions[id]
	sess.Drills = nil
	for _, did := range s.sessionDrills[id] {
		if d, ok := s.drills[did]; ok {
			sess.Drills = append(sess.Drills, *d)
		}
	}
	return sess
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func tokenFor(role models.Role, id int64) string {
	return fmt.Sprintf("fake-%s-%d", role, id)
}
