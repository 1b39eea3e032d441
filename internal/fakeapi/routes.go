// ABOUTME: Route table and handlers mirroring the platform endpoints.
// ABOUTME: Errors use the same {"message": ...} body as the real API.
package fakeapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harperreed/coach/internal/models"
)

func (s *Server) routes(r *gin.Engine) {
	r.POST("/athlete_login", s.athleteLogin)
	r.POST("/trainer_login", s.trainerLogin)

	r.POST("/athletes", s.createAthlete)
	r.GET("/athletes/:id", s.getAthlete)
	r.PUT("/athletes/:id", s.updateAthlete)
	r.GET("/athletes/athlete_sessions/:id", s.athleteSessions)
	r.POST("/athletes/athlete_sessions/:id", s.assignSession)
	r.DELETE("/athletes/session/:athleteId/:sessionId", s.completeSession)
	r.PUT("/athletes/assign_trainer/:id", s.assignTrainer)

	r.POST("/trainers", s.createTrainer)
	r.GET("/trainers", s.listTrainers)
	r.GET("/trainers/:id", s.getTrainer)
	r.PUT("/trainers/:id", s.updateTrainer)
	r.GET("/trainers/athletes/:id", s.trainerAthletes)
	r.GET("/trainers/drills/:id", s.trainerDrills)
	r.GET("/trainers/sessions/:id", s.trainerSessions)

	r.POST("/drills", s.createDrill)
	r.DELETE("/drills/:id", s.deleteDrill)

	r.POST("/sessions", s.createSession)
	r.DELETE("/sessions/:id", s.deleteSession)
	r.GET("/sessions/session_drills/:id", s.sessionDrillList)
	r.POST("/sessions/session_drills/:id", s.addSessionDrill)
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// --- auth ---

func (s *Server) athleteLogin(c *gin.Context) {
	var in models.Credentials
	if !bind(c, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.athletes {
		if a.Username == in.Username && a.password == in.Password {
			c.JSON(http.StatusOK, models.LoginResponse{
				Message: "Login successful",
				Token:   tokenFor(models.RoleAthlete, a.ID),
				ID:      a.ID,
				Name:    a.Name,
			})
			return
		}
	}
	fail(c, http.StatusUnauthorized, "Invalid username or password")
}

func (s *Server) trainerLogin(c *gin.Context) {
	var in models.Credentials
	if !bind(c, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trainers {
		if t.Username == in.Username && t.password == in.Password {
			c.JSON(http.StatusOK, models.LoginResponse{
				Message: "Login successful",
				Token:   tokenFor(models.RoleTrainer, t.ID),
				ID:      t.ID,
				Name:    t.Name,
			})
			return
		}
	}
	fail(c, http.StatusUnauthorized, "Invalid username or password")
}

// --- athletes ---

func (s *Server) createAthlete(c *gin.Context) {
	var in models.AthleteSignUp
	if !bind(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.athletes {
		if strings.EqualFold(a.Username, in.Username) {
			fail(c, http.StatusConflict, "Username already exists")
			return
		}
	}
	rec := &athleteRecord{
		Athlete: models.Athlete{
			ID:       s.newID(),
			Username: in.Username,
			Email:    in.Email,
			Name:     in.Name,
			Age:      in.Age,
			Level:    in.Level,
		},
		password: in.Password,
	}
	s.athletes[rec.ID] = rec
	c.JSON(http.StatusCreated, models.AthleteCreated{
		Message: "Athlete created successfully",
		Token:   tokenFor(models.RoleAthlete, rec.ID),
		Athlete: rec.Athlete,
	})
}

func (s *Server) getAthlete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.athletes[id]
	if !ok {
		fail(c, http.StatusNotFound, "Athlete not found")
		return
	}
	c.JSON(http.StatusOK, a.Athlete)
}

func (s *Server) updateAthlete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var upd models.AthleteUpdate
	if !bind(c, &upd) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.athletes[id]
	if !ok {
		fail(c, http.StatusNotFound, "Athlete not found")
		return
	}
	upd.Apply(&a.Athlete)
	c.JSON(http.StatusOK, a.Athlete)
}

func (s *Server) athleteSessions(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.athletes[id]; !ok {
		fail(c, http.StatusNotFound, "Athlete not found")
		return
	}
	out := []models.Session{}
	for _, sid := range sortedIDs(s.sessions) {
		if s.assigned[assignment{id, sid}] {
			out = append(out, s.sessionWithDrills(sid))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) assignSession(c *gin.Context) {
	athleteID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		SessionID int64 `json:"session_id"`
	}
	if !bind(c, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.athletes[athleteID]; !ok {
		fail(c, http.StatusNotFound, "Athlete not found")
		return
	}
	if _, ok := s.sessions[in.SessionID]; !ok {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	s.assigned[assignment{athleteID, in.SessionID}] = true
	c.JSON(http.StatusCreated, models.AthleteSession{AthleteID: athleteID, SessionID: in.SessionID})
}

func (s *Server) completeSession(c *gin.Context) {
	athleteID, ok := paramID(c, "athleteId")
	if !ok {
		return
	}
	sessionID, ok := paramID(c, "sessionId")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := assignment{athleteID, sessionID}
	if !s.assigned[key] {
		fail(c, http.StatusNotFound, "Athlete session not found")
		return
	}
	delete(s.assigned, key)
	c.JSON(http.StatusOK, gin.H{"message": "Session completed"})
}

func (s *Server) assignTrainer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		TrainerID int64 `json:"trainer_id"`
	}
	if !bind(c, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.athletes[id]
	if !ok {
		fail(c, http.StatusNotFound, "Athlete not found")
		return
	}
	if _, ok := s.trainers[in.TrainerID]; !ok {
		fail(c, http.StatusNotFound, "Trainer not found")
		return
	}
	trainerID := in.TrainerID
	a.TrainerID = &trainerID
	c.JSON(http.StatusOK, a.Athlete)
}

// --- trainers ---

func (s *Server) createTrainer(c *gin.Context) {
	var in models.TrainerSignUpPayload
	if !bind(c, &in) {
		return
	}
	if in.Username == "" || in.Password == "" {
		fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trainers {
		if strings.EqualFold(t.Username, in.Username) {
			fail(c, http.StatusConflict, "Username already exists")
			return
		}
	}
	rec := &trainerRecord{
		Trainer: models.Trainer{
			ID:              s.newID(),
			Username:        in.Username,
			Email:           in.Email,
			Name:            in.Name,
			YearsExperience: in.YearsExperience,
			Bio:             in.Bio,
		},
		password: in.Password,
	}
	s.trainers[rec.ID] = rec
	c.JSON(http.StatusCreated, models.TrainerCreated{
		Message: "Trainer created successfully",
		Token:   tokenFor(models.RoleTrainer, rec.ID),
		Trainer: rec.Trainer,
	})
}

func (s *Server) listTrainers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Trainer{}
	for _, id := range sortedIDs(s.trainers) {
		out = append(out, s.trainers[id].Trainer)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getTrainer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trainers[id]
	if !ok {
		fail(c, http.StatusNotFound, "Trainer not found")
		return
	}
	c.JSON(http.StatusOK, t.Trainer)
}

func (s *Server) updateTrainer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var upd models.TrainerUpdate
	if !bind(c, &upd) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trainers[id]
	if !ok {
		fail(c, http.StatusNotFound, "Trainer not found")
		return
	}
	upd.Apply(&t.Trainer)
	c.JSON(http.StatusOK, t.Trainer)
}

func (s *Server) trainerAthletes(c *gin.Context) {
	id, ok := s.trainerParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Athlete{}
	for _, aid := range sortedIDs(s.athletes) {
		a := s.athletes[aid]
		if a.TrainerID != nil && *a.TrainerID == id {
			out = append(out, a.Athlete)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) trainerDrills(c *gin.Context) {
	id, ok := s.trainerParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Drill{}
	for _, did := range sortedIDs(s.drills) {
		if d := s.drills[did]; d.TrainerID == id {
			out = append(out, *d)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) trainerSessions(c *gin.Context) {
	id, ok := s.trainerParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Session{}
	for _, sid := range sortedIDs(s.sessions) {
		if s.sessions[sid].TrainerID == id {
			out = append(out, s.sessionWithDrills(sid))
		}
	}
	c.JSON(http.StatusOK, out)
}

// trainerParam parses :id and 404s when no such trainer exists.
func (s *Server) trainerParam(c *gin.Context) (int64, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}
	s.mu.Lock()
	_, exists := s.trainers[id]
	s.mu.Unlock()
	if !exists {
		fail(c, http.StatusNotFound, "Trainer not found")
		return 0, false
	}
	return id, true
}

// --- drills ---

func (s *Server) createDrill(c *gin.Context) {
	var in models.NewDrill
	if !bind(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainers[in.TrainerID]; !ok {
		fail(c, http.StatusNotFound, "Trainer not found")
		return
	}
	d := &models.Drill{
		ID:          s.newID(),
		DrillType:   in.DrillType,
		Description: in.Description,
		Level:       in.Level,
		TrainerID:   in.TrainerID,
	}
	s.drills[d.ID] = d
	c.JSON(http.StatusCreated, models.DrillCreated{Message: "Drill created successfully", Drill: *d})
}

func (s *Server) deleteDrill(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drills[id]; !ok {
		fail(c, http.StatusNotFound, "Drill not found")
		return
	}
	delete(s.drills, id)
	for sid, ids := range s.sessionDrills {
		kept := ids[:0]
		for _, did := range ids {
			if did != id {
				kept = append(kept, did)
			}
		}
		s.sessionDrills[sid] = kept
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drill deleted"})
}

// --- sessions ---

func (s *Server) createSession(c *gin.Context) {
	var in models.NewSession
	if !bind(c, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainers[in.TrainerID]; !ok {
		fail(c, http.StatusNotFound, "Trainer not found")
		return
	}
	sess := &models.Session{
		ID:        s.newID(),
		Name:      in.Name,
		Length:    in.Length,
		Level:     in.Level,
		TrainerID: in.TrainerID,
	}
	s.sessions[sess.ID] = sess
	c.JSON(http.StatusCreated, models.SessionCreated{Message: "Session created successfully", Session: *sess})
}

func (s *Server) deleteSession(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	delete(s.sessions, id)
	delete(s.sessionDrills, id)
	for key := range s.assigned {
		if key.sessionID == id {
			delete(s.assigned, key)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

func (s *Server) sessionDrillList(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	out := s.sessionWithDrills(id).Drills
	if out == nil {
		out = []models.Drill{}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addSessionDrill(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in struct {
		DrillID int64 `json:"drill_id"`
	}
	if !bind(c, &in) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		fail(c, http.StatusNotFound, "Session not found")
		return
	}
	if _, ok := s.drills[in.DrillID]; !ok {
		fail(c, http.StatusNotFound, "Drill not found")
		return
	}
	for _, did := range s.sessionDrills[id] {
		if did == in.DrillID {
			fail(c, http.StatusConflict, "Drill already in session")
			return
		}
	}
	s.sessionDrills[id] = append(s.sessionDrills[id], in.DrillID)
	c.JSON(http.StatusCreated, gin.H{"message": "Drill added to session"})
}
