package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"postal-distance-service/internal/ports"
	"postal-distance-service/internal/services"
)

const (
	sessionIDKey = "sid"
	themeKey     = "theme"

	themeLight = "light"
	themeDark  = "dark"
)

// PageHandler renders the postal distance form and its results.
//
// All state it touches (theme preference, busy flag) lives in the cookie
// session or the per-session busy guard; batch results only live in the
// response being rendered and are replaced by the next submission.
type PageHandler struct {
	Querier ports.DistanceQuerier
	Busy    *BusyGuard
}

// sourceField is the per-input view model for the form's source fields.
type sourceField struct {
	N     int
	Value string
}

func sourceFields(values []string) []sourceField {
	fields := make([]sourceField, len(values))
	for i, v := range values {
		fields[i] = sourceField{N: i + 1, Value: v}
	}
	return fields
}

// Index renders the empty form.
func (h *PageHandler) Index(c *gin.Context) {
	session := sessions.Default(c)
	sessionID(session)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Theme":       theme(session),
		"Destination": "",
		"Sources":     sourceFields(make([]string, MaxBatchSources)),
	})
}

// Query reads the form fields, runs one batch of sequential distance
// queries, and renders the outcome records in input order.
func (h *PageHandler) Query(c *gin.Context) {
	session := sessions.Default(c)
	sid := sessionID(session)

	destination := c.PostForm("destination")
	sources := make([]string, 0, MaxBatchSources)
	for i := 1; i <= MaxBatchSources; i++ {
		sources = append(sources, c.PostForm(fmt.Sprintf("source%d", i)))
	}

	view := gin.H{
		"Theme":       theme(session),
		"Destination": destination,
		"Sources":     sourceFields(sources),
	}

	// Presence checks only; postal code formats are never validated.
	if strings.TrimSpace(destination) == "" {
		view["Error"] = "destination postal code is required"
		c.HTML(http.StatusBadRequest, "index.html", view)
		return
	}

	entered := make([]string, 0, len(sources))
	for _, s := range sources {
		if strings.TrimSpace(s) != "" {
			entered = append(entered, s)
		}
	}
	if len(entered) == 0 {
		view["Error"] = "at least one source postal code is required"
		c.HTML(http.StatusBadRequest, "index.html", view)
		return
	}

	if !h.Busy.Acquire(sid) {
		view["Error"] = "a query batch is already running for this session"
		c.HTML(http.StatusConflict, "index.html", view)
		return
	}
	defer h.Busy.Release(sid)

	records := services.ComputeBatch(c.Request.Context(), entered, destination, h.Querier)

	view["Records"] = records
	c.HTML(http.StatusOK, "index.html", view)
}

// ToggleTheme flips the session's light/dark preference. Purely cosmetic.
func (h *PageHandler) ToggleTheme(c *gin.Context) {
	session := sessions.Default(c)

	next := themeDark
	if theme(session) == themeDark {
		next = themeLight
	}

	session.Set(themeKey, next)
	if err := session.Save(); err != nil {
		log.Printf("save session failed: %v", err)
	}

	c.Redirect(http.StatusFound, "/")
}

// sessionID returns the session's stable id, assigning one on first use.
func sessionID(session sessions.Session) string {
	if id, ok := session.Get(sessionIDKey).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	session.Set(sessionIDKey, id)
	if err := session.Save(); err != nil {
		log.Printf("save session failed: %v", err)
	}
	return id
}

func theme(session sessions.Session) string {
	if t, ok := session.Get(themeKey).(string); ok && t != "" {
		return t
	}
	return themeLight
}
