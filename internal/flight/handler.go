package flight

import (
	"errors"
	"net/http"
	"time"

	"flightfinder/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie        = "ff_session"
	sessionCookieMaxAge  = int(DefaultSessionIdle / time.Second)
	ErrorCodeBadRequest  = "BAD_REQUEST"
	ErrorCodeInternal    = "INTERNAL_FAILURE"
	ErrorCodeUnknownSort = "UNKNOWN_SORT_KEY"
	ErrorCodeMalformed   = "MALFORMED_ITINERARY"
	ErrorCodeClosed      = "SESSION_CLOSED"
)

type FlightHandler struct {
	sessions *SessionStore
	logger   logger.Logger
}

func NewFlightHandler(sessions *SessionStore, log logger.Logger) *FlightHandler {
	return &FlightHandler{
		sessions: sessions,
		logger:   log,
	}
}

func (h *FlightHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HealthHandler)
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.GET("/v1/flights", h.GetFlightsHandler)
	router.DELETE("/v1/flights", h.ResetFlightsHandler)
	router.GET("/v1/airports/suggestions", h.SuggestAirportsHandler)
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *FlightHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SearchFlightsHandler starts a search for the caller's session and returns
// immediately; results are read back with GetFlightsHandler.
//
// @Summary      Submit a flight search
// @Description  Validates the form and starts a search for the caller's session, superseding any search still running
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchForm true "Search form"
// @Success      202 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var form SearchForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  ErrorCodeBadRequest,
		})
		return
	}

	criteria, err := ParseSearchForm(form)
	if err != nil {
		sendError(c, newSearchError(ReasonInvalidCriteria, "", err))
		return
	}

	cookie, _ := c.Cookie(SessionCookie)
	sessionID, session := h.sessions.GetOrCreate(cookie)
	c.SetCookie(SessionCookie, sessionID, sessionCookieMaxAge, "/", "", false, true)

	seq, err := session.Submit(c.Request.Context(), criteria)
	if err != nil {
		sendError(c, err)
		return
	}

	h.logger.Debug("search submitted",
		logger.Field{Key: "session_id", Value: sessionID},
		logger.Field{Key: "seq", Value: seq},
	)
	c.JSON(http.StatusAccepted, gin.H{
		"session_id": sessionID,
		"seq":        seq,
	})
}

// @Summary      Current results
// @Description  Returns the session's result set, optionally sorted
// @Tags         flights
// @Produce      json
// @Param        sort query string false "Sort key" Enums(price_asc, price_desc, duration_asc, duration_desc)
// @Success      200 {object} State
// @Failure      400 {object} map[string]string
// @Router       /v1/flights [get]
func (h *FlightHandler) GetFlightsHandler(c *gin.Context) {
	key, err := ParseSortKey(c.Query("sort"))
	if err != nil {
		sendError(c, err)
		return
	}

	session, ok := h.session(c)
	if !ok {
		c.JSON(http.StatusOK, State{Flights: []Itinerary{}})
		return
	}

	state, err := session.View(key)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary      Clear results
// @Tags         flights
// @Produce      json
// @Success      200 {object} State
// @Router       /v1/flights [delete]
func (h *FlightHandler) ResetFlightsHandler(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		c.JSON(http.StatusOK, State{Flights: []Itinerary{}})
		return
	}

	session.Reset()
	c.JSON(http.StatusOK, session.Snapshot())
}

// @Summary      Airport suggestions
// @Description  Case-insensitive substring match over the built-in airport list
// @Tags         airports
// @Produce      json
// @Param        q query string true "Typed text"
// @Success      200 {object} map[string]interface{}
// @Router       /v1/airports/suggestions [get]
func (h *FlightHandler) SuggestAirportsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": Suggest(c.Query("q"))})
}

func (h *FlightHandler) session(c *gin.Context) (*Session, bool) {
	id, err := c.Cookie(SessionCookie)
	if err != nil || id == "" {
		return nil, false
	}
	return h.sessions.Get(id)
}

func sendError(c *gin.Context, err error) {
	var searchErr *SearchError
	if errors.As(err, &searchErr) {
		status := http.StatusBadGateway
		if searchErr.Reason == ReasonInvalidCriteria {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":  UserMessage(err),
			"code":   searchErr.Reason,
			"detail": searchErr.Err.Error(),
		})
		return
	}

	switch {
	case errors.Is(err, ErrUnknownSortKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": ErrorCodeUnknownSort})
	case errors.Is(err, ErrMalformedItinerary):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": ErrorCodeMalformed})
	case errors.Is(err, ErrSessionClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": ErrorCodeClosed})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"code":    ErrorCodeInternal,
			"details": err.Error(),
		})
	}
}
