package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/darna-inc/darna/internal/infrastructure/realtime"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

// RealtimeHandler upgrades authenticated requests to the notification
// websocket.
type RealtimeHandler struct {
	registry *realtime.Registry
	upgrader websocket.Upgrader
	cfg      realtime.ClientConfig
	logger   logger.Interface
}

func NewRealtimeHandler(registry *realtime.Registry, cfg realtime.ClientConfig, allowedOrigins []string, logger logger.Interface) *RealtimeHandler {
	return &RealtimeHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		cfg:    cfg,
		logger: logger,
	}
}

// originChecker allows any origin for an empty or "*" list; otherwise the
// Origin header must match an entry exactly. Requests without Origin (native
// clients) are allowed.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || (len(allowed) == 1 && allowed[0] == "*") {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}

func (h *RealtimeHandler) Connect(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warnw("websocket upgrade failed", "error", err, "user_id", who.ID)
		return
	}

	h.logger.Debugw("websocket connected", "user_id", who.ID)
	h.registry.Serve(c.Request.Context(), ws, who.ID, h.cfg)
	h.logger.Debugw("websocket disconnected", "user_id", who.ID)
}
