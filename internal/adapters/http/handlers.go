package httpadapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/engine"
)

// Handler exposes the engine over a JSON API. Grids cross the wire in the
// canonical text encoding: nine strings of nine cells, '1'..'9' or '.'.
type Handler struct {
	Engine *engine.Engine
}

func New(e *engine.Engine) *Handler { return &Handler{Engine: e} }

// Register mounts the API under /api/v1.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/puzzle", h.NewPuzzle)
	v1.POST("/check", h.Check)
	v1.POST("/hint", h.Hint)
	v1.POST("/solve", h.Solve)
	v1.GET("/board", h.Board)
}

type gridReq struct {
	Board []string `json:"board" binding:"required"`
}

func bindGrid(c *gin.Context) (domain.Grid, bool) {
	var req gridReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return domain.Grid{}, false
	}
	g, err := domain.ParseRows(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid board", "message": err.Error()})
		return domain.Grid{}, false
	}
	return g, true
}

func (h *Handler) NewPuzzle(c *gin.Context) {
	puzzle, err := h.Engine.NewPuzzle(c.Request.Context())
	if err != nil {
		log.Err(err).Msg("generate puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": puzzle.Rows()})
}

func (h *Handler) Check(c *gin.Context) {
	g, ok := bindGrid(c)
	if !ok {
		return
	}
	done := h.Engine.CompleteAndValid(g)
	c.JSON(http.StatusOK, gin.H{"ok": done, "message": h.Engine.LastMessage()})
}

func (h *Handler) Hint(c *gin.Context) {
	g, ok := bindGrid(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Engine.Hint(c.Request.Context(), g))
}

func (h *Handler) Solve(c *gin.Context) {
	g, ok := bindGrid(c)
	if !ok {
		return
	}
	solved, out, st := h.Engine.Solve(c.Request.Context(), g)
	if out != domain.Solved {
		log.Warn().Stringer("outcome", out).Dur("dur", st.Duration).Int("nodes", st.Nodes).Msg("solve failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      out.String(),
			"durationMs": st.Duration.Milliseconds(),
			"nodes":      st.Nodes,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"board":      solved.Rows(),
		"outcome":    out.String(),
		"durationMs": st.Duration.Milliseconds(),
		"nodes":      st.Nodes,
	})
}

func (h *Handler) Board(c *gin.Context) {
	b := h.Engine.Board()
	c.JSON(http.StatusOK, gin.H{"board": b.Rows()})
}
