package walkapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/driftwalk-api/api/identity"
	dmn "github.com/beka-birhanu/driftwalk-api/domain"
	"github.com/beka-birhanu/driftwalk-api/raster"
	"github.com/beka-birhanu/driftwalk-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Defaults supplies the fallback walk parameters applied when a request
// omits them.
type Defaults struct {
	Rows       int
	Cols       int
	Steps      int
	Directions int
}

// WalkServer handles HTTP requests for submitting and inspecting walk runs.
type WalkServer struct {
	runner   i.WalkRunner
	walkRepo i.WalkRepo
	defaults Defaults
}

// Config holds dependencies for creating a new WalkServer.
type Config struct {
	Runner   i.WalkRunner
	WalkRepo i.WalkRepo
	Defaults Defaults
}

// NewWalkServer creates a new WalkServer.
func NewWalkServer(config Config) *WalkServer {
	return &WalkServer{
		runner:   config.Runner,
		walkRepo: config.WalkRepo,
		defaults: config.Defaults,
	}
}

// RegisterPublic registers public routes.
func (c *WalkServer) RegisterPublic(route *gin.RouterGroup) {
}

// RegisterProtected registers privileged routes.
func (c *WalkServer) RegisterProtected(route *gin.RouterGroup) {
	walks := route.Group("/walks")
	{
		walks.POST("", c.submit)
		walks.GET("", c.list)
		walks.GET("/:id", c.status)
		walks.GET("/:id/raster", c.raster)
	}
}

// submit validates a walk request, fills in server defaults, and hands
// the run to the runner. The run executes asynchronously; the response
// carries the ID to poll.
func (c *WalkServer) submit(ctx *gin.Context) {
	ownerID, err := userID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request WalkRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Rows == 0 {
		request.Rows = c.defaults.Rows
	}
	if request.Cols == 0 {
		request.Cols = c.defaults.Cols
	}
	if request.Directions == 0 {
		request.Directions = c.defaults.Directions
	}
	steps := c.defaults.Steps
	if request.Steps != nil {
		steps = *request.Steps
	}

	run, err := dmn.NewWalkRun(dmn.WalkRunConfig{
		OwnerID:    ownerID,
		Rows:       request.Rows,
		Cols:       request.Cols,
		Directions: request.Directions,
		Steps:      steps,
		Revisit:    request.Revisit,
		Seed:       request.Seed,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.runner.Submit(ctx.Request.Context(), run); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue walk run"})
		return
	}

	ctx.JSON(http.StatusAccepted, newWalkResponse(run))
}

// list returns every run owned by the caller, most recent first.
func (c *WalkServer) list(ctx *gin.Context) {
	ownerID, err := userID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	runs, err := c.walkRepo.ByOwner(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load walk runs"})
		return
	}

	responses := make([]*WalkResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, newWalkResponse(run))
	}
	ctx.JSON(http.StatusOK, responses)
}

// status returns the current state of one run.
func (c *WalkServer) status(ctx *gin.Context) {
	run, ok := c.ownedRun(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newWalkResponse(run))
}

// raster streams the finished run's grid as an ESRI ASCII raster.
func (c *WalkServer) raster(ctx *gin.Context) {
	run, ok := c.ownedRun(ctx)
	if !ok {
		return
	}

	if len(run.Cells) == 0 {
		ctx.JSON(http.StatusConflict, gin.H{"error": "run has no raster yet"})
		return
	}

	grid, err := raster.FromCells(run.Rows, run.Cols, run.Cells)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "stored raster is corrupt"})
		return
	}

	var buf bytes.Buffer
	if err := grid.WriteASCII(&buf); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render raster"})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.ID.String()+".asc"))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// ownedRun loads the run named in the path and verifies the caller owns
// it. Missing and foreign runs are indistinguishable to the caller.
func (c *WalkServer) ownedRun(ctx *gin.Context) (*dmn.WalkRun, bool) {
	ownerID, err := userID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}

	runID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return nil, false
	}

	run, err := c.walkRepo.ByID(runID)
	if err != nil || run.OwnerID != ownerID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "walk run not found"})
		return nil, false
	}
	return run, true
}

// userID extracts the authenticated user's ID from the claims attached
// by the authorization middleware.
func userID(ctx *gin.Context) (uuid.UUID, error) {
	value, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		return uuid.Nil, errors.New("missing user claims")
	}

	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed user claims")
	}

	rawID, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing userID claim")
	}
	return uuid.Parse(rawID)
}
