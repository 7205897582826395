package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stage"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the allocation engine over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openStageHandler    commands.OpenStageCommandHandler
	assignSourceHandler commands.AssignSourceCommandHandler
	setDriverHandler    commands.SetDriverCommandHandler
	saveStageHandler    commands.SaveStageCommandHandler

	// Query handlers
	getStageViewHandler     queries.GetStageViewQueryHandler
	getDriverSummaryHandler queries.GetDriverSummaryQueryHandler
	getDirectoryHandler     queries.GetEntityDirectoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openStageHandler commands.OpenStageCommandHandler,
	assignSourceHandler commands.AssignSourceCommandHandler,
	setDriverHandler commands.SetDriverCommandHandler,
	saveStageHandler commands.SaveStageCommandHandler,
	getStageViewHandler queries.GetStageViewQueryHandler,
	getDriverSummaryHandler queries.GetDriverSummaryQueryHandler,
	getDirectoryHandler queries.GetEntityDirectoryQueryHandler,
) *Server {
	return &Server{
		openStageHandler:        openStageHandler,
		assignSourceHandler:     assignSourceHandler,
		setDriverHandler:        setDriverHandler,
		saveStageHandler:        saveStageHandler,
		getStageViewHandler:     getStageViewHandler,
		getDriverSummaryHandler: getDriverSummaryHandler,
		getDirectoryHandler:     getDirectoryHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	stages := api.Group("/orders/:orderId/stages/:stage")
	stages.POST("/open", s.OpenStage)
	stages.GET("/view", s.GetStageView)
	stages.PUT("/assignments", s.AssignSource)
	stages.PUT("/routes/:routeId/driver", s.SetDriver)
	stages.POST("/save", s.SaveStage)
	stages.GET("/driver-summary", s.GetDriverSummary)

	api.GET("/directories/:kind", s.GetDirectory)
}

// badRequest renders an input error. Used for path, body and command
// construction failures.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// handlerError renders a use case failure, classifying by error kind.
func handlerError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func stageParam(ctx echo.Context) (stage.Stage, error) {
	return stage.StageFromString(ctx.Param("stage"))
}

// OpenStage handles POST /api/v1/orders/:orderId/stages/:stage/open.
// Builds the stage worksheet from the order and the best available payload,
// then returns the fresh editing view.
func (s *Server) OpenStage(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewOpenStageCommand(ctx.Param("orderId"), stg)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.openStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return s.renderView(ctx, ctx.Param("orderId"), stg)
}

// GetStageView handles GET /api/v1/orders/:orderId/stages/:stage/view.
func (s *Server) GetStageView(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.renderView(ctx, ctx.Param("orderId"), stg)
}

func (s *Server) renderView(ctx echo.Context, orderID string, stg stage.Stage) error {
	query, err := queries.NewGetStageViewQuery(orderID, stg)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.getStageViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// AssignSource handles PUT /api/v1/orders/:orderId/stages/:stage/assignments.
// Applies one row edit and returns the recomputed view, including any rows
// and routes the edit derived.
func (s *Server) AssignSource(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AssignSourceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	rowID, err := kernel.ParseRowID(req.RowID)
	if err != nil {
		return badRequest(ctx, err)
	}

	entityType, err := kernel.EntityTypeFromString(req.EntityType)
	if err != nil {
		return badRequest(ctx, err)
	}

	place, err := allocation.PlaceFromString(req.Place)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignSourceCommand(
		ctx.Param("orderId"),
		stg,
		rowID,
		entityType,
		req.AssignedTo,
		kernel.NewQuantityFromFloat(req.AssignedQty),
		kernel.NewQuantityFromFloat(req.AssignedBoxes),
		kernel.NewQuantityFromFloat(req.Price),
		place,
		req.TapeColor,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.assignSourceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return s.renderView(ctx, ctx.Param("orderId"), stg)
}

// SetDriver handles PUT /api/v1/orders/:orderId/stages/:stage/routes/:routeId/driver.
func (s *Server) SetDriver(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SetDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewSetDriverCommand(
		ctx.Param("orderId"),
		stg,
		ctx.Param("routeId"),
		req.Driver,
		req.Labours,
		req.Status,
		req.DropDriver,
		req.CollectionStatus,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.setDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return s.renderView(ctx, ctx.Param("orderId"), stg)
}

// SaveStage handles POST /api/v1/orders/:orderId/stages/:stage/save.
func (s *Server) SaveStage(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SaveStageRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewSaveStageCommand(ctx.Param("orderId"), stg, req.CollectionType)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.saveStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverSummary handles GET /api/v1/orders/:orderId/stages/:stage/driver-summary.
func (s *Server) GetDriverSummary(ctx echo.Context) error {
	stg, err := stageParam(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDriverSummaryQuery(ctx.Param("orderId"), stg)
	if err != nil {
		return badRequest(ctx, err)
	}

	summary, err := s.getDriverSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetDirectory handles GET /api/v1/directories/:kind.
func (s *Server) GetDirectory(ctx echo.Context) error {
	query, err := queries.NewGetEntityDirectoryQuery(ctx.Param("kind"))
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.getDirectoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}
