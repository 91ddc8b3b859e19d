// Package http provides the echo HTTP adapter exposing the engine's
// operations under /api/v1. The adapter translates between wire payloads and
// commands/queries; the only business rule living here is the
// label-purchased-and-paid deletion guard, which belongs to the surrounding
// system rather than the core.
package http

import (
	"errors"
	"net/http"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the command and query handlers the server dispatches to.
type Handlers struct {
	CreatePackage        commands.CreatePackageCommandHandler
	CreateLoad           commands.CreateLoadCommandHandler
	AssignPackages       commands.AssignPackagesCommandHandler
	UnassignPackage      commands.UnassignPackageCommandHandler
	Consolidate          commands.ConsolidateCommandHandler
	Deconsolidate        commands.DeconsolidateCommandHandler
	UpdateShipmentStatus commands.UpdateShipmentStatusCommandHandler
	AdvanceLoadStatus    commands.AdvanceLoadStatusCommandHandler
	DeletePackage        commands.DeletePackageCommandHandler
	DeleteLoad           commands.DeleteLoadCommandHandler
	ReconcileIndexes     commands.ReconcilePackageIndexesCommandHandler
	ScrubMembership      commands.ScrubLoadMembershipCommandHandler

	GetPackage              queries.GetPackageQueryHandler
	ListPackages            queries.ListPackagesQueryHandler
	GetLoad                 queries.GetLoadQueryHandler
	GetExpectedDeliveryDate queries.GetExpectedDeliveryDateQueryHandler
}

// Server routes HTTP requests to the application layer.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/packages", s.CreatePackage)
	v1.GET("/packages", s.ListPackages)
	v1.GET("/packages/:id", s.GetPackage)
	v1.DELETE("/packages/:id", s.DeletePackage)
	v1.POST("/packages/assign", s.AssignPackages)
	v1.POST("/packages/:id/unassign", s.UnassignPackage)
	v1.POST("/packages/:id/consolidate", s.Consolidate)
	v1.POST("/packages/:id/deconsolidate", s.Deconsolidate)
	v1.POST("/packages/:id/status", s.UpdateShipmentStatus)
	v1.POST("/packages/:id/reconcile", s.ReconcileIndexes)
	v1.GET("/packages/:id/expected-delivery-date", s.GetExpectedDeliveryDate)

	v1.POST("/loads", s.CreateLoad)
	v1.GET("/loads/:id", s.GetLoad)
	v1.DELETE("/loads/:id", s.DeleteLoad)
	v1.POST("/loads/:id/status", s.AdvanceLoadStatus)
	v1.POST("/loads/:id/scrub", s.ScrubMembership)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps a core error to the wire. Validation-shaped failures are
// the caller's fault; missing records are 404; assignment conflicts and the
// deletion guard are 409; everything else is a 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidConsolidation),
		errors.Is(err, errs.ErrNotConsolidated):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
