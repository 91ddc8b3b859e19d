package http

import (
	"net/http"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"

	"github.com/labstack/echo/v4"
)

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var request CreateLoadRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	loadID := kernel.NewUUID()
	if request.ID != "" {
		parsed, err := kernel.UUIDFromString(request.ID)
		if err != nil {
			return writeBadRequest(ctx, "Invalid load id: "+err.Error())
		}
		loadID = parsed
	}

	schedule := make(map[string]kernel.Date, len(request.DeliverySchedule))
	for city, raw := range request.DeliverySchedule {
		date, err := kernel.DateFromString(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid delivery date for "+city+": "+err.Error())
		}
		schedule[city] = date
	}

	var defaultDate kernel.Date
	if request.DefaultDeliveryDate != "" {
		parsed, err := kernel.DateFromString(request.DefaultDeliveryDate)
		if err != nil {
			return writeBadRequest(ctx, "Invalid default delivery date: "+err.Error())
		}
		defaultDate = parsed
	}

	cmd, err := commands.NewCreateLoadCommand(loadID, schedule, defaultDate)
	if err != nil {
		return writeBadRequest(ctx, "Invalid load data: "+err.Error())
	}

	ld, err := s.handlers.CreateLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, loadAggregateToDTO(ld))
}

// GetLoad handles GET /api/v1/loads/:id.
func (s *Server) GetLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid load id: "+err.Error())
	}

	query, err := queries.NewGetLoadQuery(loadID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, loadToDTO(response))
}

// DeleteLoad handles DELETE /api/v1/loads/:id.
func (s *Server) DeleteLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid load id: "+err.Error())
	}

	cmd, err := commands.NewDeleteLoadCommand(loadID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.handlers.DeleteLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceLoadStatus handles POST /api/v1/loads/:id/status.
func (s *Server) AdvanceLoadStatus(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid load id: "+err.Error())
	}

	var request StatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := load.StatusFromString(request.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceLoadStatusCommand(loadID, status)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	ld, err := s.handlers.AdvanceLoadStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, loadAggregateToDTO(ld))
}

// ScrubMembership handles POST /api/v1/loads/:id/scrub.
func (s *Server) ScrubMembership(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid load id: "+err.Error())
	}

	cmd, err := commands.NewScrubLoadMembershipCommand(loadID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.handlers.ScrubMembership.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RepairResult{Removed: result.Removed})
}
