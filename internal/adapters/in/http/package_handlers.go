package http

import (
	"net/http"

	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var request CreatePackageRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	packageID := kernel.NewUUID()
	if request.ID != "" {
		parsed, err := kernel.UUIDFromString(request.ID)
		if err != nil {
			return writeBadRequest(ctx, "Invalid package id: "+err.Error())
		}
		packageID = parsed
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid customer id: "+err.Error())
	}

	var receivedDate kernel.Date
	if request.ReceivedDate != "" {
		if receivedDate, err = kernel.DateFromString(request.ReceivedDate); err != nil {
			return writeBadRequest(ctx, "Invalid received date: "+err.Error())
		}
	}

	weight := decimal.Zero
	if request.Weight != "" {
		if weight, err = decimal.NewFromString(request.Weight); err != nil {
			return writeBadRequest(ctx, "Invalid weight: "+err.Error())
		}
	}

	cmd, err := commands.NewCreatePackageCommand(
		packageID, customerID, receivedDate, weight, request.DestinationCity,
	)
	if err != nil {
		return writeBadRequest(ctx, "Invalid package data: "+err.Error())
	}

	pkg, err := s.handlers.CreatePackage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, packageAggregateToDTO(pkg))
}

// GetPackage handles GET /api/v1/packages/:id.
func (s *Server) GetPackage(ctx echo.Context) error {
	query, err := s.packageQuery(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageToDTO(response))
}

// ListPackages handles GET /api/v1/packages. Exactly one of the customerId,
// status, and receivedDate query parameters must be provided.
func (s *Server) ListPackages(ctx echo.Context) error {
	customerParam := ctx.QueryParam("customerId")
	statusParam := ctx.QueryParam("status")
	dateParam := ctx.QueryParam("receivedDate")

	provided := 0
	for _, param := range []string{customerParam, statusParam, dateParam} {
		if param != "" {
			provided++
		}
	}
	if provided != 1 {
		return writeBadRequest(ctx, "Provide exactly one of customerId, status, receivedDate")
	}

	var (
		query queries.ListPackagesQuery
		err   error
	)
	switch {
	case customerParam != "":
		var customerID kernel.UUID
		if customerID, err = kernel.UUIDFromString(customerParam); err == nil {
			query, err = queries.NewListPackagesByCustomerQuery(customerID)
		}
	case statusParam != "":
		var status packages.ShipmentStatus
		if status, err = packages.ShipmentStatusFromString(statusParam); err == nil {
			query, err = queries.NewListPackagesByStatusQuery(status)
		}
	default:
		var receivedDate kernel.Date
		if receivedDate, err = kernel.DateFromString(dateParam); err == nil {
			query, err = queries.NewListPackagesByReceivedDateQuery(receivedDate)
		}
	}
	if err != nil {
		return writeBadRequest(ctx, "Invalid filter: "+err.Error())
	}

	summaries, err := s.handlers.ListPackages.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PackageSummary, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, packageSummaryToDTO(summary))
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeletePackage handles DELETE /api/v1/packages/:id. Deletion is refused
// while the package carries a purchased, paid label.
func (s *Server) DeletePackage(ctx echo.Context) error {
	query, err := s.packageQuery(ctx)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	current, err := s.handlers.GetPackage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	if current.LabelStatus == "purchased" && current.PaymentStatus == "paid" {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Package has a purchased, paid label and cannot be deleted",
		})
	}

	cmd, err := commands.NewDeletePackageCommand(query.PackageID())
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.handlers.DeletePackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignPackages handles POST /api/v1/packages/assign. The response is always
// 200: per-package outcomes ride in the succeeded and failed fields.
func (s *Server) AssignPackages(ctx echo.Context) error {
	var request AssignRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	loadID, err := kernel.UUIDFromString(request.LoadID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid load id: "+err.Error())
	}

	cmd, err := commands.NewAssignPackagesCommand(request.PackageIDs, loadID, request.OnlyIfUnassigned)
	if err != nil {
		return writeBadRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	result, err := s.handlers.AssignPackages.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkResultToDTO(result))
}

// UnassignPackage handles POST /api/v1/packages/:id/unassign.
func (s *Server) UnassignPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	cmd, err := commands.NewUnassignPackageCommand(packageID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.handlers.UnassignPackage.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Consolidate handles POST /api/v1/packages/:id/consolidate. The path id is
// the child; the parent rides in the body.
func (s *Server) Consolidate(ctx echo.Context) error {
	childID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	var request ConsolidateRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	parentID, err := kernel.UUIDFromString(request.ParentID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid parent id: "+err.Error())
	}

	cmd, err := commands.NewConsolidateCommand(childID, parentID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.handlers.Consolidate.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Deconsolidate handles POST /api/v1/packages/:id/deconsolidate.
func (s *Server) Deconsolidate(ctx echo.Context) error {
	childID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	cmd, err := commands.NewDeconsolidateCommand(childID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	if err = s.handlers.Deconsolidate.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentStatus handles POST /api/v1/packages/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	var request StatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	status, err := packages.ShipmentStatusFromString(request.Status)
	if err != nil {
		return writeBadRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(packageID, status)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	pkg, err := s.handlers.UpdateShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, packageAggregateToDTO(pkg))
}

// ReconcileIndexes handles POST /api/v1/packages/:id/reconcile.
func (s *Server) ReconcileIndexes(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	cmd, err := commands.NewReconcilePackageIndexesCommand(packageID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	result, err := s.handlers.ReconcileIndexes.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RepairResult{Stale: result.Stale, Missing: result.Missing})
}

// GetExpectedDeliveryDate handles GET /api/v1/packages/:id/expected-delivery-date.
func (s *Server) GetExpectedDeliveryDate(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid package id: "+err.Error())
	}

	query, err := queries.NewGetExpectedDeliveryDateQuery(packageID)
	if err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	response, err := s.handlers.GetExpectedDeliveryDate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	dto := ExpectedDeliveryDate{PackageID: response.PackageID.String()}
	if response.Date != nil {
		raw := response.Date.String()
		dto.Date = &raw
	}
	return ctx.JSON(http.StatusOK, dto)
}

func (s *Server) packageQuery(ctx echo.Context) (queries.GetPackageQuery, error) {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return queries.GetPackageQuery{}, err
	}
	return queries.NewGetPackageQuery(packageID)
}
