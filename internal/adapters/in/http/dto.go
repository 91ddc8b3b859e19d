package http

import (
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
)

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatePackageRequest is the payload for POST /packages.
type CreatePackageRequest struct {
	ID              string `json:"id,omitempty"`
	CustomerID      string `json:"customerId"`
	ReceivedDate    string `json:"receivedDate,omitempty"`
	Weight          string `json:"weight,omitempty"`
	DestinationCity string `json:"destinationCity,omitempty"`
}

// CreateLoadRequest is the payload for POST /loads.
type CreateLoadRequest struct {
	ID                  string            `json:"id,omitempty"`
	DeliverySchedule    map[string]string `json:"deliverySchedule,omitempty"`
	DefaultDeliveryDate string            `json:"defaultDeliveryDate,omitempty"`
}

// AssignRequest is the payload for POST /packages/assign.
type AssignRequest struct {
	PackageIDs       []string `json:"packageIds"`
	LoadID           string   `json:"loadId"`
	OnlyIfUnassigned bool     `json:"onlyIfUnassigned,omitempty"`
}

// ConsolidateRequest is the payload for POST /packages/:id/consolidate.
type ConsolidateRequest struct {
	ParentID string `json:"parentId"`
}

// StatusRequest is the payload for status-transition endpoints.
type StatusRequest struct {
	Status string `json:"status"`
}

// PackageSummary is the compact package payload.
type PackageSummary struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customerId"`
	ReceivedDate    string `json:"receivedDate"`
	Status          string `json:"status"`
	Weight          string `json:"weight"`
	DestinationCity string `json:"destinationCity,omitempty"`
}

// Package is the full package payload.
type Package struct {
	PackageSummary

	LoadID        *string          `json:"loadId,omitempty"`
	ParentID      *string          `json:"parentId,omitempty"`
	Parent        *PackageSummary  `json:"parent,omitempty"`
	LabelStatus   string           `json:"labelStatus,omitempty"`
	PaymentStatus string           `json:"paymentStatus,omitempty"`
	Children      []PackageSummary `json:"children"`
}

// Load is the load payload.
type Load struct {
	ID                  string            `json:"id"`
	Status              string            `json:"status"`
	Membership          []string          `json:"membership"`
	TotalPackages       int               `json:"totalPackages"`
	TotalWeight         string            `json:"totalWeight"`
	DeliverySchedule    map[string]string `json:"deliverySchedule,omitempty"`
	DefaultDeliveryDate *string           `json:"defaultDeliveryDate,omitempty"`
}

// BulkAssignResult is the payload for POST /packages/assign responses.
type BulkAssignResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

// ExpectedDeliveryDate is the payload for the delivery-date lookup.
type ExpectedDeliveryDate struct {
	PackageID string  `json:"packageId"`
	Date      *string `json:"date"`
}

// RepairResult is the payload for reconcile and scrub endpoints.
type RepairResult struct {
	Stale   int `json:"stale,omitempty"`
	Missing int `json:"missing,omitempty"`
	Removed int `json:"removed,omitempty"`
}

func packageSummaryToDTO(summary queries.PackageSummary) PackageSummary {
	return PackageSummary{
		ID:              summary.ID.String(),
		CustomerID:      summary.CustomerID.String(),
		ReceivedDate:    summary.ReceivedDate.String(),
		Status:          summary.Status.String(),
		Weight:          summary.Weight.String(),
		DestinationCity: summary.DestinationCity,
	}
}

func packageToDTO(response queries.GetPackageQueryResponse) Package {
	dto := Package{
		PackageSummary: packageSummaryToDTO(response.PackageSummary),
		LabelStatus:    response.LabelStatus,
		PaymentStatus:  response.PaymentStatus,
		Children:       make([]PackageSummary, 0, len(response.Children)),
	}

	if response.LoadID != nil {
		raw := response.LoadID.String()
		dto.LoadID = &raw
	}
	if response.ParentID != nil {
		raw := response.ParentID.String()
		dto.ParentID = &raw
	}
	if response.Parent != nil {
		parent := packageSummaryToDTO(*response.Parent)
		dto.Parent = &parent
	}
	for _, child := range response.Children {
		dto.Children = append(dto.Children, packageSummaryToDTO(child))
	}

	return dto
}

func loadToDTO(response queries.GetLoadQueryResponse) Load {
	dto := Load{
		ID:               response.ID.String(),
		Status:           response.Status.String(),
		Membership:       make([]string, 0, len(response.Membership)),
		TotalPackages:    response.TotalPackages,
		TotalWeight:      response.TotalWeight.String(),
		DeliverySchedule: make(map[string]string, len(response.DeliverySchedule)),
	}

	for _, packageID := range response.Membership {
		dto.Membership = append(dto.Membership, packageID.String())
	}
	for city, date := range response.DeliverySchedule {
		dto.DeliverySchedule[city] = date.String()
	}
	if response.DefaultDeliveryDate != nil {
		raw := response.DefaultDeliveryDate.String()
		dto.DefaultDeliveryDate = &raw
	}

	return dto
}

// packageAggregateToDTO maps a freshly mutated aggregate onto the wire,
// without resolving children.
func packageAggregateToDTO(pkg *packages.Package) Package {
	dto := Package{
		PackageSummary: PackageSummary{
			ID:              pkg.ID().String(),
			CustomerID:      pkg.CustomerID().String(),
			ReceivedDate:    pkg.ReceivedDate().String(),
			Status:          pkg.Status().String(),
			Weight:          pkg.Weight().String(),
			DestinationCity: pkg.DestinationCity(),
		},
		LabelStatus:   pkg.LabelStatus(),
		PaymentStatus: pkg.PaymentStatus(),
		Children:      make([]PackageSummary, 0),
	}

	if loadID := pkg.LoadID(); loadID != nil {
		raw := loadID.String()
		dto.LoadID = &raw
	}
	if parentID := pkg.ParentID(); parentID != nil {
		raw := parentID.String()
		dto.ParentID = &raw
	}

	return dto
}

func loadAggregateToDTO(ld *load.Load) Load {
	dto := Load{
		ID:               ld.ID().String(),
		Status:           ld.Status().String(),
		Membership:       make([]string, 0, len(ld.Membership())),
		TotalPackages:    ld.TotalPackages(),
		TotalWeight:      ld.TotalWeight().String(),
		DeliverySchedule: make(map[string]string, len(ld.DeliverySchedule())),
	}

	for _, packageID := range ld.Membership() {
		dto.Membership = append(dto.Membership, packageID.String())
	}
	for city, date := range ld.DeliverySchedule() {
		dto.DeliverySchedule[city] = date.String()
	}
	if defaultDate := ld.DefaultDeliveryDate(); defaultDate != nil {
		raw := defaultDate.String()
		dto.DefaultDeliveryDate = &raw
	}

	return dto
}

func bulkResultToDTO(result commands.BulkResult) BulkAssignResult {
	dto := BulkAssignResult{
		Succeeded: make([]string, 0, len(result.Succeeded)),
		Failed:    make(map[string]string, len(result.Failed)),
	}

	for _, id := range result.Succeeded {
		dto.Succeeded = append(dto.Succeeded, id.String())
	}
	for id, err := range result.Failed {
		dto.Failed[id] = err.Error()
	}

	return dto
}
