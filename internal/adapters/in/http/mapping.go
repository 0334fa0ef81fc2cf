package http

import (
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func detailToAPI(detail queries.OrderDetail) servers.OrderDetail {
	items := make([]servers.OrderItem, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, servers.OrderItem{
			Id:          item.ID.Bytes(),
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.String(),
		})
	}

	return servers.OrderDetail{
		Id:                  detail.ID.Bytes(),
		CustomerId:          apiUUID(detail.CustomerID),
		Status:              servers.Status(detail.Status.String()),
		TotalPrice:          detail.TotalPrice.String(),
		QrCode:              nonEmpty(detail.QRCode),
		PaymentPreferenceId: nonEmpty(detail.PaymentPreferenceID),
		Items:               items,
		CreatedAt:           detail.CreatedAt,
		UpdatedAt:           detail.UpdatedAt,
	}
}

func createResultToAPI(result commands.CreateOrderResult) servers.OrderDetail {
	items := make([]servers.OrderItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, servers.OrderItem{
			Id:          item.ID.Bytes(),
			ProductId:   item.ProductID.Bytes(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal.String(),
		})
	}

	return servers.OrderDetail{
		Id:         result.ID.Bytes(),
		CustomerId: apiUUID(result.CustomerID),
		Status:     servers.Status(result.Status.String()),
		TotalPrice: result.TotalPrice.String(),
		Items:      items,
		CreatedAt:  result.CreatedAt,
	}
}

func pageToAPI(page queries.ListOrdersResponse) servers.OrderPage {
	items := make([]servers.OrderSummary, 0, len(page.Items))
	for _, summary := range page.Items {
		items = append(items, servers.OrderSummary{
			Id:           summary.ID.Bytes(),
			CustomerId:   apiUUID(summary.CustomerID),
			CustomerName: summary.CustomerName,
			Status:       servers.Status(summary.Status.String()),
			TotalPrice:   summary.TotalPrice.String(),
			ItemCount:    summary.ItemCount,
			CreatedAt:    summary.CreatedAt,
			UpdatedAt:    summary.UpdatedAt,
		})
	}

	return servers.OrderPage{
		Items:      items,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

func apiUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
