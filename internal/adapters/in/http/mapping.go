package http

import (
	"fmt"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/generated/servers"
)

func editPath(orderID kernel.UUID) string {
	return fmt.Sprintf(editOrderPath, orderID.String())
}

func intentFlags(body servers.OrderSubmission) commands.IntentFlags {
	return commands.IntentFlags{
		AddNewItem:        isSet(body.AddNewItem),
		TransferToKitchen: isSet(body.TransferToKitchen),
		DeleteOrder:       isSet(body.DeleteOrder),
	}
}

func itemSubmissions(body servers.OrderSubmission) []order.ItemSubmission {
	if body.Items == nil {
		return nil
	}

	rows := *body.Items
	submissions := make([]order.ItemSubmission, 0, len(rows))
	for _, row := range rows {
		submissions = append(submissions, order.ItemSubmission{
			ID:        valueOf(row.Id),
			ProductID: valueOf(row.ProductId),
			Quantity:  valueOf(row.Quantity),
		})
	}
	return submissions
}

func toOrder(response queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = servers.OrderItem{
			Id:          item.ID.Bytes(),
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			LineTotal:   item.LineTotal.String(),
		}
	}

	return servers.Order{
		Id:         response.ID.Bytes(),
		Step:       servers.Step(response.Step.String()),
		Version:    response.Version,
		Items:      items,
		TotalPrice: response.TotalPrice.String(),
	}
}

func toStepChange(result commands.AdvanceOrderStepResult) servers.StepChange {
	response := servers.StepChange{
		Id:      result.OrderID.Bytes(),
		Step:    servers.Step(result.Step.String()),
		Version: result.Version,
	}
	if n := result.Notification; n != nil {
		response.Notification = &servers.Notification{
			Kind:              n.Kind().String(),
			Message:           n.Message(),
			DisplayDurationMs: n.DisplayDurationMs(),
			Color:             n.Color(),
		}
	}
	return response
}

func toOrderSummaries(orders []queries.OrderSummary) []servers.OrderSummary {
	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		items := make([]servers.OrderSummaryItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = servers.OrderSummaryItem{
				Id:          item.ID.Bytes(),
				ProductId:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
			}
		}

		response[i] = servers.OrderSummary{
			Id:        o.ID.Bytes(),
			Step:      servers.Step(o.Step.String()),
			CreatedAt: o.CreatedAt,
			Items:     items,
		}
	}
	return response
}

func toOrderForm(form queries.OrderForm) servers.OrderForm {
	rows := make([]servers.FormRow, len(form.Rows))
	for i, row := range form.Rows {
		rows[i] = servers.FormRow{
			ProductId: row.ProductID,
			Quantity:  row.Quantity,
		}
		if row.ID != nil {
			id := row.ID.Bytes()
			rows[i].Id = &id
		}
	}

	response := servers.OrderForm{
		Step:     servers.Step(form.Step.String()),
		Rows:     rows,
		Products: toProducts(form.Products),
	}
	if form.OrderID != nil {
		id := form.OrderID.Bytes()
		response.OrderId = &id
	}
	return response
}

func toProducts(products []queries.ProductView) []servers.Product {
	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = servers.Product{
			Id:        p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice.String(),
		}
	}
	return response
}

func isSet(flag *bool) bool {
	return flag != nil && *flag
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
