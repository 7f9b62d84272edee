// Package http exposes the bakery's REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for order intake and tracking.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	getOrderHandler    queries.GetOrderQueryHandler
	listOrdersHandler  queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/api/v1/orders", s.ListOrders)
}

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateOrderRequest is the order intake payload.
type CreateOrderRequest struct {
	PieType  string `json:"pieType"`
	Customer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customer"`
	DeliveryAddress struct {
		Street string `json:"street"`
		City   string `json:"city"`
		State  string `json:"state"`
		Zip    string `json:"zip"`
	} `json:"deliveryAddress"`
}

// CreateOrderResponse acknowledges a placed order.
type CreateOrderResponse struct {
	OrderID           string    `json:"orderId"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	CreatedAt         time.Time `json:"createdAt"`
}

// OrderDetailResponse is the full view of one order.
type OrderDetailResponse struct {
	OrderID  string `json:"orderId"`
	PieType  string `json:"pieType"`
	Customer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customer"`
	DeliveryAddress struct {
		Street string `json:"street"`
		City   string `json:"city"`
		State  string `json:"state"`
		Zip    string `json:"zip"`
	} `json:"deliveryAddress"`
	Status            string                 `json:"status"`
	PickerJobID       *string                `json:"pickerJobId"`
	BakerJobID        *string                `json:"bakerJobId"`
	DeliveryID        *string                `json:"deliveryId"`
	EstimatedDelivery time.Time              `json:"estimatedDelivery"`
	CreatedAt         time.Time              `json:"createdAt"`
	History           []HistoryEntryResponse `json:"history"`
}

// HistoryEntryResponse is one entry of an order's state history.
type HistoryEntryResponse struct {
	State        string    `json:"state"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes"`
	ErrorMessage string    `json:"errorMessage"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	OrderID           string    `json:"orderId"`
	PieType           string    `json:"pieType"`
	CustomerName      string    `json:"customerName"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// ListOrdersResponse wraps the order listing.
type ListOrdersResponse struct {
	Orders []OrderSummaryResponse `json:"orders"`
}

// CreateOrder handles POST /api/v1/orders - places a new order and starts its
// fulfillment saga. Validation failures come back synchronously as 400;
// everything that happens to the order afterwards is visible via GET.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "CREATE_ORDER_FAILED",
			Message: "Invalid request body",
		})
	}

	cmd, err := s.buildCreateOrderCommand(req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "CREATE_ORDER_FAILED",
			Message: err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "CREATE_ORDER_FAILED",
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:           created.ID().String(),
		Status:            created.State().String(),
		EstimatedDelivery: created.EstimatedDelivery(),
		CreatedAt:         created.CreatedAt(),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with history.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "ORDER_NOT_FOUND",
			Message: "Order not found",
		})
	}

	detail, err := s.fetchDetail(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "ORDER_NOT_FOUND",
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "GET_ORDER_FAILED",
			Message: "Failed to retrieve order",
		})
	}

	resp := OrderDetailResponse{
		OrderID:           detail.ID.String(),
		PieType:           detail.PieType,
		Status:            detail.State,
		PickerJobID:       detail.PickerJobID,
		BakerJobID:        detail.BakerJobID,
		DeliveryID:        detail.DeliveryID,
		EstimatedDelivery: detail.EstimatedDelivery,
		CreatedAt:         detail.CreatedAt,
		History:           make([]HistoryEntryResponse, 0, len(detail.History)),
	}
	resp.Customer.Name = detail.CustomerName
	resp.Customer.Email = detail.CustomerEmail
	resp.Customer.Phone = detail.CustomerPhone
	resp.DeliveryAddress.Street = detail.DeliveryStreet
	resp.DeliveryAddress.City = detail.DeliveryCity
	resp.DeliveryAddress.State = detail.DeliveryState
	resp.DeliveryAddress.Zip = detail.DeliveryZip

	for _, entry := range detail.History {
		resp.History = append(resp.History, HistoryEntryResponse{
			State:        entry.To,
			Timestamp:    entry.Timestamp,
			Notes:        entry.Notes,
			ErrorMessage: entry.ErrorMessage,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListOrders handles GET /api/v1/orders - retrieves recent orders, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "LIST_ORDERS_FAILED",
			Message: "Failed to retrieve orders",
		})
	}

	resp := ListOrdersResponse{Orders: make([]OrderSummaryResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, OrderSummaryResponse{
			OrderID:           o.ID.String(),
			PieType:           o.PieType,
			CustomerName:      o.CustomerName,
			Status:            o.State,
			CreatedAt:         o.CreatedAt,
			EstimatedDelivery: o.EstimatedDelivery,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) buildCreateOrderCommand(req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	pieType, err := order.NewPieType(req.PieType)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	customer, err := kernel.NewContact(req.Customer.Name, req.Customer.Email, req.Customer.Phone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	address, err := kernel.NewAddress(
		req.DeliveryAddress.Street,
		req.DeliveryAddress.City,
		req.DeliveryAddress.State,
		req.DeliveryAddress.Zip,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), pieType, customer, address)
}

func (s *Server) fetchDetail(ctx echo.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}
