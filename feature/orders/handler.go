package orders

import (
	"order-reconciler/core/logger"
	"order-reconciler/feature/orders/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/orders")
	group.Post("/", h.HandleCreateOrder)
	group.Get("/", h.HandleListOrders)
	group.Put("/", h.HandleUpdateOrder)
	group.Post("/ingest", h.HandleIngestAll)
	group.Post("/snapshot", h.HandleSnapshot)
	group.Get("/snapshots", h.HandleListSnapshots)
	group.Get("/:id", h.HandleGetOrder)
	group.Delete("/:id", h.HandleDeleteOrder)
	group.Post("/:id/match", h.HandleMatchOrder)
}

// HandleCreateOrder stores a new order and appends it to the ledger.
// @Summary Create Order
// @Description Store a new order locally and append its rows to the ledger tabs.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order"
// @Success 201 {object} models.Order "Created order"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [post]
func (h *Handler) HandleCreateOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Create(c.Context(), &order); err != nil {
		l.Error("Order create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleListOrders lists every stored key entry.
// @Summary List Orders
// @Description List all stored orders. Dual-keyed orders appear once per key.
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order "Orders"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	all, err := h.service.List()
	if err != nil {
		l.Error("Order list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(all)
}

// HandleGetOrder returns one order by key.
// @Summary Get Order
// @Description Get a single order by order id or row number.
// @Tags orders
// @Produce json
// @Param id path string true "Order id or row number"
// @Success 200 {object} models.Order "Order"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{id} [get]
func (h *Handler) HandleGetOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	order, err := h.service.Get(c.Params("id"))
	if err != nil {
		l.Error("Order get failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}

	return c.JSON(order)
}

// HandleUpdateOrder overwrites a stored order.
// @Summary Update Order
// @Description Overwrite a stored order and its ledger row.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order"
// @Success 200 {object} models.Order "Updated order"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders [put]
func (h *Handler) HandleUpdateOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.service.Update(c.Context(), &order); err != nil {
		l.Error("Order update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(order)
}

// HandleDeleteOrder removes one key from the store.
// @Summary Delete Order
// @Description Delete exactly the given key; the order's other key entry is untouched.
// @Tags orders
// @Produce json
// @Param id path string true "Order id or row number"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{id} [delete]
func (h *Handler) HandleDeleteOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Params("id")); err != nil {
		l.Error("Order delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleIngestAll bulk-loads the ledger into the store.
// @Summary Ingest Ledger
// @Description Fetch both ledger tabs and bulk-load them in one transaction.
// @Tags orders
// @Produce json
// @Success 201 {object} map[string]int "Processed row count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/ingest [post]
func (h *Handler) HandleIngestAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	processed, err := h.service.IngestAll(c.Context())
	if err != nil {
		l.Error("Ingest failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"rows": processed})
}

// HandleMatchOrder reconciles one order against the order-management API.
// @Summary Match Order
// @Description Fetch the order document by external numeric id and reconcile it against the local store.
// @Tags orders
// @Produce json
// @Param id path string true "External numeric order id"
// @Success 200 {object} reconcile.Outcome "Reconciliation outcome"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/{id}/match [post]
func (h *Handler) HandleMatchOrder(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	outcome, err := h.service.Match(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Order match failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(outcome)
}

// HandleSnapshot exports the store to object storage.
// @Summary Export Snapshot
// @Description Serialize all orders to JSON and upload them to the snapshot bucket.
// @Tags orders
// @Produce json
// @Success 201 {object} map[string]string "Snapshot object name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/snapshot [post]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	object, err := h.service.Snapshot(c.Context())
	if err != nil {
		l.Error("Snapshot failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"object": object})
}

// HandleListSnapshots lists exported snapshot objects.
// @Summary List Snapshots
// @Description List the names of all exported snapshot objects.
// @Tags orders
// @Produce json
// @Success 200 {array} string "Snapshot object names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /orders/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.ListSnapshots(c.Context())
	if err != nil {
		l.Error("Snapshot list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(names)
}
