package http

import (
	"net/http"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	SubmitOrder     commands.SubmitOrderCommandHandler
	WithdrawOrder   commands.WithdrawOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	Heartbeat       commands.HeartbeatCommandHandler
	ReserveJob      commands.ReserveJobCommandHandler
	PickupJob       commands.PickupJobCommandHandler
	CompleteJob     commands.CompleteJobCommandHandler
	FailJob         commands.FailJobCommandHandler
	MarkDroneBroken commands.MarkDroneBrokenCommandHandler
	MarkDroneFixed  commands.MarkDroneFixedCommandHandler
	SetDroneStatus  commands.SetDroneStatusCommandHandler

	GetCreatorOrders queries.GetCreatorOrdersQueryHandler
	GetCreatorOrder  queries.GetCreatorOrderQueryHandler
	GetCurrentJob    queries.GetCurrentJobQueryHandler
	GetOpenJobs      queries.GetOpenJobsQueryHandler
	GetAllOrders     queries.GetAllOrdersQueryHandler
	GetAllJobs       queries.GetAllJobsQueryHandler
	GetAllDrones     queries.GetAllDronesQueryHandler
}

// Server exposes the delivery API over HTTP. It translates requests into
// commands and queries and maps use case errors onto HTTP statuses.
type Server struct {
	handlers Handlers
	tokens   *TokenService
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers, tokens *TokenService) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
	}
}

// RegisterRoutes mounts the API. Routes are grouped by the role their
// tokens must carry: end users manage orders, drones work jobs, admins
// oversee the whole system.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/auth/token", s.IssueToken)

	orders := api.Group("/orders", s.tokens.RequireRole(RoleUser))
	orders.POST("", s.SubmitOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.POST("/:id/withdraw", s.WithdrawOrder)

	droneAPI := api.Group("/drone", s.tokens.RequireRole(RoleDrone))
	droneAPI.POST("/heartbeat", s.Heartbeat)
	droneAPI.GET("/jobs/current", s.GetCurrentJob)
	droneAPI.GET("/jobs/open", s.ListOpenJobs)
	droneAPI.POST("/jobs/:id/reserve", s.ReserveJob)
	droneAPI.POST("/jobs/:id/pickup", s.PickupJob)
	droneAPI.POST("/jobs/:id/complete", s.CompleteJob)
	droneAPI.POST("/jobs/:id/fail", s.FailJob)
	droneAPI.POST("/broken", s.MarkBroken)
	droneAPI.POST("/fixed", s.MarkFixed)

	admin := api.Group("/admin", s.tokens.RequireRole(RoleAdmin))
	admin.PATCH("/orders/:id", s.AdminUpdateOrder)
	admin.PUT("/drones/:id/status", s.AdminSetDroneStatus)
	admin.GET("/orders", s.AdminListOrders)
	admin.GET("/jobs", s.AdminListJobs)
	admin.GET("/drones", s.AdminListDrones)
}

// IssueToken handles POST /api/v1/auth/token - exchanges a name and role
// for a signed access token.
func (s *Server) IssueToken(ctx echo.Context) error {
	var req TokenRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	token, err := s.tokens.Issue(ctx.Request().Context(), req.Name, req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: token})
}

// SubmitOrder handles POST /api/v1/orders - accepts a new delivery order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	creatorID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	var req SubmitOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	origin, err := kernel.NewCoordinate(req.Origin.Lat, req.Origin.Lng)
	if err != nil {
		return respondBadRequest(ctx, "invalid origin: "+err.Error())
	}
	destination, err := kernel.NewCoordinate(req.Destination.Lat, req.Destination.Lng)
	if err != nil {
		return respondBadRequest(ctx, "invalid destination: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(orderID, creatorID, origin, destination)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.SubmitOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	creatorID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	query, err := queries.NewGetCreatorOrdersQuery(creatorID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	orders, err := s.handlers.GetCreatorOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderPayload, len(orders))
	for i, o := range orders {
		response[i] = orderPayload(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - returns one of the caller's
// orders together with the live progress estimate.
func (s *Server) GetOrder(ctx echo.Context) error {
	creatorID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetCreatorOrderQuery(creatorID, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	order, err := s.handlers.GetCreatorOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailPayload(order))
}

// WithdrawOrder handles POST /api/v1/orders/:id/withdraw - cancels one of
// the caller's orders.
func (s *Server) WithdrawOrder(ctx echo.Context) error {
	creatorID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewWithdrawOrderCommand(creatorID, orderID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.WithdrawOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Heartbeat handles POST /api/v1/drone/heartbeat - records the calling
// drone's position.
func (s *Server) Heartbeat(ctx echo.Context) error {
	droneID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	var req HeartbeatRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	coordinate, err := kernel.NewCoordinate(req.Lat, req.Lng)
	if err != nil {
		return respondBadRequest(ctx, "invalid coordinate: "+err.Error())
	}

	cmd, err := commands.NewHeartbeatCommand(droneID, coordinate)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.Heartbeat.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentJob handles GET /api/v1/drone/jobs/current - returns the job
// the calling drone is working on.
func (s *Server) GetCurrentJob(ctx echo.Context) error {
	droneID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	query, err := queries.NewGetCurrentJobQuery(droneID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	currentJob, err := s.handlers.GetCurrentJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, currentJobPayload(currentJob))
}

// ListOpenJobs handles GET /api/v1/drone/jobs/open - lists jobs available
// for reservation, oldest first.
func (s *Server) ListOpenJobs(ctx echo.Context) error {
	jobs, err := s.handlers.GetOpenJobs.Handle(
		ctx.Request().Context(), queries.NewGetOpenJobsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenJobPayload, len(jobs))
	for i, j := range jobs {
		response[i] = openJobPayload(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReserveJob handles POST /api/v1/drone/jobs/:id/reserve.
func (s *Server) ReserveJob(ctx echo.Context) error {
	return s.jobAction(ctx, func(droneID, jobID kernel.UUID) error {
		cmd, err := commands.NewReserveJobCommand(droneID, jobID)
		if err != nil {
			return err
		}
		return s.handlers.ReserveJob.Handle(ctx.Request().Context(), cmd)
	})
}

// PickupJob handles POST /api/v1/drone/jobs/:id/pickup.
func (s *Server) PickupJob(ctx echo.Context) error {
	return s.jobAction(ctx, func(droneID, jobID kernel.UUID) error {
		cmd, err := commands.NewPickupJobCommand(droneID, jobID)
		if err != nil {
			return err
		}
		return s.handlers.PickupJob.Handle(ctx.Request().Context(), cmd)
	})
}

// CompleteJob handles POST /api/v1/drone/jobs/:id/complete.
func (s *Server) CompleteJob(ctx echo.Context) error {
	return s.jobAction(ctx, func(droneID, jobID kernel.UUID) error {
		cmd, err := commands.NewCompleteJobCommand(droneID, jobID)
		if err != nil {
			return err
		}
		return s.handlers.CompleteJob.Handle(ctx.Request().Context(), cmd)
	})
}

// FailJob handles POST /api/v1/drone/jobs/:id/fail.
func (s *Server) FailJob(ctx echo.Context) error {
	return s.jobAction(ctx, func(droneID, jobID kernel.UUID) error {
		cmd, err := commands.NewFailJobCommand(droneID, jobID)
		if err != nil {
			return err
		}
		return s.handlers.FailJob.Handle(ctx.Request().Context(), cmd)
	})
}

// jobAction runs a drone-initiated action against the job named in the
// path, with the authenticated drone as the actor.
func (s *Server) jobAction(ctx echo.Context, action func(droneID, jobID kernel.UUID) error) error {
	droneID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid job id")
	}

	if err = action(droneID, jobID); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkBroken handles POST /api/v1/drone/broken - reports the calling drone
// as out of service.
func (s *Server) MarkBroken(ctx echo.Context) error {
	droneID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDroneBrokenCommand(droneID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkDroneBroken.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkFixed handles POST /api/v1/drone/fixed - returns the calling drone
// to service.
func (s *Server) MarkFixed(ctx echo.Context) error {
	droneID, err := actorID(ctx)
	if err != nil {
		return respondUnauthorized(ctx, err.Error())
	}

	cmd, err := commands.NewMarkDroneFixedCommand(droneID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkDroneFixed.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminUpdateOrder handles PATCH /api/v1/admin/orders/:id - changes an
// order's origin or destination while the delivery still allows it.
func (s *Server) AdminUpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var origin, destination *kernel.Coordinate
	if req.Origin != nil {
		coordinate, coordErr := kernel.NewCoordinate(req.Origin.Lat, req.Origin.Lng)
		if coordErr != nil {
			return respondBadRequest(ctx, "invalid origin: "+coordErr.Error())
		}
		origin = &coordinate
	}
	if req.Destination != nil {
		coordinate, coordErr := kernel.NewCoordinate(req.Destination.Lat, req.Destination.Lng)
		if coordErr != nil {
			return respondBadRequest(ctx, "invalid destination: "+coordErr.Error())
		}
		destination = &coordinate
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, origin, destination)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminSetDroneStatus handles PUT /api/v1/admin/drones/:id/status - forces
// a drone's status.
func (s *Server) AdminSetDroneStatus(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid drone id")
	}

	var req SetDroneStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := drone.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetDroneStatusCommand(droneID, status)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	if err = s.handlers.SetDroneStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminListOrders handles GET /api/v1/admin/orders.
func (s *Server) AdminListOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminOrderPayload, len(orders))
	for i, o := range orders {
		response[i] = adminOrderPayload(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdminListJobs handles GET /api/v1/admin/jobs.
func (s *Server) AdminListJobs(ctx echo.Context) error {
	jobs, err := s.handlers.GetAllJobs.Handle(
		ctx.Request().Context(), queries.NewGetAllJobsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminJobPayload, len(jobs))
	for i, j := range jobs {
		response[i] = adminJobPayload(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdminListDrones handles GET /api/v1/admin/drones.
func (s *Server) AdminListDrones(ctx echo.Context) error {
	drones, err := s.handlers.GetAllDrones.Handle(
		ctx.Request().Context(), queries.NewGetAllDronesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AdminDronePayload, len(drones))
	for i, d := range drones {
		response[i] = adminDronePayload(d)
	}

	return ctx.JSON(http.StatusOK, response)
}
