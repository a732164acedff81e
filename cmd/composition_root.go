package cmd

import (
	"log/slog"
	"time"

	deliveryhttp "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderJobUoWFactory = FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateWithdrawOrderCommandHandler() commands.WithdrawOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderJobUoWFactory = FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateHeartbeatCommandHandler() commands.HeartbeatCommandHandler {
	return commands.NewHeartbeatCommandHandler(c.droneUoWFactory())
}

func (c *CompositionRoot) CreateReserveJobCommandHandler() commands.ReserveJobCommandHandler {
	return commands.NewReserveJobCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePickupJobCommandHandler() commands.PickupJobCommandHandler {
	return commands.NewPickupJobCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateFailJobCommandHandler() commands.FailJobCommandHandler {
	return commands.NewFailJobCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkDroneBrokenCommandHandler() commands.MarkDroneBrokenCommandHandler {
	return commands.NewMarkDroneBrokenCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkDroneFixedCommandHandler() commands.MarkDroneFixedCommandHandler {
	return commands.NewMarkDroneFixedCommandHandler(c.droneUoWFactory())
}

func (c *CompositionRoot) CreateSetDroneStatusCommandHandler() commands.SetDroneStatusCommandHandler {
	return commands.NewSetDroneStatusCommandHandler(
		c.droneUoWFactory(),
		c.CreateMarkDroneBrokenCommandHandler(),
	)
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	return commands.NewCreateDroneCommandHandler(c.droneUoWFactory())
}

func (c *CompositionRoot) CreateCreateEndUserCommandHandler() commands.CreateEndUserCommandHandler {
	var f commands.EndUserUoWFactory = FuncEndUserUoWFactory(func() commands.EndUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEndUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignJobsCommandHandler() commands.AssignJobsCommandHandler {
	return commands.NewAssignJobsCommandHandler(
		c.fullUoWFactory(),
		c.CreateReserveJobCommandHandler(),
	)
}

func (c *CompositionRoot) CreateSweepHeartbeatsCommandHandler() commands.SweepHeartbeatsCommandHandler {
	return commands.NewSweepHeartbeatsCommandHandler(
		c.fullUoWFactory(),
		c.CreateMarkDroneBrokenCommandHandler(),
	)
}

func (c *CompositionRoot) CreateGetCreatorOrdersQueryHandler() queries.GetCreatorOrdersQueryHandler {
	return queries.NewGetCreatorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCreatorOrderQueryHandler() queries.GetCreatorOrderQueryHandler {
	return queries.NewGetCreatorOrderQueryHandler(&c.uowFactory)
}

func (c *CompositionRoot) CreateGetCurrentJobQueryHandler() queries.GetCurrentJobQueryHandler {
	return queries.NewGetCurrentJobQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenJobsQueryHandler() queries.GetOpenJobsQueryHandler {
	return queries.NewGetOpenJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDronesQueryHandler() queries.GetAllDronesQueryHandler {
	return queries.NewGetAllDronesQueryHandler(c.gormDB)
}

// CreateTokenService wires token issuance with on-demand identity
// registration.
func (c *CompositionRoot) CreateTokenService(secret string, ttl time.Duration) *deliveryhttp.TokenService {
	return deliveryhttp.NewTokenService(
		secret,
		ttl,
		&c.uowFactory,
		c.CreateCreateDroneCommandHandler(),
		c.CreateCreateEndUserCommandHandler(),
	)
}

// CreateHTTPHandlers bundles every handler the web server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() deliveryhttp.Handlers {
	return deliveryhttp.Handlers{
		SubmitOrder:     c.CreateSubmitOrderCommandHandler(),
		WithdrawOrder:   c.CreateWithdrawOrderCommandHandler(),
		UpdateOrder:     c.CreateUpdateOrderCommandHandler(),
		Heartbeat:       c.CreateHeartbeatCommandHandler(),
		ReserveJob:      c.CreateReserveJobCommandHandler(),
		PickupJob:       c.CreatePickupJobCommandHandler(),
		CompleteJob:     c.CreateCompleteJobCommandHandler(),
		FailJob:         c.CreateFailJobCommandHandler(),
		MarkDroneBroken: c.CreateMarkDroneBrokenCommandHandler(),
		MarkDroneFixed:  c.CreateMarkDroneFixedCommandHandler(),
		SetDroneStatus:  c.CreateSetDroneStatusCommandHandler(),

		GetCreatorOrders: c.CreateGetCreatorOrdersQueryHandler(),
		GetCreatorOrder:  c.CreateGetCreatorOrderQueryHandler(),
		GetCurrentJob:    c.CreateGetCurrentJobQueryHandler(),
		GetOpenJobs:      c.CreateGetOpenJobsQueryHandler(),
		GetAllOrders:     c.CreateGetAllOrdersQueryHandler(),
		GetAllJobs:       c.CreateGetAllJobsQueryHandler(),
		GetAllDrones:     c.CreateGetAllDronesQueryHandler(),
	}
}

// CreateJobManager wires the background assignment and sweep jobs.
func (c *CompositionRoot) CreateJobManager(schedule jobs.Schedule, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignJobsCommandHandler(),
		c.CreateSweepHeartbeatsCommandHandler(),
		schedule,
		logger,
	)
}

func (c *CompositionRoot) droneUoWFactory() commands.DroneUoWFactory {
	return FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncEndUserUoWFactory func() commands.EndUserUoW

func (f FuncEndUserUoWFactory) Create() commands.EndUserUoW {
	return f()
}

type FuncOrderJobUoWFactory func() commands.OrderJobUoW

func (f FuncOrderJobUoWFactory) Create() commands.OrderJobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
