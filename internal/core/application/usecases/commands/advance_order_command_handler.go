package commands

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

const (
	harvestQuality = "premium"

	packageType        = "pie"
	packageSize        = "medium"
	packageTemperature = "warm"
)

// AdvanceOrderCommandHandler is the fulfillment saga driver. It walks an
// order through PICKING, PREPPING, BAKING and DELIVERING by submitting one
// collaborator job per stage, waiting out the stage's settle delay, and
// recording every state change together with its audit entry in a single
// transaction.
//
// The driver is re-entrant: each stage runs only when its precondition state
// is the order's current state, so a crashed saga resumes exactly where it
// stopped and an order in a terminal state is left untouched.
//
// Collaborator failures do not propagate to the caller: the order transitions
// to ERROR carrying the failure message verbatim, and Handle returns nil.
// Only infrastructure failures (persistence, cancelled context) surface as
// errors.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.RecipeCatalog
	harvester  ports.StageClient
	baker      ports.StageClient
	courier    ports.StageClient
	settings   SagaSettings
}

// NewAdvanceOrderCommandHandler creates the saga driver.
// Each StageClient is the collaborator for the stage it is named after.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.RecipeCatalog,
	harvester ports.StageClient,
	baker ports.StageClient,
	courier ports.StageClient,
	settings SagaSettings,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		harvester:  harvester,
		baker:      baker,
		courier:    courier,
		settings:   settings,
	}
}

// Handle runs the saga from the order's current state to completion or ERROR.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.State() == order.Ordered {
		if err = h.transition(ctx, aggregate, order.Picking, ""); err != nil {
			return err
		}
	}

	if aggregate.State() == order.Picking {
		if err = h.runPicking(ctx, aggregate); err != nil || aggregate.State() == order.Errored {
			return err
		}
	}

	if aggregate.State() == order.Prepping {
		if err = h.runPrepping(ctx, aggregate); err != nil {
			return err
		}
	}

	if aggregate.State() == order.Baking {
		if err = h.runBaking(ctx, aggregate); err != nil || aggregate.State() == order.Errored {
			return err
		}
	}

	if aggregate.State() == order.Delivering {
		if err = h.runDelivery(ctx, aggregate); err != nil || aggregate.State() == order.Errored {
			return err
		}
	}

	return nil
}

// runPicking submits the harvest job, settles and moves PICKING -> PREPPING.
// Re-entry in PICKING submits the harvest again: stage side effects are not
// exactly-once, and a duplicate harvest beats a stalled order.
func (h *AdvanceOrderCommandHandler) runPicking(ctx context.Context, aggregate *order.Order) error {
	recipe, err := h.catalog.Get(ctx, aggregate.PieType().String())
	if err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	job, err := h.harvester.Submit(ctx, ports.StageRequest{
		PieType:  aggregate.PieType().String(),
		Quantity: recipe.HarvestQuantity(aggregate.PieType().FruitIngredient()),
		Quality:  harvestQuality,
	})
	if err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = aggregate.SetPickerJobID(job.ID); err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = h.save(ctx, aggregate); err != nil {
		return err
	}

	if err = h.settle(ctx, h.settings.PickingSettle); err != nil {
		return err
	}

	return h.transition(ctx, aggregate, order.Prepping, "")
}

// runPrepping settles the prep work and moves PREPPING -> BAKING.
func (h *AdvanceOrderCommandHandler) runPrepping(ctx context.Context, aggregate *order.Order) error {
	if err := h.settle(ctx, h.settings.PreppingSettle); err != nil {
		return err
	}

	return h.transition(ctx, aggregate, order.Baking, "")
}

// runBaking submits the oven job per the recipe, settles and moves
// BAKING -> DELIVERING.
func (h *AdvanceOrderCommandHandler) runBaking(ctx context.Context, aggregate *order.Order) error {
	recipe, err := h.catalog.Get(ctx, aggregate.PieType().String())
	if err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	job, err := h.baker.Submit(ctx, ports.StageRequest{
		PieType:     aggregate.PieType().String(),
		Temperature: recipe.BakingTemp(),
		Duration:    recipe.BakingTime(),
	})
	if err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = aggregate.SetBakerJobID(job.ID); err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = h.save(ctx, aggregate); err != nil {
		return err
	}

	if err = h.settle(ctx, h.settings.BakingSettle); err != nil {
		return err
	}

	return h.transition(ctx, aggregate, order.Delivering, "")
}

// runDelivery submits the delivery job, settles and moves DELIVERING ->
// COMPLETED.
func (h *AdvanceOrderCommandHandler) runDelivery(ctx context.Context, aggregate *order.Order) error {
	job, err := h.courier.Submit(ctx, ports.StageRequest{
		PieType:     aggregate.PieType().String(),
		Destination: aggregate.Address(),
		Package: ports.PackageSpec{
			Type:        packageType,
			Size:        packageSize,
			Temperature: packageTemperature,
		},
	})
	if err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = aggregate.SetDeliveryID(job.ID); err != nil {
		return h.failOrder(ctx, aggregate, err)
	}

	if err = h.save(ctx, aggregate); err != nil {
		return err
	}

	if err = h.settle(ctx, h.settings.DeliveringSettle); err != nil {
		return err
	}

	return h.transition(ctx, aggregate, order.Completed, "")
}

// failOrder records a collaborator failure as an ERROR transition carrying the
// failure message verbatim. The failure itself is swallowed: it lives in the
// order's state and history, not in the saga's return value.
func (h *AdvanceOrderCommandHandler) failOrder(ctx context.Context, aggregate *order.Order, cause error) error {
	return h.transition(ctx, aggregate, order.Errored, cause.Error())
}

// transition applies a state change to the order and appends the matching
// audit record, persisting both in one transaction. Writing the record before
// continuing is what lets a restarted saga trust the persisted state.
func (h *AdvanceOrderCommandHandler) transition(
	ctx context.Context,
	aggregate *order.Order,
	to order.State,
	errorMessage string,
) error {
	from := aggregate.State()
	if err := aggregate.TransitionTo(to); err != nil {
		return err
	}

	record, err := order.NewTransition(aggregate.ID(), &from, to, "", errorMessage)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.TransitionLogRepository().Append(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// save persists the order's collaborator job handle outside of a state change.
func (h *AdvanceOrderCommandHandler) save(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// settle waits out a stage's settle delay. Returns early with the context's
// error on cancellation so a shutting-down process does not keep advancing.
func (h *AdvanceOrderCommandHandler) settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
