package commands

import (
	"context"
	"sync"
	"time"

	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/core/domain/services"
	"rentalhub/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateOrderCommandHandler orchestrates one order mutation end to end:
// normalize the patch, read the pre-update snapshot, persist, append the
// audit record, and fan out the two notification channels.
//
// Persistence is the only authoritative step: its failure aborts the request.
// Every other side effect (snapshot read, audit insert, both e-mails, partner
// lookup) degrades to a logged no-op so that an e-mail provider outage can
// never block an order update. The sequence is ordered but not transactional;
// two concurrent updates to the same order may race on the snapshot, which is
// accepted.
type UpdateOrderCommandHandler struct {
	orders   ports.OrderRepository
	partners ports.DeliveryPartnerRepository
	notifier ports.Notifier
	policy   services.NotificationPolicy
	logger   *zap.Logger
}

// NewUpdateOrderCommandHandler creates the orchestrator with its injected
// collaborators. Nothing is held at package scope; each Handle call is a
// fresh read-modify-write-notify cycle.
func NewUpdateOrderCommandHandler(
	orders ports.OrderRepository,
	partners ports.DeliveryPartnerRepository,
	notifier ports.Notifier,
	logger *zap.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders:   orders,
		partners: partners,
		notifier: notifier,
		policy:   services.NewNotificationPolicy(),
		logger:   logger,
	}
}

// Handle processes one order update.
//
// Returns an error only when the persistence step fails; notification and
// audit failures are logged and swallowed. Success is reported as soon as the
// update is persisted, regardless of notification outcomes.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	patch := cmd.Patch().Normalize(time.Now())
	logger := h.logger.With(zap.String("order_id", cmd.OrderID().String()))

	// The snapshot feeds the audit record and both notification payloads.
	// Its read is best-effort: on failure the update still proceeds and
	// every snapshot-dependent step is skipped.
	var snapshot *order.Snapshot
	if !patch.IsEmpty() || cmd.AssignDeliveryPartner() {
		snap, err := h.orders.Get(ctx, cmd.OrderID())
		if err != nil {
			logger.Warn("pre-update snapshot fetch failed, skipping audit and notifications",
				zap.Error(err))
		} else {
			snapshot = snap
		}
	}

	if !patch.IsEmpty() {
		if err := h.orders.UpdateFields(ctx, cmd.OrderID(), patch); err != nil {
			return err
		}
	}

	if patch.HasStatus() && snapshot != nil {
		record := order.NewHistoryRecord(
			cmd.OrderID(), *patch.Status, cmd.Notes(), cmd.UpdatedBy(), time.Now())
		if err := h.orders.InsertStatusHistory(ctx, record); err != nil {
			logger.Error("status history insert failed", zap.Error(err))
		}
	}

	if snapshot != nil {
		h.dispatchNotifications(ctx, cmd, patch, *snapshot, logger)
	}

	return nil
}

// dispatchNotifications fires the customer and partner channels concurrently.
// The two are logically independent; each captures its own failure and
// neither can fail the parent request.
func (h UpdateOrderCommandHandler) dispatchNotifications(
	ctx context.Context,
	cmd UpdateOrderCommand,
	patch order.Patch,
	pre order.Snapshot,
	logger *zap.Logger,
) {
	var wg sync.WaitGroup

	if h.policy.ShouldNotifyCustomer(pre, patch) {
		payload := h.policy.BuildCustomerStatusUpdate(pre, patch, cmd.Notes())
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := h.notifier.SendOrderStatusUpdate(ctx, payload); err != nil {
				logger.Error("customer status e-mail failed",
					zap.String("status", payload.NewStatus.String()),
					zap.Error(err))
			}
		}()
	}

	if fire, partnerID := h.policy.PartnerTrigger(pre, patch, cmd.AssignDeliveryPartner()); fire {
		wg.Add(1)
		go func() {
			defer wg.Done()

			p, err := h.partners.Get(ctx, partnerID)
			if err != nil {
				logger.Warn("delivery partner lookup failed, skipping partner e-mail",
					zap.String("delivery_partner_id", partnerID.String()),
					zap.Error(err))
				return
			}

			payload := h.policy.BuildPartnerAssignment(pre, patch, *p)
			if err := h.notifier.SendDeliveryPartnerAssignment(ctx, payload); err != nil {
				logger.Error("delivery partner e-mail failed",
					zap.String("delivery_partner_id", partnerID.String()),
					zap.Error(err))
			}
		}()
	}

	wg.Wait()
}
