package commands_test

import (
	"context"
	"errors"
	"testing"

	"rentalhub/internal/core/application/usecases/commands"
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"
	"rentalhub/internal/core/domain/model/partner"
	"rentalhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Snapshot, error) {
	args := m.Called(ctx, id)
	if snap := args.Get(0); snap != nil {
		return snap.(*order.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) InsertStatusHistory(ctx context.Context, record order.HistoryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*partner.DeliveryPartner), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) SendOrderStatusUpdate(ctx context.Context, payload ports.CustomerStatusUpdate) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *MockNotifier) SendDeliveryPartnerAssignment(ctx context.Context, payload ports.PartnerAssignment) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func statusPtr(s order.Status) *order.Status                { return &s }
func paymentPtr(p order.PaymentStatus) *order.PaymentStatus { return &p }

type fixture struct {
	orders   *MockOrderRepository
	partners *MockPartnerRepository
	notifier *MockNotifier
	handler  commands.UpdateOrderCommandHandler
}

func newFixture() *fixture {
	f := &fixture{
		orders:   new(MockOrderRepository),
		partners: new(MockPartnerRepository),
		notifier: new(MockNotifier),
	}
	f.handler = commands.NewUpdateOrderCommandHandler(f.orders, f.partners, f.notifier, zap.NewNop())
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.orders.AssertExpectations(t)
	f.partners.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func pendingSnapshot(id kernel.UUID) *order.Snapshot {
	return &order.Snapshot{
		ID:            id,
		OrderNumber:   "ORD-7",
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentPending,
		PaymentMethod: "card",
		Customer:      order.CustomerContact{Name: "Ana", Email: "ana@example.com"},
		Items:         []order.ItemSnapshot{{Title: "Canon EOS R6", Quantity: 1}},
	}
}

func TestUpdateOrder_StatusChange_PersistsAuditsAndNotifiesCustomer(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.MatchedBy(func(p order.Patch) bool {
		return p.Status != nil && *p.Status == order.StatusConfirmed && !p.UpdatedAt.IsZero()
	})).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.MatchedBy(func(r order.HistoryRecord) bool {
		return r.Status == order.StatusConfirmed && r.Notes == "ready early" && r.UpdatedBy == "admin"
	})).Return(nil).Once()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.MatchedBy(func(p ports.CustomerStatusUpdate) bool {
		return p.NewStatus == order.StatusConfirmed &&
			p.PreviousStatus == order.StatusPending &&
			p.CustomerEmail == "ana@example.com"
	})).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "ready early", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendDeliveryPartnerAssignment", mock.Anything, mock.Anything)
}

func TestUpdateOrder_Cancellation_ForcesPaymentCancelled(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.MatchedBy(func(p order.Patch) bool {
		return p.Status != nil && *p.Status == order.StatusCancelled &&
			p.PaymentStatus != nil && *p.PaymentStatus == order.PaymentCancelled
	})).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.MatchedBy(func(r order.HistoryRecord) bool {
		return r.Status == order.StatusCancelled
	})).Return(nil).Once()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.Anything).Return(nil).Once()

	// Supplied payment status must be overridden, and case must not matter.
	patch := order.Patch{
		Status:        statusPtr(order.Status("CANCELLED")),
		PaymentStatus: paymentPtr(order.PaymentPaid),
	}
	cmd, err := commands.NewUpdateOrderCommand(id, patch, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
	// Never assigned, so no partner e-mail even on cancellation.
	f.notifier.AssertNotCalled(t, "SendDeliveryPartnerAssignment", mock.Anything, mock.Anything)
}

func TestUpdateOrder_PersistFailureIsFatal_NoSideEffects(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).
		Return(errors.New("connection reset")).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "", "", false)
	require.NoError(t, err)

	require.Error(t, f.handler.Handle(ctx, cmd))
	f.orders.AssertNotCalled(t, "InsertStatusHistory", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendOrderStatusUpdate", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendDeliveryPartnerAssignment", mock.Anything, mock.Anything)
}

func TestUpdateOrder_SnapshotFetchFailure_UpdateProceedsWithoutSideEffects(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(nil, errors.New("timeout")).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusShipped)}, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.orders.AssertNotCalled(t, "InsertStatusHistory", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendOrderStatusUpdate", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendDeliveryPartnerAssignment", mock.Anything, mock.Anything)
}

func TestUpdateOrder_HistoryInsertFailure_DoesNotFailRequest(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.Anything).
		Return(errors.New("insert failed")).Once()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestUpdateOrder_EmailFailure_DoesNotFailRequest(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.Anything).
		Return(errors.New("smtp unavailable")).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestUpdateOrder_NoCustomerEmail_SkipsCustomerNotification(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	snap := pendingSnapshot(id)
	snap.Customer.Email = ""

	f.orders.On("Get", mock.Anything, id).Return(snap, nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.notifier.AssertNotCalled(t, "SendOrderStatusUpdate", mock.Anything, mock.Anything)
}

func TestUpdateOrder_SameStatusTwice_AppendsTwoHistoryRecords(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Twice()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Twice()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.Anything).Return(nil).Twice()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.Anything).Return(nil).Twice()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusConfirmed)}, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	require.NoError(t, f.handler.Handle(ctx, cmd))

	f.orders.AssertNumberOfCalls(t, "InsertStatusHistory", 2)
}

func TestUpdateOrder_PartnerAssignment_NotifiesNewPartner(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.partners.On("Get", mock.Anything, partnerID).
		Return(&partner.DeliveryPartner{ID: partnerID, Name: "Speedy", Email: "speedy@example.com"}, nil).Once()
	f.notifier.On("SendDeliveryPartnerAssignment", mock.Anything, mock.MatchedBy(func(p ports.PartnerAssignment) bool {
		return p.PartnerEmail == "speedy@example.com" && p.OrderNumber == "ORD-7"
	})).Return(nil).Once()

	patch := order.Patch{DeliveryPartnerID: &partnerID}
	cmd, err := commands.NewUpdateOrderCommand(id, patch, "", "", true)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
	// No status in the update, so no audit row and no customer e-mail.
	f.orders.AssertNotCalled(t, "InsertStatusHistory", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "SendOrderStatusUpdate", mock.Anything, mock.Anything)
}

func TestUpdateOrder_PaymentChangeWithAssignedPartner_NotifiesPartner(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	snap := pendingSnapshot(id)
	snap.DeliveryPartnerID = &partnerID

	f.orders.On("Get", mock.Anything, id).Return(snap, nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.partners.On("Get", mock.Anything, partnerID).
		Return(&partner.DeliveryPartner{ID: partnerID, Email: "p1@example.com"}, nil).Once()
	f.notifier.On("SendDeliveryPartnerAssignment", mock.Anything, mock.MatchedBy(func(p ports.PartnerAssignment) bool {
		return p.PaymentStatus == order.PaymentPaid
	})).Return(nil).Once()

	patch := order.Patch{PaymentStatus: paymentPtr(order.PaymentPaid)}
	cmd, err := commands.NewUpdateOrderCommand(id, patch, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendOrderStatusUpdate", mock.Anything, mock.Anything)
}

func TestUpdateOrder_Unassignment_NotifiesPreviousPartner(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()
	previousPartner := kernel.NewUUID()

	snap := pendingSnapshot(id)
	snap.DeliveryPartnerID = &previousPartner

	f.orders.On("Get", mock.Anything, id).Return(snap, nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.partners.On("Get", mock.Anything, previousPartner).
		Return(&partner.DeliveryPartner{ID: previousPartner, Email: "prev@example.com"}, nil).Once()
	f.notifier.On("SendDeliveryPartnerAssignment", mock.Anything, mock.Anything).Return(nil).Once()

	patch := order.Patch{ClearDeliveryPartner: true}
	cmd, err := commands.NewUpdateOrderCommand(id, patch, "", "", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestUpdateOrder_PartnerLookupFailure_SkipsPartnerEmail(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.partners.On("Get", mock.Anything, partnerID).
		Return(nil, errors.New("not found")).Once()

	patch := order.Patch{DeliveryPartnerID: &partnerID}
	cmd, err := commands.NewUpdateOrderCommand(id, patch, "", "", true)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.notifier.AssertNotCalled(t, "SendDeliveryPartnerAssignment", mock.Anything, mock.Anything)
}

func TestUpdateOrder_EmptyPatchWithoutAssignFlag_IsANoOp(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	cmd, err := commands.NewUpdateOrderCommand(id, order.Patch{}, "just a note", "admin", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrder_HistoryRecordsNamedActor(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()

	f.orders.On("Get", mock.Anything, id).Return(pendingSnapshot(id), nil).Once()
	f.orders.On("UpdateFields", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.orders.On("InsertStatusHistory", mock.Anything, mock.MatchedBy(func(r order.HistoryRecord) bool {
		return r.UpdatedBy == "vendor:bob"
	})).Return(nil).Once()
	f.notifier.On("SendOrderStatusUpdate", mock.Anything, mock.Anything).Return(nil).Once()

	cmd, err := commands.NewUpdateOrderCommand(
		id, order.Patch{Status: statusPtr(order.StatusProcessing)}, "", "vendor:bob", false)
	require.NoError(t, err)

	require.NoError(t, f.handler.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestUpdateOrderCommand_Validate(t *testing.T) {
	t.Run("unconstructed command is rejected", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand
		err := cmd.Validate()
		assert.ErrorIs(t, err, commands.ErrUpdateOrderCommandIsNotConstructed)
	})

	t.Run("zero order id is rejected", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, order.Patch{}, "", "", false)
		require.Error(t, err)
	})
}
