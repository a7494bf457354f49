package commands_test

import (
	"context"
	"errors"
	"testing"

	"rentalhub/internal/core/application/usecases/commands"
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) DeleteOrderItems(ctx context.Context, vendorID kernel.UUID) error {
	return m.Called(ctx, vendorID).Error(0)
}
func (m *MockVendorRepository) DeleteEarnings(ctx context.Context, vendorID kernel.UUID) error {
	return m.Called(ctx, vendorID).Error(0)
}
func (m *MockVendorRepository) DeleteCoupons(ctx context.Context, vendorID kernel.UUID) error {
	return m.Called(ctx, vendorID).Error(0)
}
func (m *MockVendorRepository) DeleteProducts(ctx context.Context, vendorID kernel.UUID) error {
	return m.Called(ctx, vendorID).Error(0)
}
func (m *MockVendorRepository) Delete(ctx context.Context, vendorID kernel.UUID) error {
	return m.Called(ctx, vendorID).Error(0)
}

type MockVendorUoW struct{ mock.Mock }

func (m *MockVendorUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockVendorUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockVendorUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockVendorUoW) VendorRepository() ports.VendorRepository {
	return m.Called().Get(0).(ports.VendorRepository)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	return m.Called().Get(0).(commands.VendorUoW)
}

func TestDeleteVendor_DeletesInForeignKeyOrder(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewDeleteVendorCommand(vendorID)
	require.NoError(t, err)

	repo := new(MockVendorRepository)
	uow := new(MockVendorUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(repo).Once(),
		repo.On("DeleteOrderItems", mock.Anything, vendorID).Return(nil).Once(),
		repo.On("DeleteEarnings", mock.Anything, vendorID).Return(nil).Once(),
		repo.On("DeleteCoupons", mock.Anything, vendorID).Return(nil).Once(),
		repo.On("DeleteProducts", mock.Anything, vendorID).Return(nil).Once(),
		repo.On("Delete", mock.Anything, vendorID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVendorCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteVendor_MidCascadeFailure_RollsBack(t *testing.T) {
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	cmd, err := commands.NewDeleteVendorCommand(vendorID)
	require.NoError(t, err)

	repo := new(MockVendorRepository)
	uow := new(MockVendorUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VendorRepository").Return(repo).Once(),
		repo.On("DeleteOrderItems", mock.Anything, vendorID).Return(nil).Once(),
		repo.On("DeleteEarnings", mock.Anything, vendorID).Return(errors.New("deadlock")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVendorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteVendorCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	repo.AssertNotCalled(t, "DeleteCoupons", mock.Anything, mock.Anything)
}

func TestDeleteVendorCommand_Validate(t *testing.T) {
	t.Run("unconstructed", func(t *testing.T) {
		var cmd commands.DeleteVendorCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteVendorCommandIsNotConstructed)
	})

	t.Run("zero vendor id", func(t *testing.T) {
		_, err := commands.NewDeleteVendorCommand(kernel.UUID{})
		require.Error(t, err)
	})
}
