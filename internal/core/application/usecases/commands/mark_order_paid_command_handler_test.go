package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderPaidCommand_RequiresOrderID(t *testing.T) {
	_, err := commands.NewMarkOrderPaidCommand(kernel.UUID{})

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := statusTestOrder(t, kernel.NewUUID(), "")

	cmd, err := commands.NewMarkOrderPaidCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdatePaymentStatus", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderPaidCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, testOrder.PaymentStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	paidOrder := statusDeliveredPaidOrder(t, kernel.NewUUID(), "")

	cmd, err := commands.NewMarkOrderPaidCommand(paidOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockStatusOrderRepository)
	uow := new(MockStatusUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, paidOrder.ID()).Return(paidOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderPaidCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
