package commands_test

import (
	"errors"
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/catalog"
	"printflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, 2)
	cmd, _ := commands.NewEditOrderCommand(aggregate.ID(), "Verma Sarees", "Mehta Mills", 75)

	repo := new(MockOrderRepository)
	registry := new(MockCatalogRegistry)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("CatalogRegistry").Return(registry).Once(),
		registry.On("Add", mock.Anything, mock.AnythingOfType("catalog.Entry")).Return(nil).Twice(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Verma Sarees", aggregate.Client())
	assert.Equal(t, "Mehta Mills", aggregate.Manufacturer())
	assert.Equal(t, 75, aggregate.Quantity())
	assert.Equal(t, order.RetrievedFromManufacturer, aggregate.Status())
	assert.Len(t, aggregate.Timeline(), 2)
	repo.AssertExpectations(t)
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := mustOrderID(t, 8)
	cmd, _ := commands.NewEditOrderCommand(id, "Verma Sarees", "Mehta Mills", 75)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errors.New("get error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewEditOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, 1)
	cmd, _ := commands.NewDeleteOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := mustOrderID(t, 42)
	cmd, _ := commands.NewDeleteOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errors.New("not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCatalogEntryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRemoveCatalogEntryCommand(catalog.Client, "Sharma Textiles")

	registry := new(MockCatalogRegistry)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRegistry").Return(registry).Once(),
		registry.On("Remove", mock.Anything, catalog.Client, "Sharma Textiles").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveCatalogEntryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSyncCatalogCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSyncCatalogCommand()
	orders := []*order.Order{restoredOrder(t, 1)}

	repo := new(MockOrderRepository)
	registry := new(MockCatalogRegistry)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAll", mock.Anything).Return(orders, nil).Once(),
		uow.On("CatalogRegistry").Return(registry).Once(),
		registry.On("Add", mock.Anything, mock.AnythingOfType("catalog.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSyncCatalogCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	registry.AssertExpectations(t)
	uow.AssertExpectations(t)
}
