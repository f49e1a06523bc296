package tests

import (
	"context"
	"errors"
	"testing"

	"tiffin-finder/storefront/internal/cart"
	"tiffin-finder/storefront/internal/checkout"
	"tiffin-finder/storefront/internal/mocks"
	"tiffin-finder/storefront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     checkout.Summary
	}{
		{name: "empty cart", subtotal: 0, want: checkout.Summary{}},
		{name: "two hundred", subtotal: 200, want: checkout.Summary{Subtotal: 200, DeliveryFee: 30, Tax: 10, Total: 240}},
		{name: "with paise", subtotal: 250, want: checkout.Summary{Subtotal: 250, DeliveryFee: 30, Tax: 12.5, Total: 292.5}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := checkout.Summarize(testCase.subtotal)
			assert.InDelta(t, testCase.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, testCase.want.DeliveryFee, got.DeliveryFee, 1e-9)
			assert.InDelta(t, testCase.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, testCase.want.Total, got.Total, 1e-9)
		})
	}
}

func filledCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(context.Background(), nil, quietLogger())
	require.NoError(t, store.Add(menuItem("a", "kitchen-1", 100), 2, "less oil"))
	require.NoError(t, store.Add(menuItem("b", "kitchen-1", 50), 1, ""))
	return store
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	orders := mocks.NewOrderPlacer(t)
	service := checkout.NewService(cart.NewStore(context.Background(), nil, quietLogger()), orders, quietLogger())

	order, err := service.PlaceOrder(context.Background(), checkout.Request{})
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Nil(t, order)
	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_Success(t *testing.T) {
	ctx := context.Background()
	store := filledCart(t)
	address := &model.Address{Street: "12 MG Road", City: "Delhi", State: "Delhi", ZipCode: "110001"}

	want := model.NewOrder{
		KitchenID:           "kitchen-1",
		TotalAmount:         292.5,
		DeliveryAddress:     address,
		SpecialInstructions: "ring twice",
		PaymentMethod:       "cod",
		Items: []model.NewOrderItem{
			{MenuItemID: "a", Quantity: 2, SpecialInstructions: "less oil"},
			{MenuItemID: "b", Quantity: 1},
		},
	}
	placed := &model.Order{ID: "order-1", KitchenID: "kitchen-1", Status: "pending", TotalAmount: 292.5}

	orders := mocks.NewOrderPlacer(t)
	orders.On("CreateOrder", ctx, want).Return(placed, nil).Once()
	service := checkout.NewService(store, orders, quietLogger())

	got, err := service.PlaceOrder(ctx, checkout.Request{DeliveryAddress: address, SpecialInstructions: "ring twice"})
	require.NoError(t, err)
	assert.Equal(t, "order-1", got.ID)

	assert.Empty(t, store.Lines())
	current, ok := store.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, "order-1", current.ID)
}

func TestPlaceOrder_FailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	store := filledCart(t)

	orders := mocks.NewOrderPlacer(t)
	orders.On("CreateOrder", ctx, mock.MatchedBy(func(o model.NewOrder) bool {
		return o.PaymentMethod == "upi"
	})).Return(nil, errors.New("kitchen is closed")).Once()
	service := checkout.NewService(store, orders, quietLogger())

	order, err := service.PlaceOrder(ctx, checkout.Request{PaymentMethod: "upi"})
	assert.EqualError(t, err, "kitchen is closed")
	assert.Nil(t, order)

	assert.Len(t, store.Lines(), 2)
	assert.Equal(t, 250.0, store.Total())
	_, ok := store.CurrentOrder()
	assert.False(t, ok)
}
