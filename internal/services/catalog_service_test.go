package services_test

import (
	"context"
	"testing"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	tests := []struct {
		name      string
		params    services.CreateProductParams
		mockSetup func(m *mocks.MockQuerier)
		wantErr   string
	}{
		{
			name: "creates a stocked product",
			params: services.CreateProductParams{
				Name:          "Flea Shampoo",
				Price:         decimal.RequireFromString("12.99"),
				StockQuantity: 30,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateProductParams) (db.Product, error) {
						assert.Equal(t, "Flea Shampoo", arg.Name)
						assert.Equal(t, int32(30), arg.StockQuantity)
						return db.Product{ID: uuid.New(), Name: arg.Name, Price: arg.Price, StockQuantity: arg.StockQuantity, Active: true}, nil
					})
			},
		},
		{
			name:      "rejects negative price",
			params:    services.CreateProductParams{Name: "Bad", Price: decimal.NewFromInt(-1)},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "invalid ledger input",
		},
		{
			name:      "rejects negative stock",
			params:    services.CreateProductParams{Name: "Bad", Price: decimal.NewFromInt(1), StockQuantity: -5},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "stock quantity cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewCatalogService(mockQuerier)
			_, err := service.CreateProduct(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCatalogService_AdjustProductStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetProduct(gomock.Any(), productID).Return(db.Product{ID: productID, StockQuantity: 4, Active: true}, nil)
	mockQuerier.EXPECT().AdjustProductStock(gomock.Any(), db.AdjustProductStockParams{ID: productID, Delta: 20}).
		Return(db.Product{ID: productID, StockQuantity: 24, Active: true}, nil)

	service := services.NewCatalogService(mockQuerier)
	product, err := service.AdjustProductStock(context.Background(), productID, 20)
	require.NoError(t, err)
	assert.Equal(t, int32(24), product.StockQuantity)
}

func TestCatalogService_AdjustProductStock_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetProduct(gomock.Any(), productID).Return(db.Product{}, pgx.ErrNoRows)

	service := services.NewCatalogService(mockQuerier)
	_, err := service.AdjustProductStock(context.Background(), productID, 5)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
}

func TestCatalogService_ListLowStockProducts_ClampsThreshold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListLowStockProducts(gomock.Any(), int32(0)).Return(nil, nil)

	service := services.NewCatalogService(mockQuerier)
	_, err := service.ListLowStockProducts(context.Background(), -3)
	require.NoError(t, err)
}
