package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldserve_crm/internal/adapter/http/handlers/mocks"
	"fieldserve_crm/internal/domain/entities"
	"fieldserve_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProductHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"company_id":"co-1","type":"labor"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{}, usecase.ErrInvalidProductPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"company_id":"co-1","name":"Labor hour","type":"labor","default_price":"-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateProductInput) (entities.Product, error) {
				if in.Name != "Labor hour" || in.Type != "labor" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Product{ID: "prod-1", CompanyID: in.CompanyID, Name: in.Name, Type: entities.LineItemTypeLabor, DefaultPrice: decimal.NewFromInt(85), Taxable: true, Active: true, CreatedAt: now, UpdatedAt: now}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"company_id":"co-1","name":"Labor hour","type":"labor","default_price":"85","taxable":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["active"] != true {
			t.Fatalf("expected active product, got %v", body["active"])
		}
	})
}

func TestProductHandler_DeactivateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.DELETE("/v1/products/:id", h.DeactivateProduct)

		uc.EXPECT().Deactivate(gomock.Any(), "missing").Return(entities.Product{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductUseCase(ctrl)
		h := NewProductHandler(uc)

		r := gin.New()
		r.DELETE("/v1/products/:id", h.DeactivateProduct)

		now := time.Now().UTC()
		uc.EXPECT().Deactivate(gomock.Any(), "prod-1").Return(entities.Product{ID: "prod-1", CompanyID: "co-1", Name: "Labor hour", Type: entities.LineItemTypeLabor, Active: false, CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/prod-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["active"] != false {
			t.Fatalf("expected inactive product, got %v", body["active"])
		}
	})
}
