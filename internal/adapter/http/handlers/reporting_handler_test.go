package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldserve_crm/internal/adapter/http/handlers/mocks"
	"fieldserve_crm/internal/domain/billing"
	"fieldserve_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportingHandler_GetAging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing company id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		h := NewReportingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/aging", h.GetAging)

		uc.EXPECT().Aging(gomock.Any(), "").Return(billing.AgingBuckets{}, usecase.ErrInvalidCompanyID)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/aging", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		h := NewReportingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/aging", h.GetAging)

		uc.EXPECT().Aging(gomock.Any(), "co-1").Return(billing.AgingBuckets{
			Days0To30:  decimal.NewFromInt(100),
			Days31To60: decimal.NewFromInt(200),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/aging?company_id=co-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Days0To30  string `json:"days_0_30"`
			Days31To60 string `json:"days_31_60"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body.Days0To30 != "100" || body.Days31To60 != "200" {
			t.Fatalf("unexpected buckets: %+v", body)
		}
	})
}

func TestReportingHandler_GetTopOutstanding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limit forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		h := NewReportingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/top-outstanding", h.GetTopOutstanding)

		uc.EXPECT().TopOutstanding(gomock.Any(), "co-1", 3).Return([]billing.ClientBalance{
			{ClientID: "cl-1", Balance: decimal.NewFromInt(350)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-outstanding?company_id=co-1&limit=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []struct {
			ClientID string `json:"client_id"`
			Balance  string `json:"balance"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(body) != 1 || body[0].ClientID != "cl-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing limit defaults to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		h := NewReportingHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/top-outstanding", h.GetTopOutstanding)

		uc.EXPECT().TopOutstanding(gomock.Any(), "co-1", 0).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/top-outstanding?company_id=co-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
