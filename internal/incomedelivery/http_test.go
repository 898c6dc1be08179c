package incomedelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	testResult := domain.IncomeTxResult{
		Income: domain.Income{
			ID:      1,
			CashID:  1,
			WeekID:  1,
			Date:    date,
			Amount:  "100.00",
			Source:  "Diezmo",
			Visible: true,
		},
		Cash: domain.CashAccount{ID: 1, Name: "General", ActualAmount: "225.00"},
	}

	type requestBody struct {
		CashID int32  `json:"cash_id"`
		WeekID int32  `json:"week_id"`
		Date   string `json:"date"`
		Amount string `json:"amount"`
		Source string `json:"source"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantMessage    string
		checkData      func(data any)
	}{
		{
			name: "OK",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 1,
				Date:   "2024-01-02",
				Amount: "100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateIncomeParams{
						CashID: 1,
						WeekID: 1,
						Date:   date,
						Amount: "100",
						Source: "Diezmo",
					})).
					Times(1).
					Return(testResult, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*domain.IncomeTxResult)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(testResult, *got); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "MissingAmount",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 1,
				Date:   "2024-01-02",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "BadDate",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 1,
				Date:   "02/01/2024",
				Amount: "100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "CashNotFound",
			requestBody: requestBody{
				CashID: 404,
				WeekID: 1,
				Date:   "2024-01-02",
				Amount: "100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.IncomeTxResult{}, domain.ErrCashNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrCashNotFound.Error(),
		},
		{
			name: "WeekNotFound",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 404,
				Date:   "2024-01-02",
				Amount: "100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.IncomeTxResult{}, domain.ErrWeekNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrWeekNotFound.Error(),
		},
		{
			name: "NegativeAmount",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 1,
				Date:   "2024-01-02",
				Amount: "-100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.IncomeTxResult{}, domain.ErrNegativeAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    domain.ErrNegativeAmount.Error(),
		},
		{
			name: "InternalError",
			requestBody: requestBody{
				CashID: 1,
				WeekID: 1,
				Date:   "2024-01-02",
				Amount: "100",
				Source: "Diezmo",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.IncomeTxResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/incomes", handler.Create)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/incomes", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &domain.IncomeTxResult{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if tc.wantMessage != "" && res.Message != tc.wantMessage {
					t.Errorf(`res.Message=%q, want %q`, res.Message, tc.wantMessage)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestList(t *testing.T) {
	cashID := int32(1)

	incomes := []domain.Income{
		{ID: 1, CashID: 1, WeekID: 1, Amount: "100.00", Source: "Diezmo", Visible: true},
		{ID: 2, CashID: 1, WeekID: 1, Amount: "50.00", Source: "Ofrenda", Visible: true},
	}

	testCases := []struct {
		name           string
		query          string
		buildStubs     func(service *MockService)
		wantStatusCode int
		checkData      func(data any)
	}{
		{
			name:  "OK",
			query: "?cash_id=1",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(&cashID), gomock.Nil(), gomock.Eq(false)).
					Times(1).
					Return(incomes, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*[]domain.Income)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(incomes, *got); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "OKIncludeHidden",
			query: "?cash_id=1&include_hidden=true",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Eq(&cashID), gomock.Nil(), gomock.Eq(true)).
					Times(1).
					Return(incomes, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData:      func(data any) {},
		},
		{
			name:  "InvalidCashID",
			query: "?cash_id=0",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "InternalError",
			query: "",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					List(gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Eq(false)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.GET("/incomes", handler.List)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/incomes"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &[]domain.Income{},
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode == http.StatusOK {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestHide(t *testing.T) {
	testCases := []struct {
		name           string
		id             int64
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "OK",
			id:   1,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Hide(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(domain.Income{ID: 1, Visible: false}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			id:   404,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Hide(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).
					Return(domain.Income{}, domain.ErrIncomeNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrIncomeNotFound.Error(),
		},
		{
			name: "InvalidID",
			id:   0,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Hide(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/incomes/:id/hide", handler.Hide)

			tc.buildStubs(service)

			url := fmt.Sprintf("/incomes/%d/hide", tc.id)
			req, err := http.NewRequest(http.MethodPost, url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res web.Response
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantMessage != "" && res.Message != tc.wantMessage {
				t.Errorf(`res.Message=%q, want %q`, res.Message, tc.wantMessage)
			}
		})
	}
}
