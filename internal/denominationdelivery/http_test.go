package denominationdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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
	testDenomination := domain.Denomination{
		ID:       1,
		CashID:   1,
		Value:    "50.00",
		Quantity: "4.00",
	}

	type requestBody struct {
		CashID   int32  `json:"cash_id"`
		Value    string `json:"denomination_value"`
		Quantity string `json:"quantity"`
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
				CashID:   1,
				Value:    "50",
				Quantity: "4",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateDenominationParams{
						CashID:   1,
						Value:    "50",
						Quantity: "4",
					})).
					Times(1).
					Return(testDenomination, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data any) {
				got, ok := data.(*domain.Denomination)
				if !ok {
					t.Errorf(`res.Data=%v, failed type conversion`, data)
				}

				if diff := cmp.Diff(testDenomination, *got); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "MissingValue",
			requestBody: requestBody{
				CashID:   1,
				Quantity: "4",
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
				CashID:   404,
				Value:    "50",
				Quantity: "4",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, domain.ErrCashNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrCashNotFound.Error(),
		},
		{
			name: "DuplicateValue",
			requestBody: requestBody{
				CashID:   1,
				Value:    "50",
				Quantity: "4",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, domain.ErrDenominationExists)
			},
			wantStatusCode: http.StatusConflict,
			wantMessage:    domain.ErrDenominationExists.Error(),
		},
		{
			name: "InvalidValue",
			requestBody: requestBody{
				CashID:   1,
				Value:    "fifty",
				Quantity: "4",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, domain.ErrInvalidAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    domain.ErrInvalidAmount.Error(),
		},
		{
			name: "NegativeQuantity",
			requestBody: requestBody{
				CashID:   1,
				Value:    "50",
				Quantity: "-1",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, domain.ErrNegativeQuantity)
			},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    domain.ErrNegativeQuantity.Error(),
		},
		{
			name: "InternalError",
			requestBody: requestBody{
				CashID:   1,
				Value:    "50",
				Quantity: "4",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, errorspkg.ErrInternal)
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
			server.POST("/denominations", handler.Create)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/denominations", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{
				Data: &domain.Denomination{},
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

func TestUpdate(t *testing.T) {
	quantity := "7"

	testCases := []struct {
		name           string
		id             int32
		requestBody    map[string]any
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:        "OK",
			id:          1,
			requestBody: map[string]any{"quantity": quantity},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(domain.UpdateDenominationParams{
						ID:       1,
						Quantity: &quantity,
					})).
					Times(1).
					Return(domain.Denomination{ID: 1, CashID: 1, Value: "50.00", Quantity: "7.00"}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "NotFound",
			id:          404,
			requestBody: map[string]any{"quantity": quantity},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Denomination{}, domain.ErrDenominationNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrDenominationNotFound.Error(),
		},
		{
			name:        "InvalidID",
			id:          0,
			requestBody: map[string]any{"quantity": quantity},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Any()).
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
			server.PATCH("/denominations/:id", handler.Update)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			url := fmt.Sprintf("/denominations/%d", tc.id)
			req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
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

func TestDelete(t *testing.T) {
	testCases := []struct {
		name           string
		id             int32
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantMessage    string
	}{
		{
			name: "OK",
			id:   1,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    "denomination removed",
		},
		{
			name: "NotFound",
			id:   404,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int32(404))).
					Times(1).
					Return(domain.ErrDenominationNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    domain.ErrDenominationNotFound.Error(),
		},
		{
			name: "InternalError",
			id:   1,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(errorspkg.ErrInternal)
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
			server.DELETE("/denominations/:id", handler.Delete)

			tc.buildStubs(service)

			url := fmt.Sprintf("/denominations/%d", tc.id)
			req, err := http.NewRequest(http.MethodDelete, url, nil)
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

			if res.Message != tc.wantMessage {
				t.Errorf(`res.Message=%q, want %q`, res.Message, tc.wantMessage)
			}
		})
	}
}
