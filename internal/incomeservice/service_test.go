package incomeservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/errorspkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/randompkg"
)

func TestCreate(t *testing.T) {
	date := randompkg.Date()
	source := randompkg.Source()

	testResult := domain.IncomeTxResult{
		Income: domain.Income{
			ID:      1,
			CashID:  1,
			WeekID:  1,
			Date:    date,
			Amount:  "100.00",
			Source:  source,
			Visible: true,
		},
		Cash: domain.CashAccount{ID: 1, Name: "General", ActualAmount: "225.00"},
	}

	testCases := []struct {
		name          string
		arg           domain.CreateIncomeParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.IncomeTxResult, err error)
	}{
		{
			name: "InvalidAmount",
			arg: domain.CreateIncomeParams{
				CashID: 1,
				WeekID: 1,
				Date:   date,
				Amount: "!@#$",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name: "TooManyDecimals",
			arg: domain.CreateIncomeParams{
				CashID: 1,
				WeekID: 1,
				Date:   date,
				Amount: "100.123",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
		{
			name: "NegativeAmount",
			arg: domain.CreateIncomeParams{
				CashID: 1,
				WeekID: 1,
				Date:   date,
				Amount: "-100",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name: "ZeroAmount",
			arg: domain.CreateIncomeParams{
				CashID: 1,
				WeekID: 1,
				Date:   date,
				Amount: "0",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrNegativeAmount.Error())
			},
		},
		{
			name: "RepoError",
			arg: domain.CreateIncomeParams{
				CashID: 404,
				WeekID: 1,
				Date:   date,
				Amount: "100",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.IncomeTxResult{}, domain.ErrCashNotFound)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrCashNotFound.Error())
			},
		},
		{
			name: "OK",
			arg: domain.CreateIncomeParams{
				CashID: 1,
				WeekID: 1,
				Date:   date,
				Amount: "100",
				Source: source,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().CreateTx(gomock.Any(), gomock.Eq(domain.CreateIncomeParams{
					CashID: 1,
					WeekID: 1,
					Date:   date,
					Amount: "100.00",
					Source: source,
				})).
					Times(1).
					Return(testResult, nil)
			},
			checkResponse: func(got domain.IncomeTxResult, err error) {
				require.NoError(t, err)
				require.Equal(t, testResult, got)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			tc.checkResponse(service.Create(context.Background(), tc.arg))
		})
	}
}

func TestList(t *testing.T) {
	cashID := int32(1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	repo.EXPECT().List(gomock.Any(), gomock.Eq(&cashID), gomock.Nil(), gomock.Eq(true)).
		Times(1).
		Return([]domain.Income{{ID: 1, CashID: 1, Visible: false}}, nil)

	got, err := service.List(context.Background(), &cashID, nil, true)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestHide(t *testing.T) {
	testCases := []struct {
		name          string
		id            int64
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.Income, err error)
	}{
		{
			name: "NotFound",
			id:   404,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Hide(gomock.Any(), gomock.Eq(int64(404))).
					Times(1).
					Return(domain.Income{}, domain.ErrIncomeNotFound)
			},
			checkResponse: func(got domain.Income, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, domain.ErrIncomeNotFound.Error())
			},
		},
		{
			name: "InternalError",
			id:   1,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Hide(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(domain.Income{}, errorspkg.ErrInternal)
			},
			checkResponse: func(got domain.Income, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name: "OK",
			id:   1,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Hide(gomock.Any(), gomock.Eq(int64(1))).
					Times(1).
					Return(domain.Income{ID: 1, Visible: false}, nil)
			},
			checkResponse: func(got domain.Income, err error) {
				require.NoError(t, err)
				require.False(t, got.Visible)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			service := New(repo)

			tc.buildStubs(repo)

			tc.checkResponse(service.Hide(context.Background(), tc.id))
		})
	}
}
