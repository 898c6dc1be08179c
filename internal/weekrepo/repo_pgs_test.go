package weekrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leodev8821/economicControl-nv-sub002/internal/domain"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/configpkg"
	"github.com/leodev8821/economicControl-nv-sub002/pkg/randompkg"
)

var testRepo *RepoPGS

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomWeek(t *testing.T) domain.Week {
	start := randompkg.Date()

	arg := domain.CreateWeekParams{
		Name:      randompkg.Name(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}

	week, err := testRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, week)

	require.Equal(t, arg.Name, week.Name)
	require.WithinDuration(t, arg.StartDate, week.StartDate, 24*time.Hour)
	require.WithinDuration(t, arg.EndDate, week.EndDate, 24*time.Hour)
	require.NotZero(t, week.ID)

	return week
}

func TestCreate(t *testing.T) {
	createRandomWeek(t)
}

func TestCreateNameTaken(t *testing.T) {
	testWeek := createRandomWeek(t)

	week, err := testRepo.Create(context.Background(), domain.CreateWeekParams{
		Name:      testWeek.Name,
		StartDate: testWeek.StartDate,
		EndDate:   testWeek.EndDate,
	})
	require.EqualError(t, err, domain.ErrWeekNameTaken.Error())
	require.Empty(t, week)
}

func TestGet(t *testing.T) {
	testWeek := createRandomWeek(t)

	week, err := testRepo.Get(context.Background(), testWeek.ID)
	require.NoError(t, err)
	require.Equal(t, testWeek, week)
}

func TestList(t *testing.T) {
	for i := 0; i < 3; i++ {
		createRandomWeek(t)
	}

	weeks, err := testRepo.List(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(weeks), 3)

	for i := 1; i < len(weeks); i++ {
		require.False(t, weeks[i].StartDate.Before(weeks[i-1].StartDate))
	}
}

func TestDelete(t *testing.T) {
	testWeek := createRandomWeek(t)

	err := testRepo.Delete(context.Background(), testWeek.ID)
	require.NoError(t, err)

	deleted, err := testRepo.Get(context.Background(), testWeek.ID)
	require.EqualError(t, err, domain.ErrWeekNotFound.Error())
	require.Empty(t, deleted)

	err = testRepo.Delete(context.Background(), testWeek.ID)
	require.EqualError(t, err, domain.ErrWeekNotFound.Error())
}
