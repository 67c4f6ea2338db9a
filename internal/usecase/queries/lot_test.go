//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/queries"
	queriesmock "vehicle-parking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LotQueriesTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	lots         *queriesmock.MockLotReadStore
	reservations *queriesmock.MockReservationReadStore
	users        *queriesmock.MockUserReadStore
	cache        *queriesmock.MockLotStatusCache
	queries      queries.LotQueries
}

func TestLotQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(LotQueriesTestSuite))
}

func (s *LotQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.lots = queriesmock.NewMockLotReadStore(s.ctrl)
	s.reservations = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserReadStore(s.ctrl)
	s.cache = queriesmock.NewMockLotStatusCache(s.ctrl)
	s.queries = queries.NewLotQueries(s.lots, s.reservations, s.users, s.cache)
}

func (s *LotQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func (s *LotQueriesTestSuite) TestListLots_CacheHitAndMiss() {
	hit, miss := uuid.New(), uuid.New()
	s.lots.EXPECT().ListLots(gomock.Any()).Return([]*queries.LotView{{ID: hit}, {ID: miss}}, nil)
	generations := map[uuid.UUID]int64{hit: 3, miss: 7}
	s.cache.EXPECT().GetMany(gomock.Any(), []uuid.UUID{hit, miss}).
		Return(&queries.LotStatusLookup{
			Hits:        map[uuid.UUID]queries.LotStatus{hit: {Occupied: 2, Available: 1}},
			Generations: generations,
		}, nil)
	s.lots.EXPECT().LotStatuses(gomock.Any(), []uuid.UUID{miss}).
		Return(map[uuid.UUID]queries.LotStatus{miss: {Occupied: 0, Available: 4}}, nil)
	s.cache.EXPECT().FillMany(gomock.Any(), map[uuid.UUID]queries.LotStatus{miss: {Occupied: 0, Available: 4}}, generations).Return(nil)

	got, err := s.queries.ListLots(context.Background())

	s.Require().NoError(err)
	s.Equal(2, got[0].OccupiedSpots)
	s.Equal(1, got[0].AvailableSpots)
	s.Equal(4, got[1].AvailableSpots)
}

func (s *LotQueriesTestSuite) TestListLots_AllCached() {
	id := uuid.New()
	s.lots.EXPECT().ListLots(gomock.Any()).Return([]*queries.LotView{{ID: id}}, nil)
	s.cache.EXPECT().GetMany(gomock.Any(), []uuid.UUID{id}).
		Return(&queries.LotStatusLookup{
			Hits:        map[uuid.UUID]queries.LotStatus{id: {Occupied: 1, Available: 0}},
			Generations: map[uuid.UUID]int64{id: 1},
		}, nil)

	got, err := s.queries.ListLots(context.Background())

	s.Require().NoError(err)
	s.Equal(1, got[0].OccupiedSpots)
}

func (s *LotQueriesTestSuite) TestListLots_CacheDownFallsBackToDatabase() {
	id := uuid.New()
	s.lots.EXPECT().ListLots(gomock.Any()).Return([]*queries.LotView{{ID: id}}, nil)
	s.cache.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	s.lots.EXPECT().LotStatuses(gomock.Any(), []uuid.UUID{id}).
		Return(map[uuid.UUID]queries.LotStatus{id: {Available: 3}}, nil)
	s.cache.EXPECT().FillMany(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := s.queries.ListLots(context.Background())

	s.Require().NoError(err)
	s.Equal(3, got[0].AvailableSpots)
}

func (s *LotQueriesTestSuite) TestListLots_GenerationsAreReadBeforeDatabase() {
	id := uuid.New()
	generations := map[uuid.UUID]int64{id: 0}
	s.lots.EXPECT().ListLots(gomock.Any()).Return([]*queries.LotView{{ID: id}}, nil)
	gomock.InOrder(
		s.cache.EXPECT().GetMany(gomock.Any(), []uuid.UUID{id}).
			Return(&queries.LotStatusLookup{Hits: map[uuid.UUID]queries.LotStatus{}, Generations: generations}, nil),
		s.lots.EXPECT().LotStatuses(gomock.Any(), []uuid.UUID{id}).
			Return(map[uuid.UUID]queries.LotStatus{id: {Available: 2}}, nil),
		s.cache.EXPECT().FillMany(gomock.Any(), map[uuid.UUID]queries.LotStatus{id: {Available: 2}}, generations).
			Return(errors.New("connection reset")),
	)

	got, err := s.queries.ListLots(context.Background())

	s.Require().NoError(err, "a failed fill only logs")
	s.Equal(2, got[0].AvailableSpots)
}

func (s *LotQueriesTestSuite) TestListLots_Empty() {
	s.lots.EXPECT().ListLots(gomock.Any()).Return([]*queries.LotView{}, nil)

	got, err := s.queries.ListLots(context.Background())

	s.Require().NoError(err)
	s.Empty(got)
}

func (s *LotQueriesTestSuite) TestGetLot_NotFound() {
	id := uuid.New()
	s.lots.EXPECT().FindLotByID(gomock.Any(), id).Return(nil, notFound())

	_, err := s.queries.GetLot(context.Background(), id)

	s.True(errs.Is(err, queries.ErrLotNotFound))
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *LotQueriesTestSuite) TestSpotDetails() {
	lotID, spotID, userID := uuid.New(), uuid.New(), uuid.New()
	spot := &queries.SpotView{ID: spotID, LotID: lotID, Status: "O"}
	lot := &queries.LotView{ID: lotID, Code: "A1"}
	active := &queries.ReservationView{ID: uuid.New(), UserID: userID, SpotID: &spotID}
	occupant := &queries.UserView{ID: userID, Username: "driver01"}

	s.Run("occupied spot carries reservation and occupant", func() {
		s.lots.EXPECT().FindSpotByID(gomock.Any(), spotID).Return(spot, nil)
		s.lots.EXPECT().FindLotByID(gomock.Any(), lotID).Return(lot, nil)
		s.lots.EXPECT().LotStatuses(gomock.Any(), []uuid.UUID{lotID}).
			Return(map[uuid.UUID]queries.LotStatus{lotID: {Occupied: 1}}, nil)
		s.reservations.EXPECT().FindActiveBySpot(gomock.Any(), spotID).Return(active, nil)
		s.users.EXPECT().FindByID(gomock.Any(), userID).Return(occupant, nil)

		got, err := s.queries.SpotDetails(context.Background(), spotID)

		s.Require().NoError(err)
		s.Equal(active, got.ActiveReservation)
		s.Equal(occupant, got.Occupant)
		s.Equal(1, got.Lot.OccupiedSpots)
	})

	s.Run("available spot has no reservation", func() {
		free := &queries.SpotView{ID: spotID, LotID: lotID, Status: "A"}
		s.lots.EXPECT().FindSpotByID(gomock.Any(), spotID).Return(free, nil)
		s.lots.EXPECT().FindLotByID(gomock.Any(), lotID).Return(&queries.LotView{ID: lotID}, nil)
		s.lots.EXPECT().LotStatuses(gomock.Any(), []uuid.UUID{lotID}).
			Return(map[uuid.UUID]queries.LotStatus{lotID: {Available: 1}}, nil)
		s.reservations.EXPECT().FindActiveBySpot(gomock.Any(), spotID).Return(nil, notFound())

		got, err := s.queries.SpotDetails(context.Background(), spotID)

		s.Require().NoError(err)
		s.Nil(got.ActiveReservation)
		s.Nil(got.Occupant)
	})

	s.Run("unknown spot", func() {
		s.lots.EXPECT().FindSpotByID(gomock.Any(), spotID).Return(nil, notFound())

		_, err := s.queries.SpotDetails(context.Background(), spotID)

		s.True(errs.Is(err, queries.ErrSpotNotFound))
	})
}
