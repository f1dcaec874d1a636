package mongodb

import (
	"context"
	"testing"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/models"
	"campusmarket/internal/repositories/interfaces"
	"campusmarket/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sampleRide(available int) *models.Ride {
	return &models.Ride{
		ID:             primitive.NewObjectID(),
		CreatorName:    "Ama",
		CreatorContact: "0551234567",
		PickupLocation: "Main Gate",
		Destination:    "Accra Mall",
		TotalCapacity:  models.RideCapacity,
		CreatorSeats:   models.RideCapacity - available,
		AvailableSeats: available,
		JoinedUsers:    []models.JoinedUser{},
		Status:         models.RideStatusActive,
	}
}

func TestRideRepository_Create(t *testing.T) {
	mt := newMockT(t)

	mt.Run("assigns id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewRideRepository(mt.DB)

		ride := &models.Ride{CreatorName: "Ama", AvailableSeats: 1, Status: models.RideStatusActive}
		require.NoError(mt, repo.Create(context.Background(), ride))

		assert.False(mt, ride.ID.IsZero())
		assert.False(mt, ride.CreatedAt.IsZero())
		assert.NotNil(mt, ride.JoinedUsers)
	})
}

func TestRideRepository_GetByID(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		ride := sampleRide(2)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.rides", mtest.FirstBatch, toDoc(mt, ride)))

		got, err := NewRideRepository(mt.DB).GetByID(context.Background(), ride.ID)
		require.NoError(mt, err)
		assert.Equal(mt, ride.ID, got.ID)
		assert.Equal(mt, 2, got.AvailableSeats)
	})

	mt.Run("missing maps to not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.rides", mtest.FirstBatch))

		_, err := NewRideRepository(mt.DB).GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrNotFound)
	})

	mt.Run("command failure maps to store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "boom"}))

		_, err := NewRideRepository(mt.DB).GetByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, apperrors.ErrStore)
	})
}

func TestRideRepository_ReserveSeats(t *testing.T) {
	mt := newMockT(t)

	mt.Run("conditional update returns the new ride", func(mt *mtest.T) {
		ride := sampleRide(0)
		ride.JoinedUsers = []models.JoinedUser{{Name: "Kojo", Phone: "0201112222", SeatsNeeded: 1}}
		mt.AddMockResponses(findAndModifyReply(toDoc(mt, ride)))

		got, err := NewRideRepository(mt.DB).ReserveSeats(context.Background(), ride.ID,
			models.JoinedUser{Name: "Kojo", Phone: "0201112222", SeatsNeeded: 1})
		require.NoError(mt, err)
		assert.Equal(mt, 0, got.AvailableSeats)
		assert.True(mt, got.HasJoined("0201112222"))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)

		query := evt.Command.Lookup("query").Document()
		assert.Equal(mt, int64(1), query.Lookup("available_seats", "$gte").AsInt64())
		assert.Equal(mt, "0201112222", query.Lookup("joined_users.phone", "$ne").StringValue())
		assert.Equal(mt, string(models.RideStatusActive), query.Lookup("status").StringValue())

		update := evt.Command.Lookup("update").Document()
		assert.Equal(mt, int64(-1), update.Lookup("$inc", "available_seats").AsInt64())
	})

	mt.Run("no match reports condition not met", func(mt *mtest.T) {
		mt.AddMockResponses(findAndModifyReply(nil))

		_, err := NewRideRepository(mt.DB).ReserveSeats(context.Background(), primitive.NewObjectID(),
			models.JoinedUser{Phone: "0201112222", SeatsNeeded: 2})
		assert.ErrorIs(mt, err, interfaces.ErrConditionNotMet)
	})
}

func TestRideRepository_UpdateStatusGuarded(t *testing.T) {
	mt := newMockT(t)

	mt.Run("filters on the current status", func(mt *mtest.T) {
		ride := sampleRide(1)
		ride.Status = models.RideStatusCompleted
		mt.AddMockResponses(findAndModifyReply(toDoc(mt, ride)))

		got, err := NewRideRepository(mt.DB).UpdateStatus(context.Background(), ride.ID, models.RideStatusActive, models.RideStatusCompleted)
		require.NoError(mt, err)
		assert.Equal(mt, models.RideStatusCompleted, got.Status)

		query := mt.GetStartedEvent().Command.Lookup("query").Document()
		assert.Equal(mt, "active", query.Lookup("status").StringValue())
	})
}

func TestRideRepository_List(t *testing.T) {
	mt := newMockT(t)

	mt.Run("counts then pages", func(mt *mtest.T) {
		a, b := sampleRide(1), sampleRide(3)
		mt.AddMockResponses(
			countReply("test.rides", 2),
			mtest.CreateCursorResponse(0, "test.rides", mtest.FirstBatch, toDoc(mt, a), toDoc(mt, b)),
		)

		rides, total, err := NewRideRepository(mt.DB).List(context.Background(),
			interfaces.RideFilter{Status: models.RideStatusActive}, utils.DefaultPagination("departure_date"))
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), total)
		require.Len(mt, rides, 2)
		assert.Equal(mt, a.ID, rides[0].ID)
	})
}

func TestRideRepository_DeleteIsIdempotent(t *testing.T) {
	mt := newMockT(t)

	mt.Run("absent ride", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.NoError(mt, NewRideRepository(mt.DB).Delete(context.Background(), primitive.NewObjectID()))
	})
}
