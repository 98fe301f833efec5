package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"ealert.io/src/models"
)

func alertDoc(name string, ts time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "name", Value: name},
		{Key: "address", Value: "123 Emergency St, City"},
		{Key: "contact", Value: "911"},
		{Key: "timestamp", Value: ts},
	}
}

func TestListUsersStorePaths(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty store returns empty list", func(mt *mtest.T) {
		h := &AdminHandler{users: mt.Coll, cfg: testConfig()}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		w := getRequest(h.ListUsers)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"users":[]}`, w.Body.String())
	})

	mt.Run("credential hash projected out", func(mt *mtest.T) {
		h := &AdminHandler{users: mt.Coll, cfg: testConfig()}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc(t, "DD", "12345")),
		)

		w := getRequest(h.ListUsers)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"DD"`)
		assert.NotContains(t, w.Body.String(), "code_hash")

		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "find", evt.CommandName)
		projection, err := evt.Command.LookupErr("projection", "code_hash")
		require.NoError(t, err)
		assert.EqualValues(t, 0, projection.Int32())
	})
}

func TestListAlertsStorePaths(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty store returns empty list", func(mt *mtest.T) {
		h := &AdminHandler{alerts: mt.Coll, cfg: testConfig()}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		w := getRequest(h.ListAlerts)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"alerts":[]}`, w.Body.String())
	})

	mt.Run("most recent first", func(mt *mtest.T) {
		h := &AdminHandler{alerts: mt.Coll, cfg: testConfig()}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		newest := time.Now()
		older := newest.Add(-time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			alertDoc("Emergency Alert 2", newest),
			alertDoc("Emergency Alert 1", older),
		))

		w := getRequest(h.ListAlerts)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Alerts []models.Alert `json:"alerts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Alerts, 2)
		assert.Equal(t, "Emergency Alert 2", resp.Alerts[0].Name)
		assert.True(t, resp.Alerts[0].Timestamp.After(resp.Alerts[1].Timestamp))

		// The ordering is the store's job; verify the handler asked for it.
		evt := mt.GetStartedEvent()
		require.NotNil(t, evt)
		require.Equal(t, "find", evt.CommandName)
		sort, err := evt.Command.LookupErr("sort", "timestamp")
		require.NoError(t, err)
		assert.EqualValues(t, -1, sort.Int32())
	})
}
