package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zor292/website2/dto"
	"github.com/Zor292/website2/model"
)

var alice = model.SessionUser{ID: "100", Username: "alice", Avatar: "a.png"}

func TestCreateRatingInvalidStars(t *testing.T) {
	store := newFakeRatingStore()
	app := testApp(&alice)
	app.Post("/api/ratings", (&RatingHandler{Store: store}).Create)

	for _, stars := range []int{0, 6, -1} {
		resp, err := app.Test(jsonReq(http.MethodPost, "/api/ratings", dto.CreateRatingReq{Stars: stars}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "invalid stars", body["error"])
	}
	assert.Empty(t, store.byUser, "invalid ratings must not be written")
}

func TestCreateRatingUpsertsByUser(t *testing.T) {
	store := newFakeRatingStore()
	app := testApp(&alice)
	app.Post("/api/ratings", (&RatingHandler{Store: store}).Create)

	resp, err := app.Test(jsonReq(http.MethodPost, "/api/ratings", dto.CreateRatingReq{Stars: 3, Text: "ok"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var first map[string]any
	decodeBody(t, resp, &first)
	assert.Equal(t, false, first["updated"])

	resp, err = app.Test(jsonReq(http.MethodPost, "/api/ratings", dto.CreateRatingReq{Stars: 5, Text: "better"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var second map[string]any
	decodeBody(t, resp, &second)
	assert.Equal(t, true, second["ok"])
	assert.Equal(t, true, second["updated"])

	require.Len(t, store.byUser, 1, "exactly one rating per user id")
	assert.Equal(t, 5, store.byUser["100"].Stars)
}

func TestCreateRatingAnonymous(t *testing.T) {
	app := testApp(nil)
	app.Post("/api/ratings", (&RatingHandler{Store: newFakeRatingStore()}).Create)

	resp, err := app.Test(jsonReq(http.MethodPost, "/api/ratings", dto.CreateRatingReq{Stars: 3}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteRating(t *testing.T) {
	store := newFakeRatingStore()
	_, err := store.Upsert(nil, model.Rating{UserID: "100", Stars: 4})
	require.NoError(t, err)
	id := store.byUser["100"].ID

	app := testApp(&alice)
	app.Delete("/api/ratings/:id", (&RatingHandler{Store: store}).Delete)

	resp, err := app.Test(jsonReq(http.MethodDelete, "/api/ratings/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, store.byUser)

	// Gone already: 404.
	resp, err = app.Test(jsonReq(http.MethodDelete, "/api/ratings/"+id.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(jsonReq(http.MethodDelete, "/api/ratings/not-hex", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
