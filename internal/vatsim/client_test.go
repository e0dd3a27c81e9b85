package vatsim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegors/vatscope/pkg/logger"
)

const feedJSON = `{
	"general": {"version": 3, "update_timestamp": "2025-03-14T12:00:00Z"},
	"pilots": [
		{
			"cid": 1234567,
			"name": "Test Pilot",
			"callsign": "ACA123",
			"latitude": 44.5,
			"longitude": -63.5,
			"altitude": 36000,
			"groundspeed": 455,
			"heading": 270,
			"flight_plan": {"departure": "CYHZ", "arrival": "CYYZ", "aircraft_short": "A321"}
		},
		{
			"cid": 7654321,
			"name": "Other Pilot",
			"callsign": "BAW9",
			"latitude": 51.5,
			"longitude": -0.5,
			"altitude": 2000,
			"groundspeed": 180,
			"heading": 90
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, ttl time.Duration) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/feed", server.URL+"/static", server.URL+"/boundaries", 5*time.Second, ttl, logger.NewNop())
}

func TestFetchDatafeedCaching(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(feedJSON))
	}, time.Minute)

	ctx := context.Background()
	first, err := client.FetchDatafeed(ctx)
	require.NoError(t, err)
	second, err := client.FetchDatafeed(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
	require.Len(t, first.Pilots, 2)
	assert.Equal(t, "ACA123", first.Pilots[0].Callsign)
	require.NotNil(t, first.Pilots[0].FlightPlan)
	assert.Equal(t, "CYYZ", first.Pilots[0].FlightPlan.Arrival)
}

func TestFindPilot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedJSON))
	}, time.Minute)

	ctx := context.Background()
	pilot, err := client.FindPilot(ctx, "aca123")
	require.NoError(t, err)
	require.NotNil(t, pilot)
	assert.Equal(t, 1234567, pilot.CID)

	missing, err := client.FindPilot(ctx, "DAL1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFetchStaticData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/static" {
			w.Write([]byte("[Airports]\nKJFK|Kennedy|40.6|-73.7|JFK|KZNY|0\n"))
			return
		}
		http.NotFound(w, r)
	}, time.Minute)

	text, err := client.FetchStaticData(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "KJFK")
}

func TestFetchErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}, time.Minute)

	_, err := client.FetchDatafeed(context.Background())
	assert.Error(t, err)

	_, err = client.FetchBoundaries(context.Background())
	assert.Error(t, err)
}
