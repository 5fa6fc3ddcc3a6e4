package fplapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootstrapFixture = `{
  "events": [
    {"id": 1, "name": "Gameweek 1", "is_current": false, "finished": true},
    {"id": 2, "name": "Gameweek 2", "is_current": true, "finished": false}
  ],
  "teams": [
    {"id": 1, "name": "Arsenal", "short_name": "ARS"},
    {"id": 2, "name": "Liverpool", "short_name": "LIV"}
  ],
  "element_types": [
    {"id": 3, "singular_name": "Midfielder", "singular_name_short": "MID"},
    {"id": 4, "singular_name": "Forward", "singular_name_short": "FWD"}
  ],
  "elements": [
    {
      "id": 101, "first_name": "Mohamed", "web_name": "Salah",
      "team": 2, "element_type": 3,
      "now_cost": 131, "total_points": 344, "event_points": 12,
      "points_per_game": "9.1", "selected_by_percent": "56.3",
      "goals_scored": 29, "assists": 18, "minutes": 3371,
      "clean_sheets": 12, "goals_conceded": 38,
      "influence": "1532.0", "creativity": "1116.4", "threat": "1573.0",
      "ict_index": "422.4", "form": "7.5",
      "value_form": "0.6", "value_season": "26.3",
      "expected_goals": "23.61", "expected_assists": "12.47",
      "expected_goal_involvements": "36.08", "expected_goals_conceded": "40.99",
      "dreamteam_count": 10, "starts": 38, "news": "",
      "transfers_in": 100, "transfers_out": 50,
      "transfers_in_event": 5, "transfers_out_event": 2,
      "cost_change_start": 6, "cost_change_start_fall": -6,
      "cost_change_event": 1, "cost_change_event_fall": -1,
      "influence_rank": 1, "creativity_rank": 2, "threat_rank": 1, "ict_index_rank": 1
    },
    {
      "id": 202, "first_name": "Nuevo", "web_name": "Fichaje",
      "team": 1, "element_type": 4,
      "now_cost": 45, "total_points": 0, "event_points": 0,
      "points_per_game": "", "selected_by_percent": "0.1",
      "form": "", "value_form": "", "value_season": "",
      "influence": "0.0", "creativity": "0.0", "threat": "0.0", "ict_index": "0.0",
      "expected_goals": "", "expected_assists": "",
      "expected_goal_involvements": "", "expected_goals_conceded": "",
      "news": "Se espera debut en GW3",
      "influence_rank": null, "creativity_rank": null, "threat_rank": null, "ict_index_rank": null
    }
  ]
}`

func TestGetBootstrap_Mapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bootstrap-static/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bootstrapFixture))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	b, err := c.GetBootstrap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, b.CurrentGameweek())
	require.Len(t, b.Teams, 2)
	require.Len(t, b.Positions, 2)
	assert.Equal(t, "MID", b.Positions[0].Name)
	assert.Equal(t, "Midfielder", b.Positions[0].Label)

	require.Len(t, b.Elements, 2)
	salah := b.Elements[0]
	assert.Equal(t, 101, salah.ID)
	assert.Equal(t, "Mohamed", salah.FirstName)
	assert.Equal(t, 131, salah.NowCost) // crudo, en décimas; la división la hace el servicio
	assert.InDelta(t, 9.1, salah.PointsPerGame, 1e-9)
	assert.InDelta(t, 23.61, salah.ExpectedGoals, 1e-9)
	require.NotNil(t, salah.InfluenceRank)
	assert.Equal(t, 1, *salah.InfluenceRank)

	// strings vacíos y ranks null no rompen nada
	nuevo := b.Elements[1]
	assert.Zero(t, nuevo.PointsPerGame)
	assert.Zero(t, nuevo.ExpectedGoals)
	assert.Nil(t, nuevo.InfluenceRank)
	assert.Equal(t, "Se espera debut en GW3", nuevo.News)
}

func TestGetPlayerSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/element-summary/101/", r.URL.Path)
		_, _ = w.Write([]byte(`{"history":[
			{"element":101,"round":1,"total_points":12,"minutes":90,"goals_scored":2,"assists":0,"bonus":3,"value":130},
			{"element":101,"round":2,"total_points":2,"minutes":77,"goals_scored":0,"assists":0,"bonus":0,"value":131}
		]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	hs, err := c.GetPlayerSummary(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, 1, hs[0].Round)
	assert.Equal(t, 12, hs[0].Points)
	assert.Equal(t, 131, hs[1].Value)
}

func TestGetFixtures_EventFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("event"))
		_, _ = w.Write([]byte(`[
			{"id":40,"event":5,"team_h":1,"team_a":2,"team_h_score":2,"team_a_score":2,
			 "kickoff_time":"2025-09-27T14:00:00Z","finished":true,"started":true,"minutes":90}
		]`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	fs, err := c.GetFixtures(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	assert.Equal(t, 5, fs[0].Event)
	require.NotNil(t, fs[0].HomeScore)
	assert.Equal(t, 2, *fs[0].HomeScore)
	assert.Equal(t, 2025, fs[0].Kickoff.Year())
	assert.True(t, fs[0].Finished)
}

func TestDoJSON_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.GetPlayerSummary(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDoJSON_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The game is being updated.", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.GetBootstrap(context.Background())

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Contains(t, apiErr.Body, "being updated")
}

func TestDoJSON_RetryAfter(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"history":[]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.GetPlayerSummary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoJSON_RetryAfterRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	// el timeout vence mientras esperamos el Retry-After de 60s
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	c := New(WithBaseURL(srv.URL))
	_, err := c.GetPlayerSummary(ctx, 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseStat(t *testing.T) {
	assert.InDelta(t, 3.5, parseStat("3.5"), 1e-9)
	assert.InDelta(t, 3.5, parseStat(" 3.5 "), 1e-9)
	assert.Zero(t, parseStat(""))
	assert.Zero(t, parseStat("n/a"))
}
