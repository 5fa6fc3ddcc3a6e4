package fplapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

// GetBootstrap trae el volcado completo: gameweeks, equipos, posiciones y jugadores.
func (c *Client) GetBootstrap(ctx context.Context) (*domain.Bootstrap, error) {
	var dto bootstrapDTO
	if err := c.doJSON(ctx, "GET", "/bootstrap-static/", nil, &dto); err != nil {
		return nil, err
	}

	out := &domain.Bootstrap{}
	for _, e := range dto.Events {
		out.Events = append(out.Events, domain.Gameweek{
			ID: e.ID, Name: e.Name, IsCurrent: e.IsCurrent, Finished: e.Finished,
		})
	}
	for _, t := range dto.Teams {
		out.Teams = append(out.Teams, domain.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName})
	}
	for _, p := range dto.ElementTypes {
		out.Positions = append(out.Positions, domain.Position{
			ID: p.ID, Name: p.SingularNameShort, Label: p.SingularName,
		})
	}
	for _, el := range dto.Elements {
		out.Elements = append(out.Elements, mapElement(el))
	}
	return out, nil
}

// GetPlayerSummary: historial por gameweek de un jugador.
func (c *Client) GetPlayerSummary(ctx context.Context, elementID int) ([]domain.GameweekHistory, error) {
	var dto elementSummaryDTO
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/element-summary/%d/", elementID), nil, &dto); err != nil {
		return nil, err
	}
	out := make([]domain.GameweekHistory, 0, len(dto.History))
	for _, h := range dto.History {
		out = append(out, domain.GameweekHistory{
			PlayerID: h.Element,
			Round:    h.Round,
			Points:   h.TotalPoints,
			Minutes:  h.Minutes,
			Goals:    h.GoalsScored,
			Assists:  h.Assists,
			Bonus:    h.Bonus,
			Value:    h.Value,
		})
	}
	return out, nil
}

// GetFixtures: event=0 devuelve la temporada entera.
func (c *Client) GetFixtures(ctx context.Context, event int) ([]domain.Fixture, error) {
	var q url.Values
	if event > 0 {
		q = url.Values{}
		q.Set("event", strconv.Itoa(event))
	}
	var dtos []fixtureDTO
	if err := c.doJSON(ctx, "GET", "/fixtures/", q, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Fixture, 0, len(dtos))
	for _, f := range dtos {
		fx := domain.Fixture{
			ID:        f.ID,
			HomeTeam:  f.TeamH,
			AwayTeam:  f.TeamA,
			HomeScore: f.TeamHS,
			AwayScore: f.TeamAS,
			Finished:  f.Finished,
		}
		if f.Event != nil {
			fx.Event = *f.Event
		}
		if f.Kickoff != "" {
			if t, err := time.Parse(time.RFC3339, f.Kickoff); err == nil {
				fx.Kickoff = t
			}
		}
		out = append(out, fx)
	}
	return out, nil
}

func mapElement(el elementDTO) domain.Element {
	return domain.Element{
		ID:          el.ID,
		FirstName:   el.FirstName,
		WebName:     el.WebName,
		Team:        el.Team,
		ElementType: el.ElementType,

		NowCost:             el.NowCost,
		TotalPoints:         el.TotalPoints,
		EventPoints:         el.EventPoints,
		GoalsScored:         el.GoalsScored,
		Assists:             el.Assists,
		Minutes:             el.Minutes,
		CleanSheets:         el.CleanSheets,
		GoalsConceded:       el.GoalsConceded,
		OwnGoals:            el.OwnGoals,
		PenaltiesSaved:      el.PenaltiesSaved,
		PenaltiesMissed:     el.PenaltiesMissed,
		Saves:               el.Saves,
		YellowCards:         el.YellowCards,
		RedCards:            el.RedCards,
		Bonus:               el.Bonus,
		DreamteamCount:      el.DreamteamCount,
		TransfersIn:         el.TransfersIn,
		TransfersOut:        el.TransfersOut,
		TransfersInEvent:    el.TransfersInEvent,
		TransfersOutEvent:   el.TransfersOutEvent,
		CostChangeStart:     el.CostChangeStart,
		CostChangeStartFall: el.CostChangeStartFall,
		CostChangeEvent:     el.CostChangeEvent,
		CostChangeEventFall: el.CostChangeEventFall,
		Starts:              el.Starts,

		PointsPerGame:            parseStat(el.PointsPerGame),
		SelectedByPercent:        parseStat(el.SelectedByPercent),
		Influence:                parseStat(el.Influence),
		Creativity:               parseStat(el.Creativity),
		Threat:                   parseStat(el.Threat),
		IctIndex:                 parseStat(el.IctIndex),
		Form:                     parseStat(el.Form),
		ValueForm:                parseStat(el.ValueForm),
		ValueSeason:              parseStat(el.ValueSeason),
		ExpectedGoals:            parseStat(el.ExpectedGoals),
		ExpectedAssists:          parseStat(el.ExpectedAssists),
		ExpectedGoalInvolvements: parseStat(el.ExpectedGoalInvolvements),
		ExpectedGoalsConceded:    parseStat(el.ExpectedGoalsConceded),

		News: el.News,

		InfluenceRank:  el.InfluenceRank,
		CreativityRank: el.CreativityRank,
		ThreatRank:     el.ThreatRank,
		IctIndexRank:   el.IctIndexRank,
	}
}

// parseStat: la API manda "3.5" como string; vacío o basura cuenta como 0.
func parseStat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
