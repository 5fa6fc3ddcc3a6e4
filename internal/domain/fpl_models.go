package domain

import "time"

// Team y Position vienen de bootstrap-static; solo lo que usamos.
type Team struct {
	ID        int
	Name      string
	ShortName string
}

type Position struct {
	ID    int
	Name  string // GKP | DEF | MID | FWD
	Label string // Goalkeeper, Defender...
}

type Gameweek struct {
	ID        int
	Name      string
	IsCurrent bool
	Finished  bool
}

// Element es un jugador tal como lo entrega la API, ya con los
// ratio-stats parseados de string a float.
type Element struct {
	ID          int
	FirstName   string
	WebName     string
	Team        int
	ElementType int

	NowCost             int // décimas de £m
	TotalPoints         int
	EventPoints         int
	GoalsScored         int
	Assists             int
	Minutes             int
	CleanSheets         int
	GoalsConceded       int
	OwnGoals            int
	PenaltiesSaved      int
	PenaltiesMissed     int
	Saves               int
	YellowCards         int
	RedCards            int
	Bonus               int
	DreamteamCount      int
	TransfersIn         int
	TransfersOut        int
	TransfersInEvent    int
	TransfersOutEvent   int
	CostChangeStart     int
	CostChangeStartFall int
	CostChangeEvent     int
	CostChangeEventFall int
	Starts              int

	PointsPerGame            float64
	SelectedByPercent        float64
	Influence                float64
	Creativity               float64
	Threat                   float64
	IctIndex                 float64
	Form                     float64
	ValueForm                float64
	ValueSeason              float64
	ExpectedGoals            float64
	ExpectedAssists          float64
	ExpectedGoalInvolvements float64
	ExpectedGoalsConceded    float64

	News string

	InfluenceRank  *int
	CreativityRank *int
	ThreatRank     *int
	IctIndexRank   *int
}

type Bootstrap struct {
	Events    []Gameweek
	Teams     []Team
	Positions []Position
	Elements  []Element
}

// CurrentGameweek devuelve el id del GW en curso (0 si no hay).
func (b *Bootstrap) CurrentGameweek() int {
	for _, e := range b.Events {
		if e.IsCurrent {
			return e.ID
		}
	}
	return 0
}

// PlayerStats es la fila del dataset publicado. El orden y los nombres
// de columna los fija dataset.Columns.
type PlayerStats struct {
	PlayerID     int // no se exporta al CSV, clave interna
	PlayerName   string
	ClubName     string
	PositionName string

	NowCost           float64 // £m, ya dividido por 10
	TotalPoints       int
	EventPoints       int
	PointsPerGame     float64
	SelectedByPercent float64
	GoalsScored       int
	Assists           int
	Minutes           int
	CleanSheets       int
	GoalsConceded     int
	OwnGoals          int
	PenaltiesSaved    int
	PenaltiesMissed   int
	Saves             int
	YellowCards       int
	RedCards          int
	Bonus             int

	Influence  float64
	Creativity float64
	Threat     float64
	IctIndex   float64
	Form       float64

	DreamteamCount int
	ValueForm      float64
	ValueSeason    float64

	TransfersIn       int
	TransfersOut      int
	TransfersInEvent  int
	TransfersOutEvent int

	CostChangeStart     float64
	CostChangeStartFall float64
	CostChangeEvent     float64
	CostChangeEventFall float64

	ExpectedGoals            float64
	ExpectedAssists          float64
	ExpectedGoalInvolvements float64
	ExpectedGoalsConceded    float64

	Starts int
	News   string

	InfluenceRank  *int
	CreativityRank *int
	ThreatRank     *int
	IctIndexRank   *int
}

// GameweekHistory: una fila de element-summary/history.
type GameweekHistory struct {
	PlayerID int
	Round    int
	Points   int
	Minutes  int
	Goals    int
	Assists  int
	Bonus    int
	Value    int // décimas de £m en ese GW
}

type Fixture struct {
	ID        int
	Event     int // 0 = sin programar
	HomeTeam  int
	AwayTeam  int
	HomeScore *int
	AwayScore *int
	Kickoff   time.Time
	Finished  bool
}
