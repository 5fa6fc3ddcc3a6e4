package fplapi

// --- bootstrap-static ---
// Ojo: la API manda los stats de ratio (form, ict, xG...) como strings.
type bootstrapDTO struct {
	Events []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		IsCurrent bool   `json:"is_current"`
		Finished  bool   `json:"finished"`
	} `json:"events"`
	Teams []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		ShortName string `json:"short_name"`
	} `json:"teams"`
	ElementTypes []struct {
		ID                int    `json:"id"`
		SingularName      string `json:"singular_name"`
		SingularNameShort string `json:"singular_name_short"`
	} `json:"element_types"`
	Elements []elementDTO `json:"elements"`
}

type elementDTO struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	WebName     string `json:"web_name"`
	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`

	NowCost             int `json:"now_cost"`
	TotalPoints         int `json:"total_points"`
	EventPoints         int `json:"event_points"`
	GoalsScored         int `json:"goals_scored"`
	Assists             int `json:"assists"`
	Minutes             int `json:"minutes"`
	CleanSheets         int `json:"clean_sheets"`
	GoalsConceded       int `json:"goals_conceded"`
	OwnGoals            int `json:"own_goals"`
	PenaltiesSaved      int `json:"penalties_saved"`
	PenaltiesMissed     int `json:"penalties_missed"`
	Saves               int `json:"saves"`
	YellowCards         int `json:"yellow_cards"`
	RedCards            int `json:"red_cards"`
	Bonus               int `json:"bonus"`
	DreamteamCount      int `json:"dreamteam_count"`
	TransfersIn         int `json:"transfers_in"`
	TransfersOut        int `json:"transfers_out"`
	TransfersInEvent    int `json:"transfers_in_event"`
	TransfersOutEvent   int `json:"transfers_out_event"`
	CostChangeStart     int `json:"cost_change_start"`
	CostChangeStartFall int `json:"cost_change_start_fall"`
	CostChangeEvent     int `json:"cost_change_event"`
	CostChangeEventFall int `json:"cost_change_event_fall"`
	Starts              int `json:"starts"`

	PointsPerGame            string `json:"points_per_game"`
	SelectedByPercent        string `json:"selected_by_percent"`
	Influence                string `json:"influence"`
	Creativity               string `json:"creativity"`
	Threat                   string `json:"threat"`
	IctIndex                 string `json:"ict_index"`
	Form                     string `json:"form"`
	ValueForm                string `json:"value_form"`
	ValueSeason              string `json:"value_season"`
	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`

	News string `json:"news"`

	// pueden venir null al inicio de temporada
	InfluenceRank  *int `json:"influence_rank"`
	CreativityRank *int `json:"creativity_rank"`
	ThreatRank     *int `json:"threat_rank"`
	IctIndexRank   *int `json:"ict_index_rank"`
}

// --- element-summary/{id} ---
type elementSummaryDTO struct {
	History []struct {
		Element     int    `json:"element"`
		Round       int    `json:"round"`
		TotalPoints int    `json:"total_points"`
		Minutes     int    `json:"minutes"`
		GoalsScored int    `json:"goals_scored"`
		Assists     int    `json:"assists"`
		Bonus       int    `json:"bonus"`
		Value       int    `json:"value"`
		KickoffTime string `json:"kickoff_time"`
	} `json:"history"`
}

// --- fixtures ---
type fixtureDTO struct {
	ID        int    `json:"id"`
	Event     *int   `json:"event"`
	TeamH     int    `json:"team_h"`
	TeamA     int    `json:"team_a"`
	TeamHS   *int   `json:"team_h_score"`
	TeamAS   *int   `json:"team_a_score"`
	Kickoff  string `json:"kickoff_time"`
	Finished bool   `json:"finished"`
	Started  bool   `json:"started"`
	Minutes  int    `json:"minutes"`
}
