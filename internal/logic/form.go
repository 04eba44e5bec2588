package logic

import (
	"context"
	"sort"
	"strings"

	"github.com/betanalytics/analytics-api/internal/models"
	"gonum.org/v1/gonum/stat"
)

var formPoints = map[string]int{"W": 3, "D": 1, "L": 0}

// BuildRecentForm returns the team's last window finished matches, most
// recent first, with the matching form string ("WDL...", newest first).
// Unfinished matches and matches the team did not play are skipped.
func BuildRecentForm(teamID int64, matches []models.Match, window int) ([]models.FormItem, string, error) {
	if window <= 0 {
		return nil, "", ErrInvalidWindow
	}

	played := make([]*models.Match, 0, len(matches))
	for i := range matches {
		if matches[i].IsFinished() && matches[i].Involves(teamID) {
			played = append(played, &matches[i])
		}
	}

	sort.SliceStable(played, func(i, j int) bool {
		if played[i].MatchDate.Equal(played[j].MatchDate) {
			return played[i].ID > played[j].ID
		}
		return played[i].MatchDate.After(played[j].MatchDate)
	})
	if len(played) > window {
		played = played[:window]
	}

	items := make([]models.FormItem, 0, len(played))
	var sb strings.Builder
	for _, m := range played {
		h, a := m.Score()
		home := m.HomeTeamID == teamID

		item := models.FormItem{MatchID: m.ID, Date: m.MatchDate}
		if home {
			item.GoalsFor, item.GoalsAgainst = h, a
			item.Opponent = m.AwayTeamName
			item.Venue = "home"
		} else {
			item.GoalsFor, item.GoalsAgainst = a, h
			item.Opponent = m.HomeTeamName
			item.Venue = "away"
		}

		winner := m.Winner
		if winner == "" {
			winner = models.OutcomeFor(h, a)
		}
		item.Result = resultFor(winner, home)
		item.Points = formPoints[item.Result]

		items = append(items, item)
		sb.WriteString(item.Result)
	}

	return items, sb.String(), nil
}

// formMomentum is the least-squares slope of goal difference over the
// window, oldest to newest. Positive means improving.
func formMomentum(items []models.FormItem) float64 {
	if len(items) < 2 {
		return 0
	}
	xs := make([]float64, len(items))
	ys := make([]float64, len(items))
	for i := range items {
		// items are newest first
		item := items[len(items)-1-i]
		xs[i] = float64(i)
		ys[i] = float64(item.GoalsFor - item.GoalsAgainst)
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta
}

type formService struct {
	repo Repository
}

func NewFormService(repo Repository) FormService {
	return &formService{repo: repo}
}

func (s *formService) RecentForm(ctx context.Context, teamID int64, window int) (*models.TeamFormResult, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// No Limit: the store caps pages, and BuildRecentForm truncates to window.
	matches, err := s.repo.GetMatches(ctx, models.MatchFilter{
		TeamID: teamID,
		Status: models.StatusFinished,
		Order:  models.SortDesc,
	})
	if err != nil {
		return nil, err
	}

	items, formString, err := BuildRecentForm(teamID, matches, window)
	if err != nil {
		return nil, err
	}

	result := &models.TeamFormResult{
		TeamID:     team.ID,
		TeamName:   team.Name,
		RecentForm: items,
		FormString: formString,
		Momentum:   formMomentum(items),
	}
	for _, item := range items {
		result.Points += item.Points
	}
	return result, nil
}
