package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/ecorewards/internal/client/catalog"
	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/client/services"
	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/dmitrijs2005/ecorewards/internal/waste"
)

const (
	dashboardActivity = 3
	profileActivity   = 5
)

func (a *App) Dashboard(ctx context.Context) error {
	p := a.ledger.Profile()
	s := a.ledger.Stats()

	fmt.Fprintf(a.out, "%s %s\n", p.AvatarGlyph, p.Name)
	fmt.Fprintf(a.out, "Points: %d  Items: %d  Level: %d  Streak: %d days\n",
		s.Points, s.ItemsSegregated, s.Level, s.Streak)
	fmt.Fprintf(a.out, "%d points to level %d\n", a.ledger.PointsToNextLevel(), s.Level+1)
	fmt.Fprintf(a.out, "Rank: #%d\n", a.ledger.Rank(catalog.Leaderboard()))

	fmt.Fprintln(a.out, "\nRecent activity:")
	a.printEvents(a.ledger.RecentHistory(dashboardActivity))
	return nil
}

// History prints the history, optionally limited to the newest n events.
func (a *App) History(ctx context.Context, args []string) error {
	n := -1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("%w: history count must be a non-negative number", common.ErrorValidation)
		}
		n = v
	}
	a.printEvents(a.ledger.RecentHistory(n))
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p := a.ledger.Profile()
	s := a.ledger.Stats()

	fmt.Fprintf(a.out, "%s %s", p.AvatarGlyph, p.Name)
	if p.Credentials.Email != "" {
		fmt.Fprintf(a.out, " <%s>", p.Credentials.Email)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Level %d, %d points, %d items, %d day streak\n",
		s.Level, s.Points, s.ItemsSegregated, s.Streak)
	fmt.Fprintf(a.out, "Accuracy: %.0f%%\n", a.ledger.Accuracy()*100)
	fmt.Fprintf(a.out, "Badges: %s\n", strings.Join(p.Badges, ", "))

	fmt.Fprintln(a.out, "\nWaste breakdown:")
	for _, b := range a.ledger.Breakdown() {
		fmt.Fprintf(a.out, "  %-28s %3d  %3d%%\n", waste.Type(b.Type).Label(), b.Count, b.Percentage)
	}

	fmt.Fprintln(a.out, "\nRecent history:")
	a.printEvents(a.ledger.RecentHistory(profileActivity))
	return nil
}

func (a *App) Leaderboard(ctx context.Context) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPOINTS\tITEMS\tSTREAK\t")
	for _, s := range a.ledger.Standings(catalog.Leaderboard()) {
		name := s.Entry.Name
		if s.Self {
			name += " (you)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t\n",
			s.Position, name, s.Entry.Points, s.Entry.WasteSegregated, s.Entry.Streak)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nAchievements:")
	for _, ach := range catalog.Achievements() {
		mark := " "
		if a.ledger.HasBadge(ach.Name) {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s %s: %s\n", mark, ach.Icon, ach.Name, ach.Description)
	}
	return nil
}

func (a *App) Rewards(ctx context.Context, args []string) error {
	category := models.RewardCategoryAll
	if len(args) > 0 {
		c, ok := parseCategory(args[0])
		if !ok {
			return fmt.Errorf("%w: unknown category %q", common.ErrorValidation, args[0])
		}
		category = c
	}

	fmt.Fprintf(a.out, "Your points: %d\n", a.ledger.Stats().Points)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREWARD\tCATEGORY\tPOINTS\tPRICE\t")
	for _, r := range a.rewards.List(category) {
		price := r.DiscountPrice
		if r.OriginalPrice != r.DiscountPrice {
			price = r.OriginalPrice + " -> " + r.DiscountPrice
		}
		name := r.Name
		if !a.ledger.CanAfford(r.Points) {
			name += " (locked)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t\n", r.ID, name, r.Category, r.Points, price)
	}
	return tw.Flush()
}

func (a *App) Redeem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: reward id is required", common.ErrorValidation)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: reward id must be a number", common.ErrorValidation)
	}

	r, err := a.rewards.Redeem(ctx, id)
	switch {
	case errors.Is(err, services.ErrInsufficientPoints):
		fmt.Fprintf(a.out, "Not enough points for %s: need %d, have %d\n",
			r.Name, r.Points, a.ledger.Stats().Points)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(a.out, "Redeemed %s for %d points. Remaining: %d\n",
		r.Name, r.Points, a.ledger.Stats().Points)
	return nil
}

func (a *App) Streak(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Streak: %d days\n", a.ledger.Stats().Streak)
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: streak must be a non-negative number", common.ErrorValidation)
	}
	a.ledger.UpdateStreak(ctx, n)
	fmt.Fprintf(a.out, "Streak set to %d days\n", n)
	return nil
}

func (a *App) Badge(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("%w: badge name is required", common.ErrorValidation)
	}
	a.ledger.AddBadge(ctx, name)
	fmt.Fprintf(a.out, "Badge %q added\n", name)
	return nil
}

func (a *App) printEvents(events []models.WasteEvent) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "  no activity yet")
		return
	}
	for _, e := range events {
		verdict := "Correct"
		if !e.WasCorrect {
			verdict = "Incorrect"
		}
		fmt.Fprintf(a.out, "  %s  %-16s %-10s +%-3d %s\n",
			e.Date(), e.Name, e.DeclaredType, e.PointsAwarded, verdict)
	}
}

func parseCategory(s string) (models.RewardCategory, bool) {
	for _, c := range catalog.RewardCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
