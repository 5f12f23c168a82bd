// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Provides an ASCII overview of the Folk workspace
package viz

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/folk-mcp/folk"
)

// statsPageLimit is how much of each collection the dashboard samples. The
// API has no count endpoint, so totals past one page show as "100+".
const statsPageLimit = 100

type DashboardStats struct {
	TotalPeople    int
	MorePeople     bool
	TotalCompanies int
	MoreCompanies  bool

	Groups []string

	// Reminders split around now
	UpcomingReminders []ReminderItem
	OverdueReminders  []ReminderItem
}

type ReminderItem struct {
	Name    string
	Entity  string
	Trigger time.Time
}

func GenerateDashboardStats(ctx context.Context, client *folk.Client) (*DashboardStats, error) {
	stats := &DashboardStats{}

	people, err := client.ListPeople(ctx, folk.ListOptions{Limit: statsPageLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch people: %w", err)
	}
	stats.TotalPeople = len(people.Items)
	stats.MorePeople = people.HasMore()

	companies, err := client.ListCompanies(ctx, folk.ListOptions{Limit: statsPageLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	stats.TotalCompanies = len(companies.Items)
	stats.MoreCompanies = companies.HasMore()

	groups, err := client.ListGroups(ctx, folk.ListOptions{Limit: statsPageLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	for _, g := range groups.Items {
		stats.Groups = append(stats.Groups, g.Name)
	}

	reminders, err := client.ListReminders(ctx, folk.ReminderListOptions{Limit: statsPageLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reminders: %w", err)
	}

	now := time.Now()
	for i := range reminders.Items {
		r := &reminders.Items[i]
		if r.NextTriggerTime == "" {
			continue
		}
		trigger, err := time.Parse(time.RFC3339, r.NextTriggerTime)
		if err != nil {
			continue
		}
		item := ReminderItem{Name: r.Name, Trigger: trigger}
		if r.Entity != nil {
			item.Entity = r.Entity.FullName
		}
		if trigger.Before(now) {
			stats.OverdueReminders = append(stats.OverdueReminders, item)
		} else {
			stats.UpcomingReminders = append(stats.UpcomingReminders, item)
		}
	}

	sort.Slice(stats.UpcomingReminders, func(i, j int) bool {
		return stats.UpcomingReminders[i].Trigger.Before(stats.UpcomingReminders[j].Trigger)
	})
	sort.Slice(stats.OverdueReminders, func(i, j int) bool {
		return stats.OverdueReminders[i].Trigger.Before(stats.OverdueReminders[j].Trigger)
	})

	return stats, nil
}

func RenderDashboard(stats *DashboardStats) string {
	var out strings.Builder

	// Header
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  FOLK WORKSPACE DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	// Stats
	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %s people  🏢 %s companies  📁 %d groups\n\n",
		countLabel(stats.TotalPeople, stats.MorePeople),
		countLabel(stats.TotalCompanies, stats.MoreCompanies),
		len(stats.Groups)))

	// Groups
	if len(stats.Groups) > 0 {
		out.WriteString("GROUPS\n")
		for _, name := range stats.Groups {
			out.WriteString(fmt.Sprintf("  • %s\n", name))
		}
		out.WriteString("\n")
	}

	// Upcoming reminders
	if len(stats.UpcomingReminders) > 0 {
		out.WriteString("UPCOMING REMINDERS\n")
		for i, item := range stats.UpcomingReminders {
			if i == 5 {
				out.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.UpcomingReminders)-5))
				break
			}
			out.WriteString(fmt.Sprintf("  %s  %s%s\n",
				item.Trigger.Format("2006-01-02 15:04"), item.Name, entitySuffix(item.Entity)))
		}
		out.WriteString("\n")
	}

	// Needs attention
	if len(stats.OverdueReminders) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d reminders overdue\n", len(stats.OverdueReminders)))
		for i, item := range stats.OverdueReminders {
			if i == 5 {
				break
			}
			out.WriteString(fmt.Sprintf("      %s  %s%s\n",
				item.Trigger.Format("2006-01-02"), item.Name, entitySuffix(item.Entity)))
		}
	}

	return out.String()
}

func countLabel(n int, more bool) string {
	if more {
		return strconv.Itoa(n) + "+"
	}
	return strconv.Itoa(n)
}

func entitySuffix(entity string) string {
	if entity == "" {
		return ""
	}
	return " (" + entity + ")"
}
