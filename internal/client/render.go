package client

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/biz-records/models"
)

const timeLayout = "2006-01-02 15:04"

type field struct {
	key   string
	value string
}

func renderPage(title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), boxStyle.Render(body)) + "\n"
}

func renderFields(title string, fields []field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, keyStyle.Render(f.key)+valueOrDash(f.value))
	}
	return renderPage(title, strings.Join(lines, "\n"))
}

func renderTable(title string, headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return titleStyle.Render(title) + "\n" + helpStyle.Render("(none)") + "\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return titleStyle.Render(title) + "\n" + t.Render() + "\n"
}

func renderUser(u models.User) string {
	return renderFields("Profile", []field{
		{"username", u.Username},
		{"email", u.Email},
		{"first name", u.FirstName},
		{"last name", u.LastName},
	})
}

func renderVersion(v models.VersionResponse) string {
	return renderFields("biz-records", []field{
		{"version", v.Version},
		{"date", v.Date},
		{"commit", v.Commit},
	})
}

func renderError(err error) string {
	return errorStyle.Render("error: ") + err.Error() + "\n"
}

func clientRows(clients []models.ClientView) [][]string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.Name, formatTime(c.DateCreated)})
	}
	return rows
}

func databaseRows(databases []models.Database) [][]string {
	rows := make([][]string, 0, len(databases))
	for _, d := range databases {
		rows = append(rows, []string{
			formatID(d.ID), d.Name, d.Description, formatID(d.OwnedBy), formatID(d.CreatedBy), formatTime(d.DateCreated),
		})
	}
	return rows
}

func projectRows(projects []models.Project) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			formatID(p.ID), p.Name, p.Description, formatID(p.Database), formatID(p.Client), formatID(p.CreatedBy), formatTime(p.DateCreated),
		})
	}
	return rows
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(timeLayout)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
