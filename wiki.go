package projreport

import (
	"io"
	"strings"
	"text/template"
)

// UnknownDate is rendered when a record has no date_updated field.
const UnknownDate = "unknown date"

const wikiDefaultURL = "https://fburl.com/ens_project_status"

const wikiHeader = "{| class=\"wikitable\"\n" +
	"! <b>Project Name (link)</b>\n" +
	"! <b>OPM</b>\n" +
	"! <b>Overall Health</b>\n" +
	"! <span title=\"Meeting Deadlines?\"><b>Time</b></span>\n" +
	"! <span title=\"Scope Alignment\"><b>Scope</b></span>\n" +
	"! <span title=\"Potential Risks\"><b>Risk</b></span>\n" +
	"! <b>Background Detail</b>\n" +
	"! <span title=\"Weeks Updates\"><b>Updates</b></span>\n" +
	"! <b>Last Updated</b>\n\n"

const wikiFooter = "|}"

var wikiRow = template.Must(template.New("wiki").Parse("|-\n" +
	"| [[{{.URL}} {{.Title}}]]\n" +
	"| {{.ProjectManager}}\n" +
	"| {{.OverallStatus}}\n" +
	"| {{.TimeStatus}}\n" +
	"| {{.ScopeStatus}}\n" +
	"| {{.RiskStatus}}\n" +
	"|\n" +
	"<div class=\"toccolours mw-collapsible mw-collapsed\">\n" +
	"<br> <b>{{.Priority}}</b> priority <br> Click for details." +
	"<div class=\"mw-collapsible-content\">\n" +
	"It is sponsored by {{.Sponsor}}. It will be completed " +
	"<b>{{.TargetCompletion}}</b> based on a time allocation of " +
	"<b>{{.TimeRequired}}</b> this quarter.\n" +
	"----\n" +
	"<nowiki>\n{{.Objectives}}\n</nowiki>\n" +
	"</div>\n" +
	"</div>\n" +
	"|\n" +
	"<nowiki>\n{{.Updates}}\n</nowiki>\n" +
	"| {{.DateUpdated}}\n\n"))

type wikiFields struct {
	URL              string
	Title            string
	ProjectManager   string
	OverallStatus    string
	TimeStatus       string
	ScopeStatus      string
	RiskStatus       string
	Priority         string
	Sponsor          string
	TargetCompletion string
	TimeRequired     string
	Objectives       string
	Updates          string
	DateUpdated      string
}

func newWikiFields(r Record, roster *Roster) wikiFields {
	return wikiFields{
		URL:              r.Lookup(FieldURL, wikiDefaultURL),
		Title:            r.Lookup(FieldTitle, "None"),
		ProjectManager:   roster.Person(r.Lookup(FieldProjectManager, "None")),
		OverallStatus:    roster.Status(r.Lookup(FieldOverallStatus, "g")),
		TimeStatus:       roster.Status(r.Lookup(FieldTimeStatus, "g")),
		ScopeStatus:      roster.Status(r.Lookup(FieldScopeStatus, "g")),
		RiskStatus:       roster.Status(r.Lookup(FieldRiskStatus, "g")),
		Priority:         r.Lookup(FieldPriority, "None"),
		Sponsor:          roster.Person(r.Lookup(FieldSponsor, "None")),
		TargetCompletion: r.Lookup(FieldTargetCompletion, "None"),
		TimeRequired:     r.Lookup(FieldTimeRequired, "None"),
		Objectives:       r.Lookup(FieldObjectives, "None"),
		Updates:          r.Lookup(FieldUpdates, "None"),
		DateUpdated:      r.Lookup(FieldDateUpdated, UnknownDate),
	}
}

// RenderWiki renders records as a wiki table. A nil roster means
// [DefaultRoster].
func RenderWiki(records []Record, roster *Roster) string {
	var sb strings.Builder
	// strings.Builder never fails and the template only reads strings.
	_ = writeWiki(&sb, records, roster)
	return sb.String()
}

func writeWiki(w io.Writer, records []Record, roster *Roster) error {
	if roster == nil {
		roster = DefaultRoster()
	}
	if _, err := io.WriteString(w, wikiHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := wikiRow.Execute(w, newWikiFields(r, roster)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, wikiFooter)
	return err
}
