package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/formassist"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/report"
	"github.com/akyairhashvil/seodesk/internal/util"
)

type editTagMsg struct {
	tag models.SEOTag
}

type newTagMsg struct{}

// ListModel shows every tag with its title and description indicators.
type ListModel struct {
	ctx        context.Context
	db         Database
	tags       []models.SEOTag
	total      int
	cursor     int
	offset     int
	filter     textinput.Model
	filtering  bool
	query      string
	confirm    bool
	status     string
	err        error
	width      int
	height     int
	now        func() time.Time
	reportPath func(time.Time) string
}

func NewListModel(ctx context.Context, db Database) ListModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "text og:article card:summary sort:-updated_at"
	ti.Width = config.DefaultInputWidth
	m := ListModel{
		ctx:    ctx,
		db:     db,
		filter: ti,
		width:  config.CompactModeThreshold,
		now:    time.Now,
	}
	m.reportPath = defaultReportPath
	m.reload()
	return m
}

func defaultReportPath(t time.Time) string {
	return util.ReportPath(config.AppName, t)
}

// filterFor turns a filter line into a store query.
func filterFor(raw string) database.TagFilter {
	q := util.ParseSearchQuery(raw)
	f := database.TagFilter{Search: q.Joined()}
	if len(q.OGType) > 0 {
		f.OGType = q.OGType[0]
	}
	if len(q.TwitterCard) > 0 {
		f.TwitterCard = q.TwitterCard[0]
	}
	if database.ValidOrdering(q.Order) {
		f.Ordering = q.Order
	}
	return f
}

func (m *ListModel) reload() {
	tags, err := m.db.ListTags(m.ctx, filterFor(m.query))
	if err != nil {
		util.LogError("list seo tags", err)
		m.err = err
		return
	}
	total, err := m.db.CountTags(m.ctx)
	if err != nil {
		util.LogError("count seo tags", err)
		m.err = err
		return
	}
	m.err = nil
	m.tags = tags
	m.total = total
	m.cursor = util.Clamp(m.cursor, 0, max(0, len(tags)-1))
	m.scroll()
}

// selectPage moves the cursor to pageID when it is listed.
func (m *ListModel) selectPage(pageID string) {
	for i, t := range m.tags {
		if t.PageID == pageID {
			m.cursor = i
			m.scroll()
			return
		}
	}
}

func (m *ListModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+config.MaxVisibleTags {
		m.offset = m.cursor - config.MaxVisibleTags + 1
	}
}

func (m ListModel) selected() (models.SEOTag, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tags) {
		return models.SEOTag{}, false
	}
	return m.tags[m.cursor], true
}

func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.confirm {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}
	if m.filtering {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ListModel) updateFilter(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.query = strings.TrimSpace(m.filter.Value())
		m.cursor, m.offset = 0, 0
		m.reload()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue(m.query)
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m ListModel) updateConfirm(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirm = false
		tag, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.db.DeleteTag(m.ctx, tag.PageID); err != nil {
			util.LogError("delete seo tag", err)
			m.err = err
			return m, nil
		}
		util.Logger().Info("seo tag deleted", zap.String("page_id", tag.PageID))
		m.status = "Deleted " + tag.String()
		m.reload()
	case "n", "N", "esc":
		m.confirm = false
	}
	return m, nil
}

func (m ListModel) updateKeys(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.scroll()
		}
	case "down", "j":
		if m.cursor < len(m.tags)-1 {
			m.cursor++
			m.scroll()
		}
	case "enter":
		if tag, ok := m.selected(); ok {
			return m, func() tea.Msg { return editTagMsg{tag: tag} }
		}
	case "n":
		return m, func() tea.Msg { return newTagMsg{} }
	case "a":
		return m, func() tea.Msg { return editAdvancedMsg{} }
	case "d":
		if _, ok := m.selected(); ok {
			m.confirm = true
			m.status = ""
		}
	case "r":
		m.writeReport()
	case "/":
		m.filtering = true
		m.filter.SetValue(m.query)
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m *ListModel) writeReport() {
	tags, err := m.db.ListTags(m.ctx, database.TagFilter{})
	if err != nil {
		util.LogError("load tags for report", err)
		m.err = err
		return
	}
	now := m.now()
	path := m.reportPath(now)
	if err := report.WriteFile(path, report.Audit(tags), now); err != nil {
		util.LogError("write audit report", err)
		m.err = err
		return
	}
	util.Logger().Info("audit report written", zap.String("path", path), zap.Int("tags", len(tags)))
	m.err = nil
	m.status = "Report written: " + path
}

// heading counts the listed tags, and the stored total while a filter hides
// some of them.
func (m ListModel) heading() string {
	if len(m.tags) < m.total {
		return fmt.Sprintf("SEO Tags (%d of %d)", len(m.tags), m.total)
	}
	return fmt.Sprintf("SEO Tags (%d)", len(m.tags))
}

func (m ListModel) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(m.heading()))
	b.WriteString(CurrentTheme.Dim.Render("  " + config.AppName + " v" + versionLabel()))
	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View() + "\n")
	} else if m.query != "" {
		b.WriteString(CurrentTheme.Dim.Render("filter: "+m.query) + "\n")
	}
	b.WriteString("\n")

	compact := m.width < config.CompactModeThreshold
	titleRule := formassist.PageTitleRule()
	descRule := formassist.MetaDescriptionRule()

	if len(m.tags) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No SEO tags. Press n to add one.") + "\n")
	}
	end := min(len(m.tags), m.offset+config.MaxVisibleTags)
	for i := m.offset; i < end; i++ {
		t := m.tags[i]
		cursor := "  "
		idStyle := CurrentTheme.Label
		if i == m.cursor {
			cursor = "> "
			idStyle = CurrentTheme.Focused
		}
		line := cursor + idStyle.Render(pad(t.PageID, 18))
		if !compact {
			line += " " + pad(t.PageName, 24) + " " + pad(t.PagePath, 20)
		}
		line += "  title " + lengthBadge(titleRule, t.PageTitle, config.MaxPageTitleLength)
		line += "  desc " + lengthBadge(descRule, t.MetaDescription, config.MaxMetaDescriptionLength)
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.confirm:
		if tag, ok := m.selected(); ok {
			b.WriteString(CurrentTheme.Error.Render(fmt.Sprintf("Delete %s? y/n", tag.String())) + "\n")
		}
	case m.err != nil:
		b.WriteString(CurrentTheme.Error.Render("Error: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(CurrentTheme.Status.Render(m.status) + "\n")
	}
	b.WriteString(CurrentTheme.Dim.Render("enter edit • n new • d delete • a settings • r report • / filter • q quit"))
	return b.String()
}
