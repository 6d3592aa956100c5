package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/util"
)

const (
	fieldVerification = "google_site_verification"
	fieldHeaderScript = "header_script"
	fieldFooterScript = "footer_script"
)

var advancedSpecs = []fieldSpec{
	{name: fieldVerification, label: "Google verification", section: "Google", placeholder: "verification code"},
	{name: fieldHeaderScript, label: "Header script", section: "Scripts", placeholder: "<script>...</script>"},
	{name: fieldFooterScript, label: "Footer script", section: "Scripts", placeholder: "<script>...</script>"},
}

type editAdvancedMsg struct{}

type advancedSavedMsg struct{}

// AdvancedModel edits the site-wide settings row.
type AdvancedModel struct {
	ctx    context.Context
	db     Database
	fields *fieldSet
	focus  int
	base   models.AdvancedSEO
	err    error
}

func NewAdvancedModel(ctx context.Context, db Database) AdvancedModel {
	m := AdvancedModel{
		ctx:    ctx,
		db:     db,
		fields: newFieldSet(advancedSpecs),
	}
	adv, err := db.GetAdvanced(ctx)
	if err != nil {
		util.LogError("load site settings", err)
		m.err = err
	} else {
		m.base = adv
		m.set(fieldVerification, adv.GoogleSiteVerification)
		m.set(fieldHeaderScript, adv.HeaderScript)
		m.set(fieldFooterScript, adv.FooterScript)
	}
	m.fields.fields[0].input.Focus()
	return m
}

func (m AdvancedModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AdvancedModel) set(name, v string) {
	m.fields.byName[name].SetValue(v)
}

func (m AdvancedModel) value(name string) string {
	return strings.TrimSpace(m.fields.byName[name].Value())
}

func (m AdvancedModel) Update(msg tea.Msg) (AdvancedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := max(msg.Width-config.LabelWidth-12, config.MinInputWidth)
		for _, f := range m.fields.fields {
			f.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return formClosedMsg{} }
		case "ctrl+s":
			return m.save()
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}
	f := m.fields.fields[m.focus]
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m AdvancedModel) moveFocus(delta int) (AdvancedModel, tea.Cmd) {
	n := len(m.fields.fields)
	m.fields.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + n) % n
	return m, m.fields.fields[m.focus].input.Focus()
}

func (m AdvancedModel) save() (AdvancedModel, tea.Cmd) {
	adv := m.base
	adv.ID = models.AdvancedSEOSingletonID
	adv.GoogleSiteVerification = m.value(fieldVerification)
	adv.HeaderScript = m.value(fieldHeaderScript)
	adv.FooterScript = m.value(fieldFooterScript)
	if err := m.db.SaveAdvanced(m.ctx, adv, config.DefaultTUIActor); err != nil {
		util.LogError("save site settings", err)
		m.err = err
		return m, nil
	}
	util.Logger().Info("site settings saved")
	return m, func() tea.Msg { return advancedSavedMsg{} }
}

func (m AdvancedModel) View() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Advanced SEO settings"))
	b.WriteString("\n")
	section := ""
	for i, f := range m.fields.fields {
		if f.section != section {
			section = f.section
			b.WriteString("\n" + CurrentTheme.Highlight.Render(section) + "\n")
		}
		labelStyle := CurrentTheme.Label
		if i == m.focus {
			labelStyle = CurrentTheme.Focused
		}
		label := labelStyle.Width(config.LabelWidth).Render(truncate(f.label, config.LabelWidth-1))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, CurrentTheme.Input.Render(f.input.View())))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n" + CurrentTheme.Error.Render("Save failed: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("%d/%d  tab/shift+tab move • ctrl+s save • esc cancel", m.focus+1, len(m.fields.fields))))
	return b.String()
}
