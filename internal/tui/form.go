package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/formassist"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/util"
)

const fieldSchema = "schema"

type fieldSpec struct {
	name        string
	label       string
	section     string
	placeholder string
}

// formSpecs lists the inputs in admin fieldset order.
var formSpecs = []fieldSpec{
	{name: "page_id", label: "Page ID", section: "Page Information", placeholder: "home"},
	{name: "page_path", label: "Page path", section: "Page Information", placeholder: "/"},
	{name: "page_name", label: "Page name", section: "Page Information", placeholder: "Home"},
	{name: formassist.FieldPageTitle, label: "Page title", section: "Basic SEO"},
	{name: formassist.FieldMetaDescription, label: "Meta description", section: "Basic SEO"},
	{name: "meta_keywords", label: "Meta keywords", section: "Basic SEO", placeholder: "comma, separated"},
	{name: "canonical_url", label: "Canonical URL", section: "Basic SEO", placeholder: "https://"},
	{name: "robots_meta", label: "Robots meta", section: "Basic SEO", placeholder: models.DefaultRobotsMeta},
	{name: formassist.FieldOGTitle, label: "OG title", section: "Open Graph"},
	{name: formassist.FieldOGDescription, label: "OG description", section: "Open Graph"},
	{name: "og_type", label: "OG type", section: "Open Graph", placeholder: "website | article | product"},
	{name: "og_url", label: "OG URL", section: "Open Graph", placeholder: "https://"},
	{name: formassist.FieldOGImageURL, label: "OG image URL", section: "Open Graph", placeholder: "https://"},
	{name: "og_image_alt", label: "OG image alt", section: "Open Graph"},
	{name: "twitter_card", label: "Twitter card", section: "Twitter Card", placeholder: "summary | summary_large_image | app | player"},
	{name: formassist.FieldTwitterTitle, label: "Twitter title", section: "Twitter Card"},
	{name: formassist.FieldTwitterDescription, label: "Twitter description", section: "Twitter Card"},
	{name: formassist.FieldTwitterImageURL, label: "Twitter image URL", section: "Twitter Card", placeholder: "https://"},
	{name: fieldSchema, label: "Schema (JSON-LD)", section: "Structured Data", placeholder: `{"@context": "https://schema.org"}`},
}

type tagSavedMsg struct {
	pageID  string
	created bool
}

type formClosedMsg struct{}

// FormModel edits one SEO tag. It is the formassist host: inputs fire
// Changed on edits that alter their value and Blurred when focus leaves.
type FormModel struct {
	ctx     context.Context
	db      Database
	siteURL string
	fields  *fieldSet
	focus   int
	offset  int
	tagID   int64
	base    models.SEOTag
	errs    seo.ValidationErrors
	err     error
	width   int
}

// NewFormModel opens the form for tag, or an empty form when tag is nil.
func NewFormModel(ctx context.Context, db Database, siteURL string, tag *models.SEOTag) FormModel {
	m := FormModel{
		ctx:     ctx,
		db:      db,
		siteURL: siteURL,
		fields:  newFieldSet(formSpecs),
		width:   config.DefaultInputWidth,
	}
	if tag != nil {
		m.tagID = tag.ID
		m.base = *tag
		m.load(*tag)
	}
	formassist.Default().Initialize(m.fields)
	if len(m.fields.fields) > 0 {
		m.fields.fields[0].input.Focus()
	}
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Field exposes the form's inputs by name.
func (m FormModel) Field(name string) (formassist.Field, bool) {
	return m.fields.Field(name)
}

func (m FormModel) current() *formField {
	return m.fields.fields[m.focus]
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return formClosedMsg{} }
		case "ctrl+s":
			m.current().fire(formassist.Blurred)
			return m.save()
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	f := m.current()
	before := f.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.Value() != before {
		f.fire(formassist.Changed)
		delete(m.errs, f.name)
	}
	return m, cmd
}

func (m FormModel) moveFocus(delta int) (FormModel, tea.Cmd) {
	n := len(m.fields.fields)
	cur := m.current()
	cur.fire(formassist.Blurred)
	cur.input.Blur()

	m.focus = (m.focus + delta + n) % n
	if m.focus < m.offset {
		m.offset = m.focus
	}
	if m.focus >= m.offset+config.MaxVisibleFields {
		m.offset = m.focus - config.MaxVisibleFields + 1
	}
	m.offset = util.Clamp(m.offset, 0, max(0, n-config.MaxVisibleFields))
	return m, m.current().input.Focus()
}

func (m *FormModel) resize(width int) {
	m.width = width
	w := width - config.LabelWidth - 12
	if w < config.MinInputWidth {
		w = config.MinInputWidth
	}
	for _, f := range m.fields.fields {
		f.input.Width = w
	}
}

func (m *FormModel) load(tag models.SEOTag) {
	for _, f := range m.fields.fields {
		if f.name == fieldSchema {
			f.SetValue(string(tag.Schema))
			continue
		}
		f.SetValue(seo.FieldValue(tag, f.name))
	}
}

// tag builds the record from the inputs on top of the loaded record.
func (m FormModel) tag() models.SEOTag {
	tag := m.base
	for _, f := range m.fields.fields {
		if f.name == fieldSchema {
			tag.Schema = nil
			if raw := strings.TrimSpace(f.Value()); raw != "" {
				tag.Schema = json.RawMessage(raw)
			}
			continue
		}
		seo.SetFieldValue(&tag, f.name, strings.TrimSpace(f.Value()))
	}
	return tag
}

func (m FormModel) save() (FormModel, tea.Cmd) {
	m.err = nil
	tag := m.tag()
	err := seo.Prepare(&tag, m.siteURL)
	m.load(tag)

	var verrs seo.ValidationErrors
	if errors.As(err, &verrs) {
		m.errs = verrs
		return m, nil
	}

	created := m.tagID == 0
	if created {
		_, err = m.db.CreateTag(m.ctx, tag, config.DefaultTUIActor)
	} else {
		err = m.db.UpdateTag(m.ctx, m.tagID, tag, config.DefaultTUIActor)
	}
	if errors.Is(err, database.ErrDuplicatePageID) {
		m.errs = seo.ValidationErrors{"page_id": seo.DuplicatePageIDMessage}
		return m, nil
	}
	if err != nil {
		util.LogError("save seo tag", err)
		m.err = err
		return m, nil
	}
	util.Logger().Info("seo tag saved", zap.String("page_id", tag.PageID), zap.Bool("created", created))
	pageID := tag.PageID
	return m, func() tea.Msg { return tagSavedMsg{pageID: pageID, created: created} }
}

func (m FormModel) View() string {
	var b strings.Builder
	title := "New SEO tag"
	if m.tagID != 0 {
		title = "Edit SEO tag: " + m.base.String()
	}
	b.WriteString(CurrentTheme.Header.Render(title))
	b.WriteString("\n")

	end := min(len(m.fields.fields), m.offset+config.MaxVisibleFields)
	section := ""
	for i := m.offset; i < end; i++ {
		f := m.fields.fields[i]
		if f.section != section {
			section = f.section
			b.WriteString("\n" + CurrentTheme.Highlight.Render(section) + "\n")
		}
		b.WriteString(m.renderField(f, i == m.focus))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + CurrentTheme.Error.Render("Save failed: "+m.err.Error()) + "\n")
	}
	if len(m.errs) > 0 {
		b.WriteString("\n" + CurrentTheme.Error.Render(fmt.Sprintf("%d field(s) need attention", len(m.errs))) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("%d/%d  tab/shift+tab move • ctrl+s save • esc cancel", m.focus+1, len(m.fields.fields))))
	return b.String()
}

func (m FormModel) renderField(f *formField, focused bool) string {
	labelStyle := CurrentTheme.Label
	if focused {
		labelStyle = CurrentTheme.Focused
	}
	label := labelStyle.Width(config.LabelWidth).Render(truncate(f.label, config.LabelWidth-1))

	box := CurrentTheme.Input.
		BorderForeground(CurrentTheme.IndicatorColor(f.indicator)).
		Render(f.input.View())

	counter := ""
	if limit := seo.MaxLength(f.name); limit > 0 {
		counter = CurrentTheme.Dim.Render(fmt.Sprintf(" %d/%d", formassist.CharacterCount(f.Value()), limit))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, label, box, counter)
	if msg, ok := m.errs[f.name]; ok {
		row += "\n" + lipgloss.NewStyle().PaddingLeft(config.LabelWidth).Render(CurrentTheme.Error.Render(msg))
	}
	return row
}
