package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/seodesk/internal/models"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateList SessionState = iota
	StateForm
	StateAdvanced
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	ctx     context.Context
	db      Database
	siteURL string
	state   SessionState
	list    ListModel
	form    FormModel
	adv     AdvancedModel
	width   int
	height  int
}

func NewMainModel(ctx context.Context, db Database, siteURL string) MainModel {
	return MainModel{
		ctx:     ctx,
		db:      db,
		siteURL: siteURL,
		state:   StateList,
		list:    NewListModel(ctx, db),
	}
}

func (m MainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list, _ = m.list.Update(msg)
		switch m.state {
		case StateForm:
			m.form, _ = m.form.Update(msg)
		case StateAdvanced:
			m.adv, _ = m.adv.Update(msg)
		}
		return m, nil
	case editTagMsg:
		return m.openForm(&msg.tag)
	case newTagMsg:
		return m.openForm(nil)
	case tagSavedMsg:
		m.state = StateList
		m.list.reload()
		m.list.selectPage(msg.pageID)
		m.list.status = "Saved " + msg.pageID
		if msg.created {
			m.list.status = "Created " + msg.pageID
		}
		return m, nil
	case editAdvancedMsg:
		m.adv = NewAdvancedModel(m.ctx, m.db)
		if m.width > 0 {
			m.adv, _ = m.adv.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		m.state = StateAdvanced
		return m, m.adv.Init()
	case advancedSavedMsg:
		m.state = StateList
		m.list.status = "Saved site settings"
		return m, nil
	case formClosedMsg:
		m.state = StateList
		return m, nil
	}

	switch m.state {
	case StateForm:
		m.form, cmd = m.form.Update(msg)
	case StateAdvanced:
		m.adv, cmd = m.adv.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m MainModel) openForm(tag *models.SEOTag) (tea.Model, tea.Cmd) {
	m.form = NewFormModel(m.ctx, m.db, m.siteURL, tag)
	if m.width > 0 {
		m.form, _ = m.form.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	m.state = StateForm
	return m, m.form.Init()
}

func (m MainModel) View() string {
	switch m.state {
	case StateForm:
		return CurrentTheme.Base.Render(m.form.View())
	case StateAdvanced:
		return CurrentTheme.Base.Render(m.adv.View())
	}
	return CurrentTheme.Base.Render(m.list.View())
}

// Run starts the terminal UI and blocks until it exits.
func Run(ctx context.Context, db Database, siteURL string) error {
	p := tea.NewProgram(NewMainModel(ctx, db, siteURL), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
