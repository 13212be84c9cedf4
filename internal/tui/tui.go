// Package tui provides a Bubble Tea terminal user interface for the library catalog.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/handiism/library-catalog/internal/catalog"
	"github.com/handiism/library-catalog/internal/config"
	"github.com/handiism/library-catalog/internal/model"
	"github.com/handiism/library-catalog/internal/storage"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StatePath State = iota
	StateMenu
	StatePrompt
	StateAdd
	StateResults
)

// Action is a catalog operation picked from the menu.
type Action int

const (
	ActionSearch Action = iota
	ActionBorrow
	ActionReturn
	ActionAdd
	ActionRemove
)

// Level indicates the severity/type of a log message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelSuccess
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   Level
}

type menuItem struct {
	key       string
	label     string
	librarian bool
}

var menuItems = []menuItem{
	{"1", "Search for books", false},
	{"2", "Borrow a book", false},
	{"3", "Return a book", false},
	{"4", "Add a book", true},
	{"5", "Remove a book", true},
	{"6", "Print catalog", true},
	{"0", "Exit", false},
}

// addFields are the prompts of the add form, in order.
var addFields = []string{"ISBN", "Title", "Author", "Genre"}

const maxLogs = 6

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	table     table.Model
	progress  progress.Model
	settings  *config.Settings
	logger    catalog.Logger
	logs      []LogEntry

	ctx     context.Context
	catalog *catalog.Catalog
	store   *storage.FileStore

	// File size after the last load or write
	fileSize int64

	// Menu state
	librarian bool
	action    Action

	// Add form
	addStep  int
	addDraft [4]string

	resultsTitle string

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, logger catalog.Logger) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "books.csv"
	ti.SetValue(settings.CatalogPath)
	ti.Focus()
	ti.CharLimit = 300
	ti.Width = 60

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return Model{
		state:     StatePath,
		textInput: ti,
		progress:  prog,
		settings:  settings,
		logger:    logger,
		logs:      make([]LogEntry, 0),
		ctx:       context.Background(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 30
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StatePath, StateMenu:
				return m, tea.Quit
			default:
				m.toMenu()
				return m, nil
			}

		case "enter":
			switch m.state {
			case StatePath:
				m.submitPath()
				return m, nil
			case StateMenu:
				return m.submitMenu()
			case StatePrompt:
				m.submitPrompt()
				return m, nil
			case StateAdd:
				m.submitAddField()
				return m, nil
			case StateResults:
				m.toMenu()
				return m, nil
			}

		case "q":
			if m.state == StateResults {
				m.toMenu()
				return m, nil
			}
		}

		if m.state == StateResults {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	if m.state != StateResults {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submitPath loads the catalog file named in the input. A missing file
// keeps the path prompt open so another path can be tried.
func (m *Model) submitPath() {
	path := strings.TrimSpace(m.textInput.Value())
	if path == "" {
		m.addLog("Enter the path of the catalog file", LevelWarning)
		return
	}

	store := storage.NewFileStore(path)
	cat := catalog.New(store, m.settings.ToCatalogOptions(m.logger)...)

	n, err := cat.Load(m.ctx)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			m.addLog(fmt.Sprintf("File %s not found, enter another path", path), LevelError)
		} else {
			m.addLog(fmt.Sprintf("Could not load %s: %v", path, err), LevelError)
		}
		m.textInput.SetValue("")
		return
	}

	m.store = store
	m.catalog = cat
	m.refreshFileSize()
	m.addLog(fmt.Sprintf("Loaded %s from %s", english.Plural(n, "book", ""), path), LevelSuccess)
	if skipped := store.Skipped(); skipped > 0 {
		m.addLog(fmt.Sprintf("Skipped %s", english.Plural(skipped, "malformed row", "")), LevelWarning)
	}
	m.toMenu()
}

// submitMenu dispatches a menu selection.
func (m Model) submitMenu() (tea.Model, tea.Cmd) {
	choice := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")

	if key := m.settings.LibrarianKey; key != "" && choice == key {
		if !m.librarian {
			m.librarian = true
			m.addLog("Librarian menu unlocked", LevelInfo)
		}
		return m, nil
	}

	switch choice {
	case "0":
		return m, tea.Quit
	case "1":
		m.toPrompt(ActionSearch)
		return m, nil
	case "2":
		m.toPrompt(ActionBorrow)
		return m, nil
	case "3":
		m.toPrompt(ActionReturn)
		return m, nil
	}

	if m.librarian {
		switch choice {
		case "4":
			m.state = StateAdd
			m.action = ActionAdd
			m.addStep = 0
			m.addDraft = [4]string{}
			m.textInput.Placeholder = addFields[0]
			return m, nil
		case "5":
			m.toPrompt(ActionRemove)
			return m, nil
		case "6":
			m.showBooks("Catalog", m.catalog.Books())
			return m, nil
		}
	}

	m.addLog(fmt.Sprintf("Invalid selection %q", choice), LevelWarning)
	return m, nil
}

// submitPrompt runs the pending search, borrow, return or remove.
func (m *Model) submitPrompt() {
	value := strings.TrimSpace(m.textInput.Value())

	switch m.action {
	case ActionSearch:
		results := m.catalog.Search(value)
		if len(results) == 0 {
			m.addLog(fmt.Sprintf("No books match %q", value), LevelWarning)
			m.toMenu()
			return
		}
		m.showBooks(fmt.Sprintf("%s matching %q", english.Plural(len(results), "book", ""), value), results)
		return

	case ActionBorrow:
		book, err := m.catalog.Borrow(m.ctx, value)
		if err != nil {
			m.reportError(value, book, err)
		} else {
			m.addLog(fmt.Sprintf("You have borrowed %q", book.Title), LevelSuccess)
		}

	case ActionReturn:
		book, err := m.catalog.Return(m.ctx, value)
		if err != nil {
			m.reportError(value, book, err)
		} else {
			m.addLog(fmt.Sprintf("%q has been returned", book.Title), LevelSuccess)
		}

	case ActionRemove:
		book, err := m.catalog.Remove(m.ctx, value)
		if err != nil {
			m.reportError(value, book, err)
		} else {
			m.addLog(fmt.Sprintf("%q has been removed", book.Title), LevelSuccess)
		}
	}

	m.refreshFileSize()
	m.toMenu()
}

// submitAddField stores one answer of the add form. Empty answers and
// unknown genres re-prompt the same field.
func (m *Model) submitAddField() {
	value := strings.TrimSpace(m.textInput.Value())
	field := addFields[m.addStep]

	if value == "" {
		m.addLog(fmt.Sprintf("%s is required", field), LevelWarning)
		return
	}
	if field == "Genre" {
		if _, err := model.LookupGenre(value); err != nil {
			m.addLog(fmt.Sprintf("Unknown genre %q, choose one of: %s", value, genreList()), LevelWarning)
			m.textInput.SetValue("")
			return
		}
	}

	m.addDraft[m.addStep] = value
	m.addStep++
	m.textInput.SetValue("")

	if m.addStep < len(addFields) {
		m.textInput.Placeholder = addFields[m.addStep]
		return
	}

	book, err := m.catalog.Add(m.ctx, m.addDraft[0], m.addDraft[1], m.addDraft[2], m.addDraft[3])
	if err != nil {
		m.addLog(fmt.Sprintf("Could not add book: %v", err), LevelError)
	} else {
		m.addLog(fmt.Sprintf("%q with ISBN %s has been added", book.Title, book.ISBN), LevelSuccess)
	}
	m.refreshFileSize()
	m.toMenu()
}

func (m *Model) reportError(isbn string, book *model.Book, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		m.addLog(fmt.Sprintf("No book found with ISBN %s", isbn), LevelWarning)
	case errors.Is(err, catalog.ErrNotAvailable):
		m.addLog(fmt.Sprintf("%q is not currently available", book.Title), LevelWarning)
	case errors.Is(err, catalog.ErrNotBorrowed):
		m.addLog(fmt.Sprintf("%q is not currently borrowed", book.Title), LevelWarning)
	default:
		m.addLog(fmt.Sprintf("Error: %v", err), LevelError)
	}
}

func (m *Model) toMenu() {
	m.state = StateMenu
	m.textInput.SetValue("")
	m.textInput.Placeholder = "choice"
	m.textInput.Focus()
}

func (m *Model) toPrompt(action Action) {
	m.state = StatePrompt
	m.action = action
	m.textInput.SetValue("")
	if action == ActionSearch {
		m.textInput.Placeholder = "title, author, ISBN or genre"
	} else {
		m.textInput.Placeholder = "999-9999999999"
	}
}

// showBooks switches to the results table.
func (m *Model) showBooks(title string, books []*model.Book) {
	columns := []table.Column{
		{Title: "ISBN", Width: 16},
		{Title: "Title", Width: 28},
		{Title: "Author", Width: 20},
		{Title: "Genre", Width: 18},
		{Title: "Status", Width: 10},
	}

	rows := make([]table.Row, len(books))
	for i, book := range books {
		rows[i] = table.Row{book.ISBN, book.Title, book.Author, book.GenreName(), book.AvailabilityLabel()}
	}

	height := len(rows) + 1
	if height > 15 {
		height = 15
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	m.resultsTitle = title
	m.state = StateResults
	m.textInput.Blur()
}

func (m *Model) refreshFileSize() {
	if m.store == nil {
		return
	}
	if size, err := m.store.Size(); err == nil {
		m.fileSize = size
	}
}

func (m *Model) addLog(message string, level Level) {
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📚 Library Catalog"))
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n\n")

	switch m.state {
	case StatePath:
		b.WriteString(m.viewPath())
	case StateMenu:
		b.WriteString(m.viewMenu())
	case StatePrompt:
		b.WriteString(m.viewPrompt())
	case StateAdd:
		b.WriteString(m.viewAdd())
	case StateResults:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewStatus() string {
	if m.catalog == nil {
		return dimStyle.Render("No catalog loaded")
	}

	stats := m.catalog.Stats()
	var percent float64
	if stats.Total > 0 {
		percent = float64(stats.Available) / float64(stats.Total)
	}

	var b strings.Builder
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s | %s | %d borrowed | %s",
		m.store.Path(),
		english.Plural(stats.Total, "book", ""),
		stats.Borrowed,
		humanize.Bytes(uint64(m.fileSize)),
	)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString(dimStyle.Render(" available"))
	return b.String()
}

func (m Model) viewPath() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter the catalog file path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewMenu() string {
	var lines []string
	for _, item := range menuItems {
		if item.librarian && !m.librarian {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s", keyStyle.Render(item.key), item.label))
	}

	title := "Menu"
	if m.librarian {
		title = "Librarian Menu"
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewPrompt() string {
	var label string
	switch m.action {
	case ActionSearch:
		label = "Search for:"
	case ActionBorrow:
		label = "ISBN of the book to borrow:"
	case ActionReturn:
		label = "ISBN of the book to return:"
	case ActionRemove:
		label = "ISBN of the book to remove:"
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(label))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewAdd() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Add a book"))
	b.WriteString("\n")
	for i := 0; i < m.addStep; i++ {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %s", addFields[i], m.addDraft[i])))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(addFields[m.addStep] + ":"))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	if addFields[m.addStep] == "Genre" {
		b.WriteString(dimStyle.Render(genreList()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder

	b.WriteString(successStyle.Render(m.resultsTitle))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		var prefix string
		switch log.Level {
		case LevelError:
			style = errorStyle
			prefix = "✗"
		case LevelWarning:
			style = warningStyle
			prefix = "!"
		case LevelSuccess:
			style = successStyle
			prefix = "✓"
		default:
			style = infoStyle
			prefix = "›"
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StatePath, StateMenu:
		return "enter: select • esc: quit"
	case StatePrompt, StateAdd:
		return "enter: submit • esc: back"
	case StateResults:
		return "↑/↓: scroll • enter/q/esc: back"
	}
	return ""
}

func genreList() string {
	names := make([]string, 0, 10)
	for _, g := range model.Genres() {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger catalog.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
