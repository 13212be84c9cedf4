package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/library-catalog/internal/config"
)

const testCatalog = "ISBN,Title,Author,Genre Code,Available\n" +
	"111-1111111111,Dune,Herbert,2,True\n" +
	"222-2222222222,Emma,Austen,0,False\n" +
	"broken row\n"

func newTestModel(t *testing.T) (Model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))

	settings := config.DefaultSettings()
	settings.CatalogPath = path
	return NewModel(settings, nil), path
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func submit(m Model, text string) (Model, tea.Cmd) {
	return press(typeText(m, text), tea.KeyEnter)
}

func loaded(t *testing.T) (Model, string) {
	t.Helper()
	m, path := newTestModel(t)
	m, _ = press(m, tea.KeyEnter)
	require.Equal(t, StateMenu, m.state)
	return m, path
}

func lastLog(m Model) LogEntry {
	if len(m.logs) == 0 {
		return LogEntry{}
	}
	return m.logs[len(m.logs)-1]
}

func TestPath_LoadsCatalog(t *testing.T) {
	m, _ := loaded(t)

	assert.Equal(t, 2, m.catalog.Len())
	require.Len(t, m.logs, 2)
	assert.Equal(t, LevelSuccess, m.logs[0].Level)
	assert.Contains(t, m.logs[0].Message, "Loaded 2 books")
	assert.Equal(t, LogEntry{Message: "Skipped 1 malformed row", Level: LevelWarning}, m.logs[1])
	assert.Positive(t, m.fileSize)
}

func TestPath_MissingFileReprompts(t *testing.T) {
	m, path := newTestModel(t)
	m.textInput.SetValue(path + ".missing")

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, StatePath, m.state)
	assert.Equal(t, LevelError, lastLog(m).Level)
	assert.Contains(t, lastLog(m).Message, "not found")
	assert.Empty(t, m.textInput.Value())

	m, _ = submit(m, path)
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, 2, m.catalog.Len())
}

func TestMenu_BorrowAndReturn(t *testing.T) {
	m, path := loaded(t)

	m, _ = submit(m, "2")
	require.Equal(t, StatePrompt, m.state)
	m, _ = submit(m, "111-1111111111")
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, LogEntry{Message: `You have borrowed "Dune"`, Level: LevelSuccess}, lastLog(m))

	m, _ = submit(m, "2")
	m, _ = submit(m, "111-1111111111")
	assert.Equal(t, LogEntry{Message: `"Dune" is not currently available`, Level: LevelWarning}, lastLog(m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "111-1111111111,Dune,Herbert,2,False")

	m, _ = submit(m, "3")
	m, _ = submit(m, "111-1111111111")
	assert.Equal(t, LogEntry{Message: `"Dune" has been returned`, Level: LevelSuccess}, lastLog(m))

	m, _ = submit(m, "3")
	m, _ = submit(m, "111-1111111111")
	assert.Equal(t, LogEntry{Message: `"Dune" is not currently borrowed`, Level: LevelWarning}, lastLog(m))

	m, _ = submit(m, "2")
	m, _ = submit(m, "999")
	assert.Equal(t, LogEntry{Message: "No book found with ISBN 999", Level: LevelWarning}, lastLog(m))
}

func TestMenu_SearchShowsResults(t *testing.T) {
	m, _ := loaded(t)

	m, _ = submit(m, "1")
	m, _ = submit(m, "science")
	require.Equal(t, StateResults, m.state)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "Dune", m.table.Rows()[0][1])
	assert.Equal(t, "Science Fiction", m.table.Rows()[0][3])
	assert.Contains(t, m.View(), "1 book matching")

	m, _ = press(m, tea.KeyEsc)
	assert.Equal(t, StateMenu, m.state)

	m, _ = submit(m, "1")
	m, _ = submit(m, "nothing here")
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, LevelWarning, lastLog(m).Level)
}

func TestMenu_LibrarianOptionsHidden(t *testing.T) {
	m, _ := loaded(t)

	assert.NotContains(t, m.View(), "Add a book")

	m, _ = submit(m, "4")
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, LogEntry{Message: `Invalid selection "4"`, Level: LevelWarning}, lastLog(m))

	m, _ = submit(m, "2130")
	assert.True(t, m.librarian)
	assert.Contains(t, m.View(), "Add a book")
	assert.Contains(t, m.View(), "Librarian Menu")
}

func TestMenu_AddRepromptsForGenre(t *testing.T) {
	m, path := loaded(t)
	m, _ = submit(m, "2130")

	m, _ = submit(m, "4")
	require.Equal(t, StateAdd, m.state)

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, LogEntry{Message: "ISBN is required", Level: LevelWarning}, lastLog(m))
	assert.Equal(t, 0, m.addStep)

	m, _ = submit(m, "333-3333333333")
	m, _ = submit(m, "The Hobbit")
	m, _ = submit(m, "Tolkien")
	require.Equal(t, 3, m.addStep)

	m, _ = submit(m, "Cookbooks")
	assert.Equal(t, StateAdd, m.state)
	assert.Contains(t, lastLog(m).Message, `Unknown genre "Cookbooks"`)

	m, _ = submit(m, "fantasy")
	assert.Equal(t, StateMenu, m.state)
	assert.Equal(t, LogEntry{Message: `"The Hobbit" with ISBN 333-3333333333 has been added`, Level: LevelSuccess}, lastLog(m))
	assert.Equal(t, 3, m.catalog.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "333-3333333333,The Hobbit,Tolkien,7,True\n"))
}

func TestMenu_RemoveAndPrint(t *testing.T) {
	m, path := loaded(t)
	m, _ = submit(m, "2130")

	m, _ = submit(m, "5")
	m, _ = submit(m, "222-2222222222")
	assert.Equal(t, LogEntry{Message: `"Emma" has been removed`, Level: LevelSuccess}, lastLog(m))

	m, _ = submit(m, "6")
	require.Equal(t, StateResults, m.state)
	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "111-1111111111", m.table.Rows()[0][0])

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, StateMenu, m.state)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ISBN,Title,Author,Genre Code,Available\n111-1111111111,Dune,Herbert,2,True\n", string(data))
}

func TestMenu_Exit(t *testing.T) {
	m, _ := loaded(t)

	_, cmd := submit(m, "0")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEsc_BackToMenu(t *testing.T) {
	m, _ := loaded(t)

	m, _ = submit(m, "2")
	require.Equal(t, StatePrompt, m.state)
	m, cmd := press(m, tea.KeyEsc)
	assert.Equal(t, StateMenu, m.state)
	assert.Nil(t, cmd)
}

func TestLogs_KeepsLatest(t *testing.T) {
	m, _ := loaded(t)

	for i := 0; i < maxLogs+3; i++ {
		m, _ = submit(m, "9")
	}
	assert.Len(t, m.logs, maxLogs)
}
