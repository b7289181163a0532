package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
	"docsearch/internal/service"
)

// SearchPort is the TUI-facing subset of the search service.
type SearchPort interface {
	Load(dir string) (domain.LoadStats, error)
	Query(raw string) ([]string, []domain.QueryResult, error)
	Results() ([]domain.QueryResult, error)
	Result(i int) (domain.QueryResult, error)
}

// Model is the Bubble Tea model for the interactive search shell.
type Model struct {
	service  SearchPort
	input    textinput.Model
	viewport viewport.Model
	status   string
	content  string
	ready    bool
}

// New creates a new shell model. banner is the text shown before the
// first command runs, typically the initial load summary.
func New(svc SearchPort, banner string) Model {
	ti := textinput.New()
	ti.Prompt = "Enter command> "
	ti.Placeholder = "query <word...>  |  help"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  svc,
		input:    ti,
		viewport: vp,
		content:  banner,
		status:   "Welcome! You may enter commands.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := outputBoxStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved - rh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.content)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			var cmd tea.Cmd
			m, cmd = m.dispatch(line)
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
			return m, cmd
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch parses one command line and executes it against the service.
func (m Model) dispatch(line string) (Model, tea.Cmd) {
	name, arg := splitCommand(line)
	switch strings.ToLower(name) {
	case "query":
		m.runQuery(arg)
	case "results":
		m.runResults()
	case "type":
		m.runType(arg)
	case "setpath":
		m.runSetPath(arg)
	case "help":
		m.content = helpText()
		m.status = "Commands"
	case "exit":
		return m, tea.Quit
	default:
		m.content = "Unknown command! Type help for a list of commands."
		m.status = "Error"
	}
	return m, nil
}

func (m *Model) runQuery(arg string) {
	if arg == "" {
		m.content = "Syntax: query <word1> (optional: <word2>...<wordN>)"
		m.status = "Error"
		return
	}
	terms, results, err := m.service.Query(arg)
	if err != nil {
		m.content = queryErrorMessage(err)
		m.status = "Error"
		return
	}
	var b strings.Builder
	b.WriteString("Query is: [" + strings.Join(terms, ", ") + "]\n\n")
	b.WriteString("Top results are:\n")
	b.WriteString(formatResults(results))
	m.content = b.String()
	m.status = fmt.Sprintf("%d result(s)", len(results))
}

func (m *Model) runResults() {
	results, err := m.service.Results()
	if err != nil {
		m.content = "Query search must be executed before using this command!"
		m.status = "Error"
		return
	}
	m.content = formatResults(results)
	m.status = fmt.Sprintf("%d result(s)", len(results))
}

func (m *Model) runType(arg string) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		m.content = "Syntax: type <result_index>"
		m.status = "Error"
		return
	}
	result, err := m.service.Result(index)
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			m.content = "Query search must be executed before using this command!"
		} else {
			m.content = "Index is out of bounds. " + err.Error()
		}
		m.status = "Error"
		return
	}
	// Plain file read for display; the index is not involved.
	data, err := os.ReadFile(result.Path)
	if err != nil {
		m.content = "Could not read document: " + err.Error()
		m.status = "Error"
		return
	}
	divider := strings.Repeat("-", 49)
	m.content = divider + "\n" +
		"Document: " + result.Path + "\n" +
		divider + "\n" +
		string(data) + "\n" +
		divider
	m.status = "Document " + strconv.Itoa(index)
}

func (m *Model) runSetPath(arg string) {
	if arg == "" {
		m.content = "Syntax: setpath <path>"
		m.status = "Error"
		return
	}
	stats, err := m.service.Load(arg)
	if err != nil {
		m.content = loadErrorMessage(arg, err)
		m.status = "Error"
		return
	}
	m.content = "Path set to " + arg + "\n" + LoadBanner(stats)
	m.status = "Corpus loaded"
}

// LoadBanner formats the post-load summary shown by the shell.
func LoadBanner(stats domain.LoadStats) string {
	return fmt.Sprintf("Dictionary size: %d\nNumber of loaded documents: %d",
		stats.VocabularySize, stats.Documents)
}

func formatResults(results []domain.QueryResult) string {
	var b strings.Builder
	for i, r := range results {
		line := fmt.Sprintf("[%d] (%.4f) %s", i, r.Similarity, r.Path)
		if i == 0 {
			line = topResultStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func queryErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNoCorpus):
		return "No corpus is loaded. Use: setpath <path>"
	case errors.Is(err, service.ErrEmptyQuery):
		return "Query words not found in vocabulary (maybe it contains only stopwords)."
	default:
		return "Error: " + err.Error()
	}
}

func loadErrorMessage(path string, err error) string {
	return fmt.Sprintf("Error occured while loading from %s: %v", path, err)
}

func helpText() string {
	return strings.Join([]string{
		"query <word1> [<word2>...]  Executes the search over the loaded corpus.",
		"results                     Displays the previously executed search results.",
		"type <result_index>         Displays the contents of a result document.",
		"setpath <path>              Loads documents recursively from a directory.",
		"help                        Shows this text.",
		"exit                        Quits the shell (also ctrl+c / ctrl+d).",
	}, "\n")
}

// splitCommand separates the command name from its argument string at
// the first whitespace run.
func splitCommand(line string) (name, arg string) {
	i := strings.IndexFunc(line, func(r rune) bool { return r == ' ' || r == '\t' })
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

// View renders the shell layout: header, output viewport, input, status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Document Search")
	output := outputBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + output + "\n" + input + "\n" + status
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	outputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	topResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
