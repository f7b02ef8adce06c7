package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brandradar/internal/domain"
)

// CounterPort is the TUI-facing subset of the analysis service.
type CounterPort interface {
	CountTerms(terms []string) (domain.ConceptFrequencies, error)
}

// Model is the Bubble Tea model for the radar viewer.
type Model struct {
	service  CounterPort
	input    textinput.Model
	viewport viewport.Model
	speakers []domain.SpeakerInfo
	rows     []domain.RadarRow
	adhoc    *domain.ConceptCount
	status   string
	cursor   int
	ready    bool
}

// New creates a viewer over precomputed radar rows.
func New(service CounterPort, speakers []domain.SpeakerInfo, rows []domain.RadarRow) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Terms to count, comma separated"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		speakers: speakers,
		rows:     rows,
		status:   fmt.Sprintf("%d speakers, %d dimensions. Up/down to select, Enter to count terms.", len(speakers), len(rows)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + legend, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			terms := splitTerms(m.input.Value())
			if len(terms) > 0 {
				freq, err := m.service.CountTerms(terms)
				switch {
				case err != nil:
					m.status = "Error: " + err.Error()
					m.adhoc = nil
				case len(freq.Concepts) == 0:
					m.adhoc = nil
				default:
					c := freq.Concepts[0]
					m.adhoc = &c
					m.status = fmt.Sprintf("Counted %q", c.Name)
				}
				m.viewport.SetContent(m.renderBody())
				return m, nil
			}
		case "down":
			if len(m.rows) > 0 {
				m.cursor = (m.cursor + 1) % len(m.rows)
				m.viewport.SetContent(m.renderBody())
				return m, nil
			}
		case "up":
			if len(m.rows) > 0 {
				m.cursor = (m.cursor - 1 + len(m.rows)) % len(m.rows)
				m.viewport.SetContent(m.renderBody())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout: header, speaker legend, radar body, input, status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Brand Radar")
	legend := legendStyle.Render(m.legend())
	body := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + legend + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) legend() string {
	parts := make([]string, len(m.speakers))
	for i, s := range m.speakers {
		parts[i] = fmt.Sprintf("%s=%s (%d words)", s.Key, s.Name, s.TotalWords)
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderBody() string {
	var b strings.Builder
	if len(m.rows) == 0 {
		b.WriteString("No dimensions defined.\n")
	}
	scale := maxValue(m.rows)
	for i, r := range m.rows {
		title := r.Subject
		if i == m.cursor {
			title = selectedStyle.Render("> " + title)
		} else {
			title = "  " + title
		}
		b.WriteString(title + "\n")
		for _, s := range m.speakers {
			v := r.Values[s.Key]
			fmt.Fprintf(&b, "    %-3s %s %d\n", s.Key, bar(v, scale, barWidth), v)
		}
	}
	if m.adhoc != nil {
		b.WriteString("\n" + selectedStyle.Render("Terms: "+m.adhoc.Name) + "\n")
		for _, s := range m.speakers {
			fmt.Fprintf(&b, "    %-3s %d\n", s.Key, m.adhoc.Counts[s.Key])
		}
	}
	return b.String()
}

const barWidth = 30

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	legendStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// bar renders v as a block bar scaled so that scale fills width.
func bar(v, scale, width int) string {
	if scale <= 0 || v <= 0 {
		return strings.Repeat(" ", width)
	}
	n := v * width / scale
	if n == 0 {
		n = 1
	}
	return barStyle.Render(strings.Repeat("█", n)) + strings.Repeat(" ", width-n)
}

func maxValue(rows []domain.RadarRow) int {
	top := 0
	for _, r := range rows {
		for _, v := range r.Values {
			top = max(top, v)
		}
	}
	return top
}

func splitTerms(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
