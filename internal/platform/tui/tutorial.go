package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tutorialPage is one page of the statistics walkthrough.
type tutorialPage struct {
	title string
	lines []string
}

// tutorialPages holds the walkthrough content shown from the menu. The
// material mirrors the course handout: what hypothesis testing is, how
// each test works, and how to read a p-value.
var tutorialPages = []tutorialPage{
	{
		title: "Hypothesis Testing",
		lines: []string{
			"A hypothesis test asks: could the pattern in my data plausibly be",
			"explained by chance alone?",
			"",
			"1. State the null hypothesis H0 (no effect, no association).",
			"2. Calculate a test statistic from your data.",
			"3. Find the p-value: the probability of a statistic at least this",
			"   extreme if H0 were true.",
			"4. Compare to the significance level α (usually 0.05).",
			"",
			"α = 0.05 means accepting a 5% risk of rejecting a true null",
			"hypothesis.",
		},
	},
	{
		title: "Chi-Square Tests",
		lines: []string{
			"Chi-square tests compare observed counts to expected counts in",
			"categorical data.",
			"",
			"Goodness of fit: does one categorical variable match an expected",
			"distribution? Example: do observed genotype frequencies match",
			"Mendelian ratios? df = categories − 1.",
			"",
			"Test of independence: are two categorical variables associated?",
			"Example: is APOE e4 status related to treatment response?",
			"df = (rows − 1) × (columns − 1).",
			"",
			"Both need expected counts that are not too small; with zero row",
			"or column totals the test cannot be computed.",
		},
	},
	{
		title: "T-Tests",
		lines: []string{
			"T-tests compare means of continuous measurements.",
			"",
			"One-sample: does the sample mean differ from a reference value μ?",
			"Example: do patients' cognitive scores differ from the published",
			"population norm?",
			"",
			"Paired: did a measurement change within the same subjects?",
			"Example: amyloid-beta levels before and after treatment. The test",
			"runs on the per-subject differences.",
			"",
			"Two-sample: do two independent groups differ? Example: control",
			"versus experiment group. Larger samples and bigger mean gaps both",
			"push the p-value down; try it with the sliders.",
		},
	},
	{
		title: "Reading the Results",
		lines: []string{
			"The p-value is NOT the probability that H0 is true. It is the",
			"probability of data at least this extreme, assuming H0.",
			"",
			"p < 0.05  → conventionally \"statistically significant\".",
			"p ≥ 0.05  → the data are compatible with chance; this is not",
			"            proof of no effect.",
			"",
			"The 95% confidence interval gives a range of plausible values for",
			"the quantity being estimated. If a one-sample CI excludes μ, the",
			"two-sided test is significant at α = 0.05; the two always agree.",
			"",
			"Statistical significance is not clinical significance: with a",
			"large enough sample, a tiny and unimportant effect can still",
			"produce a small p-value.",
		},
	},
}

// TutorialModel is the Bubble Tea model for the walkthrough pages.
type TutorialModel struct {
	page      int
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewTutorialModel creates a tutorial model.
func NewTutorialModel(width, height int) TutorialModel {
	return TutorialModel{width: width, height: height}
}

// Init initializes the tutorial model.
func (m TutorialModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tutorial.
func (m TutorialModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b":
			m.goingBack = true
			return m, tea.Quit
		case "right", "l", "n", " ", "enter":
			if m.page < len(tutorialPages)-1 {
				m.page++
			} else {
				m.goingBack = true
				return m, tea.Quit
			}
		case "left", "h", "p":
			if m.page > 0 {
				m.page--
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the current tutorial page.
func (m TutorialModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	page := tutorialPages[m.page]

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	bodyStyle := lipgloss.NewStyle().
		Padding(0, 2)
	footStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(page.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(strings.Join(page.lines, "\n")))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Page %d/%d", m.page+1, len(tutorialPages))
	controls := "Left/Right: Pages  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(footStyle.Render(progress+"  |  "+controls), m.width))

	return b.String()
}

// IsGoingBack returns true if the user wants to return to the menu.
func (m TutorialModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m TutorialModel) IsQuitting() bool {
	return m.quitting
}

// RunTutorial runs the tutorial screen.
// Returns true if the user wants to go back to the menu.
func RunTutorial(width, height int) (goBack bool, err error) {
	model := NewTutorialModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(TutorialModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
