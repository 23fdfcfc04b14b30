// Package tui is the terminal front end: a bubbletea program that walks
// the player through club setup and then the weekly planning loop.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdlinklater/touchline/internal/archive"
	"github.com/jdlinklater/touchline/internal/config"
	"github.com/jdlinklater/touchline/internal/engine"
	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/facility"
	"github.com/jdlinklater/touchline/internal/sim/gen"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/sim/squad"
	"github.com/jdlinklater/touchline/internal/sim/tasks"
)

const autosaveSlot = "autosave"

type sessionState int

const (
	stateMenu sessionState = iota
	stateSetupName
	stateSetupRegion
	stateSetupColors
	stateCustomize
	statePlaying
	stateAdvancing
	stateNotice
	stateError
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	game      models.GameState
	hasGame   bool
	textInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	notes     []engine.Notification
	err       error
	gameLog   string
	width     int
	height    int
	setup     engine.NewGameOptions
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#1F5F2F")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true).
			Underline(true)

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5FD75F")).
			Padding(1, 2)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "new, load or quit"
	ti.Focus()
	ti.CharLimit = 96
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		state:     stateMenu,
		engine:    eng,
		textInput: ti,
		spinner:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type gameStartedMsg struct {
	game models.GameState
}

type gameLoadedMsg struct {
	game models.GameState
	err  error
}

type weekAdvancedMsg struct {
	game  models.GameState
	notes []engine.Notification
	err   error
}

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.state == stateError || m.state == stateMenu {
				return m, tea.Quit
			}
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = logWidth(msg.Width)
		m.viewport.Height = msg.Height - 6
		if m.state == statePlaying {
			m.viewport.SetContent(m.gameLog)
		}

	case spinner.TickMsg:
		if m.state == stateAdvancing {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case gameStartedMsg:
		m.game = msg.game
		m.hasGame = true
		m.state = stateCustomize
		m.textInput.Placeholder = "rename <n> <name>, quality <n> <1-20>, begin"
		m.textInput.Reset()
		return m, nil

	case gameLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.game = msg.game
		m.hasGame = true
		m.enterPlaying()
		m.appendLog(gameStyle.Render(fmt.Sprintf("Loaded %s, season %d week %d.",
			clubName(m.game), m.game.CurrentSeason, m.game.CurrentWeek)))
		return m, nil

	case weekAdvancedMsg:
		if msg.err != nil {
			m.appendLog(helpStyle.Render(msg.err.Error()))
			m.state = statePlaying
			return m, nil
		}
		m.game = msg.game
		m.notes = msg.notes
		if err := m.game.Save(autosaveSlot); err != nil {
			m.appendLog(helpStyle.Render("autosave failed: " + err.Error()))
		}
		m.appendLog(gameStyle.Bold(true).Render(fmt.Sprintf("--- Season %d, week %d ---",
			m.game.CurrentSeason, m.game.CurrentWeek)))
		if len(m.notes) > 0 {
			m.state = stateNotice
		} else {
			m.state = statePlaying
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	switch m.state {
	case stateMenu, stateSetupName, stateSetupRegion, stateSetupColors, stateCustomize, statePlaying:
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())

	switch m.state {
	case stateMenu:
		switch strings.ToLower(input) {
		case "new", "n":
			m.state = stateSetupName
			m.textInput.Placeholder = "Your club's name"
			m.textInput.Reset()
		case "load", "l":
			m.textInput.Reset()
			return m, loadGame()
		case "quit", "q":
			return m, tea.Quit
		}
		return m, nil

	case stateSetupName:
		if input == "" {
			return m, nil
		}
		m.setup.ClubName = input
		m.state = stateSetupRegion
		m.textInput.Placeholder = "Region (blank for anywhere): " + strings.Join(gen.Regions, ", ")
		m.textInput.Reset()
		return m, nil

	case stateSetupRegion:
		m.setup.Region = matchRegion(input)
		m.state = stateSetupColors
		m.textInput.Placeholder = "Kit colors, e.g. red/white"
		m.textInput.Reset()
		return m, nil

	case stateSetupColors:
		primary, secondary, ok := strings.Cut(input, "/")
		if !ok {
			return m, nil
		}
		m.setup.PrimaryColor = strings.TrimSpace(primary)
		m.setup.SecondaryColor = strings.TrimSpace(secondary)
		m.textInput.Reset()
		game, err := m.engine.NewGame(m.setup)
		if err != nil {
			m.textInput.Placeholder = err.Error() + " (try again, e.g. red/white)"
			return m, nil
		}
		return m, func() tea.Msg { return gameStartedMsg{game} }

	case stateCustomize:
		m.textInput.Reset()
		return m.handleCustomize(input)

	case statePlaying:
		if input == "" {
			return m, nil
		}
		m.textInput.Reset()
		return m.handleCommand(input)

	case stateNotice:
		if len(m.notes) > 0 {
			m.notes = m.notes[1:]
		}
		if len(m.notes) == 0 {
			m.state = statePlaying
		}
		return m, nil

	case stateError:
		return m, tea.Quit
	}

	return m, nil
}

// handleCustomize edits AI clubs before the first season kicks off.
func (m model) handleCustomize(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return m, nil
	}

	switch strings.ToLower(fields[0]) {
	case "begin", "done", "start":
		m.game = m.engine.BeginSeason(m.game)
		m.enterPlaying()
		m.appendLog(gameStyle.Render(fmt.Sprintf(
			"%s are in. Pre-season runs to week %d; first fixtures after that.",
			clubName(m.game), preSeasonEnd(m.game))))
		if err := m.game.Save(autosaveSlot); err != nil {
			m.appendLog(helpStyle.Render("autosave failed: " + err.Error()))
		}
		return m, nil

	case "rename":
		if len(fields) < 3 {
			return m, nil
		}
		if club, ok := m.opponentByIndex(fields[1]); ok {
			m.game = m.engine.CustomizeOpponent(m.game, club.ID, strings.Join(fields[2:], " "), 0)
		}
		return m, nil

	case "quality":
		if len(fields) != 3 {
			return m, nil
		}
		quality, err := strconv.Atoi(fields[2])
		if err != nil {
			return m, nil
		}
		if club, ok := m.opponentByIndex(fields[1]); ok {
			m.game = m.engine.CustomizeOpponent(m.game, club.ID, "", quality)
		}
		return m, nil
	}

	return m, nil
}

func (m model) handleCommand(input string) (tea.Model, tea.Cmd) {
	m.appendLog(userStyle.Width(logWidth(m.width)).Render("> " + input))

	fields := strings.Fields(input)
	switch strings.ToLower(fields[0]) {
	case "/quit", "quit":
		return m, tea.Quit

	case "advance", "a", "next":
		m.state = stateAdvancing
		return m, tea.Batch(m.spinner.Tick, m.advanceWeek())

	case "task", "t":
		if len(fields) != 2 {
			m.appendLog(helpStyle.Render("usage: task <number>"))
			return m, nil
		}
		return m.commitTask(fields[1])

	case "table":
		m.appendLog(m.renderTable())
		return m, nil

	case "fixtures", "fix":
		m.appendLog(m.renderFixtures())
		return m, nil

	case "squad":
		m.appendLog(m.renderSquad())
		return m, nil

	case "ground", "facilities":
		m.appendLog(m.renderGround())
		return m, nil

	case "upgrade":
		if len(fields) < 2 {
			m.appendLog(helpStyle.Render("usage: upgrade <pitch|rooms|toilets|bar|stand|turnstiles>"))
			return m, nil
		}
		return m.upgradeFacility(strings.Join(fields[1:], " "))

	case "committee", "board":
		m.appendLog(m.renderCommittee())
		return m, nil

	case "season":
		if len(fields) != 2 {
			m.appendLog(m.renderSeasonList())
			return m, nil
		}
		m.appendLog(m.renderPastSeason(fields[1]))
		return m, nil

	case "money", "finances":
		m.appendLog(m.renderFinances())
		return m, nil

	case "history":
		m.appendLog(m.renderHistory())
		return m, nil

	case "save":
		if err := m.game.Save(autosaveSlot); err != nil {
			m.appendLog(helpStyle.Render("save failed: " + err.Error()))
		} else {
			m.appendLog(helpStyle.Render("Saved."))
		}
		return m, nil

	default:
		if _, err := strconv.Atoi(fields[0]); err == nil {
			return m.commitTask(fields[0])
		}
		m.appendLog(helpStyle.Render("Commands: task <n>, advance, table, fixtures, squad, ground, upgrade <f>, committee, money, history, season <n>, save, quit"))
		return m, nil
	}
}

func (m model) commitTask(arg string) (tea.Model, tea.Cmd) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 || idx > len(m.game.WeeklyTasks) {
		m.appendLog(helpStyle.Render("no task with that number this week"))
		return m, nil
	}
	task := m.game.WeeklyTasks[idx-1]
	next, err := m.engine.CompleteTask(m.game, task.ID)
	if err != nil {
		m.appendLog(helpStyle.Render(err.Error()))
		return m, nil
	}
	m.game = next
	m.appendLog(gameStyle.Render(fmt.Sprintf("Committed to: %s. %d hours left this week.",
		task.Description, m.game.AvailableHours)))
	return m, nil
}

func (m model) upgradeFacility(arg string) (tea.Model, tea.Cmd) {
	ftype, ok := parseFacility(arg)
	if !ok {
		m.appendLog(helpStyle.Render("no such facility; try pitch, rooms, toilets, bar, stand or turnstiles"))
		return m, nil
	}
	next, note, err := m.engine.UpgradeFacility(m.game, ftype)
	if err != nil {
		m.appendLog(helpStyle.Render(err.Error()))
		return m, nil
	}
	m.game = next
	m.appendLog(gameStyle.Render(note.Title + ". " + note.Body))
	return m, nil
}

// parseFacility maps loose player input onto a facility type.
func parseFacility(arg string) (models.FacilityType, bool) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "pitch":
		return models.FacilityPitch, true
	case "rooms", "changing", "changing rooms":
		return models.FacilityChangingRooms, true
	case "toilets":
		return models.FacilityToilets, true
	case "bar", "snack", "snack bar":
		return models.FacilitySnackBar, true
	case "stand", "covered stand":
		return models.FacilityCoveredStand, true
	case "turnstiles", "gates":
		return models.FacilityTurnstiles, true
	}
	return "", false
}

func (m model) advanceWeek() tea.Cmd {
	game := m.game
	eng := m.engine
	return func() tea.Msg {
		next, notes, err := eng.AdvanceWeek(game)
		return weekAdvancedMsg{next, notes, err}
	}
}

func loadGame() tea.Cmd {
	return func() tea.Msg {
		game, err := models.LoadGame(autosaveSlot)
		if err != nil {
			return gameLoadedMsg{err: err}
		}
		return gameLoadedMsg{game: *game}
	}
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateMenu:
		s = fmt.Sprintf(
			"TOUCHLINE\nRun a non-league football club from the clubhouse bar.\n\n%s\n\n%s",
			"new game, load game, or quit:",
			m.textInput.View(),
		)

	case stateSetupName, stateSetupRegion, stateSetupColors:
		s = fmt.Sprintf("Founding the club.\n\n%s", m.textInput.View())

	case stateCustomize:
		s = m.renderCustomize()

	case stateAdvancing:
		s = fmt.Sprintf("\n  %s Playing out the week...\n", m.spinner.View())

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderSidebar(),
		)
		help := helpStyle.Render("task <n> commits hours, advance plays the week. table, fixtures, squad, ground, committee, money, history, save, quit.")
		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateNotice:
		s = m.renderNotice()

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Enter or Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderCustomize() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("YOUR LEAGUE") + "\n\n")
	i := 0
	for _, c := range m.game.Clubs {
		if c.PlayerControlled {
			b.WriteString(fmt.Sprintf("    %s (%s) of %s\n", c.Name, c.Nickname, c.Location))
			continue
		}
		i++
		b.WriteString(fmt.Sprintf("%2d. %s (%s) of %s, quality %d\n",
			i, c.Name, c.Nickname, c.Location, c.OverallTeamQuality))
	}
	b.WriteString("\n" + helpStyle.Render("rename <n> <name> or quality <n> <1-20> to adjust a rival. begin when ready."))
	b.WriteString("\n\n" + m.textInput.View())
	return b.String()
}

func (m model) renderNotice() string {
	if len(m.notes) == 0 {
		return ""
	}
	n := m.notes[0]
	content := titleStyle.Render(strings.ToUpper(n.Title)) + "\n\n" +
		gameStyle.Width(60).Render(n.Body)
	footer := helpStyle.Render(fmt.Sprintf("Enter to continue (%d more)", len(m.notes)-1))
	return noticeStyle.Render(content) + "\n" + footer
}

func (m model) renderSidebar() string {
	club := m.game.PlayerClub()
	if club == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CLUB") + "\n")
	b.WriteString(fmt.Sprintf("%s\nSeason %d, week %d\n", club.Name, m.game.CurrentSeason, m.game.CurrentWeek))
	if m.game.CurrentWeek <= preSeasonEnd(m.game) {
		b.WriteString("Pre-season\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("LEAGUE") + "\n")
	b.WriteString(fmt.Sprintf("P%d W%d D%d L%d, %d pts\n\n",
		club.LeagueStats.Played, club.LeagueStats.Won, club.LeagueStats.Drawn,
		club.LeagueStats.Lost, club.LeagueStats.Points))

	b.WriteString(titleStyle.Render("BOOKS") + "\n")
	b.WriteString(fmt.Sprintf("Balance £%d\nMorale %d\n\n", m.game.Ledger.Balance, squad.AverageMorale(m.game.Squad)))

	b.WriteString(titleStyle.Render("THIS WEEK") + "\n")
	b.WriteString(fmt.Sprintf("%d hours left\n", m.game.AvailableHours))
	for i, t := range m.game.WeeklyTasks {
		mark := " "
		if t.Completed {
			mark = "x"
		} else if t.AssignedHours > 0 {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("[%s] %d. %s (%dh)\n", mark, i+1, t.Description, tasks.EffectiveHours(t, club.Committee)))
	}

	stateWidth := m.width - logWidth(m.width) - 4
	if stateWidth < 20 {
		stateWidth = 20
	}
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

func (m model) renderTable() string {
	lg := m.game.HomeLeague()
	if lg == nil {
		return "No league."
	}
	standings := m.engine.Table(m.game, lg.ID)

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Club", Width: 26},
		{Title: "P", Width: 3},
		{Title: "W", Width: 3},
		{Title: "D", Width: 3},
		{Title: "L", Width: 3},
		{Title: "GD", Width: 4},
		{Title: "Pts", Width: 4},
	}
	rows := make([]table.Row, 0, len(standings))
	for i, c := range standings {
		name := c.Name
		if c.PlayerControlled {
			name = "* " + name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1), name,
			strconv.Itoa(c.LeagueStats.Played),
			strconv.Itoa(c.LeagueStats.Won),
			strconv.Itoa(c.LeagueStats.Drawn),
			strconv.Itoa(c.LeagueStats.Lost),
			strconv.Itoa(c.LeagueStats.GoalDifference),
			strconv.Itoa(c.LeagueStats.Points),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	return titleStyle.Render(lg.Name) + "\n" + t.View()
}

func (m model) renderFixtures() string {
	lg := m.game.HomeLeague()
	if lg == nil {
		return "No league."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("FIXTURES") + "\n")
	shown := 0
	for _, fw := range m.engine.FixturesFor(m.game, lg.ID) {
		if fw.Week < m.game.CurrentWeek || shown >= 4 {
			continue
		}
		shown++
		b.WriteString(fmt.Sprintf("Week %d\n", fw.Week))
		for _, match := range fw.Matches {
			if match.Result == "BYE" {
				b.WriteString(fmt.Sprintf("  %s have a bye\n", match.HomeName))
				continue
			}
			line := fmt.Sprintf("  %s v %s", match.HomeName, match.AwayName)
			if match.Played {
				line += "  " + match.Result
			}
			b.WriteString(line + "\n")
		}
	}
	if shown == 0 {
		b.WriteString("Season's done.\n")
	}
	return b.String()
}

func (m model) renderSquad() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SQUAD") + "\n")
	for _, p := range m.game.Squad {
		status := ""
		if p.Status.Suspended {
			status = " [suspended]"
		} else if p.Status.Injury != models.InjuryFit {
			status = fmt.Sprintf(" [%s, %dw]", strings.ToLower(string(p.Status.Injury)), p.Status.InjuryWeeks)
		}
		b.WriteString(fmt.Sprintf("%-3s %-24s morale %3d  fit %3d  apps %2d  goals %2d%s\n",
			p.Position, p.Name, p.Status.Morale, p.Status.Fitness,
			p.SeasonStats.Appearances, p.SeasonStats.Goals, status))
	}
	return b.String()
}

func (m model) renderFinances() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("FINANCES") + "\n")
	b.WriteString(fmt.Sprintf("Balance: £%d\n\n", m.game.Ledger.Balance))

	txs := m.game.Ledger.Transactions
	start := 0
	if len(txs) > 10 {
		start = len(txs) - 10
	}
	for _, tx := range txs[start:] {
		b.WriteString(fmt.Sprintf("S%d W%-2d  %+5d  %s\n", tx.Season, tx.Week, tx.Amount, tx.Description))
	}
	return b.String()
}

func (m model) renderHistory() string {
	if len(m.game.History) == 0 {
		return "No finished seasons yet."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("CLUB HISTORY") + "\n")
	for _, s := range m.game.History {
		b.WriteString(fmt.Sprintf("Season %d: %s, position %d, %d pts (%s)\n",
			s.Season, s.LeagueName, s.Position, s.Points, s.Classification))
	}
	return b.String()
}

func (m model) renderGround() string {
	club := m.game.PlayerClub()
	if club == nil {
		return "No club."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("THE GROUND") + "\n")
	for _, ftype := range models.FacilityTypes {
		f, ok := club.Facilities[ftype]
		if !ok {
			continue
		}
		if f.Level == 0 {
			b.WriteString(fmt.Sprintf("%-14s not built, £%d to build\n", ftype, f.UpgradeCost))
			continue
		}
		line := fmt.Sprintf("%-14s L%d (%s)  %s, condition %d%%", ftype, f.Level, f.Grade, f.Status, f.Condition)
		if !f.Usable {
			line += "  UNUSABLE"
		}
		if f.Level < facility.MaxLevel {
			line += fmt.Sprintf("  next £%d", f.UpgradeCost)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(fmt.Sprintf("\nCapacity %d, weekly upkeep £%d\n",
		facility.Capacity(club.Facilities), facility.WeeklyMaintenance(club.Facilities)))
	b.WriteString(helpStyle.Render("upgrade <facility> puts an improvement to the committee"))
	return b.String()
}

func (m model) renderCommittee() string {
	club := m.game.PlayerClub()
	if club == nil {
		return "No club."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("COMMITTEE") + "\n")
	for _, member := range club.Committee {
		b.WriteString(fmt.Sprintf("%-22s %-21s age %d\n", member.Name, member.Role, member.Age))
		b.WriteString(fmt.Sprintf("    admin %d, finance %d, grounds %d, community %d, work ethic %d\n",
			member.Skills.Administration, member.Skills.FinancialAcumen,
			member.Skills.GroundsKeeping, member.Skills.CommunityRelations,
			member.Skills.WorkEthic))
		b.WriteString(fmt.Sprintf("    loyalty %d, enthusiasm %d, satisfaction %d\n",
			member.Personality.LoyaltyToYou, member.Personality.Enthusiasm,
			member.Personality.Satisfaction))
	}
	if len(club.Committee) < len(models.CommitteeRoles) {
		b.WriteString(fmt.Sprintf("\n%d of %d roles filled.\n", len(club.Committee), len(models.CommitteeRoles)))
	}
	return b.String()
}

func (m model) renderSeasonList() string {
	seasons, err := m.engine.PastSeasons()
	if err != nil {
		return helpStyle.Render("archive lookup failed: " + err.Error())
	}
	if len(seasons) == 0 {
		return "Nothing in the archive yet."
	}
	parts := make([]string, 0, len(seasons))
	for _, s := range seasons {
		parts = append(parts, strconv.Itoa(s))
	}
	return fmt.Sprintf("On record: seasons %s. season <number> shows the final table.",
		strings.Join(parts, ", "))
}

func (m model) renderPastSeason(arg string) string {
	season, err := strconv.Atoi(arg)
	if err != nil || season < 1 {
		return helpStyle.Render("usage: season <number>")
	}
	rows, err := m.engine.PastSeason(season)
	if err != nil {
		return helpStyle.Render("archive lookup failed: " + err.Error())
	}
	if len(rows) == 0 {
		return fmt.Sprintf("Nothing on record for season %d.", season)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("SEASON %d, %s", season, rows[0].LeagueName)) + "\n")
	for _, r := range rows {
		name := r.ClubName
		if r.ClubID == m.game.PlayerClubID {
			name = "* " + name
		}
		b.WriteString(fmt.Sprintf("%2d. %-26s P%-2d W%-2d D%-2d L%-2d  %3d pts  %s\n",
			r.Position, name, r.Played, r.Won, r.Drawn, r.Lost, r.Points, r.Classification))
	}
	return b.String()
}

func (m *model) enterPlaying() {
	m.state = statePlaying
	m.textInput.Placeholder = "What needs doing this week?"
	m.textInput.Reset()
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(logWidth(m.width), m.height-6)
	}
	m.viewport.SetContent(m.gameLog)
}

func (m *model) appendLog(s string) {
	m.gameLog += s + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func logWidth(total int) int {
	w := int(float64(total) * 0.72)
	if w < 40 {
		w = 40
	}
	return w
}

func clubName(g models.GameState) string {
	if c := g.PlayerClub(); c != nil {
		return c.Name
	}
	return "the club"
}

func preSeasonEnd(g models.GameState) int {
	lg := g.HomeLeague()
	if lg == nil || len(lg.Fixtures) == 0 {
		return 0
	}
	return lg.Fixtures[0].Week - 1
}

func matchRegion(input string) string {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return ""
	}
	for _, r := range gen.Regions {
		if strings.ToLower(r) == input {
			return r
		}
	}
	return ""
}

// opponentByIndex maps the 1-based list position shown on the customize
// screen back to the AI club.
func (m model) opponentByIndex(arg string) (models.Club, bool) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return models.Club{}, false
	}
	i := 0
	for _, c := range m.game.Clubs {
		if c.PlayerControlled {
			continue
		}
		i++
		if i == idx {
			return c, true
		}
	}
	return models.Club{}, false
}

// Run starts the program with a ready engine.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start wires configuration, rng, archive and engine together and runs
// the program. Convenience entry for the root command.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	models.SaveDir = cfg.SaveDir

	src := rng.NewFromTime()
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
	}

	arch, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer arch.Close()

	return Run(engine.New(src, cfg.Tuning, arch))
}
