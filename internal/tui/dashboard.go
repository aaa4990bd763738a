package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type listView int

const (
	viewMissions listView = iota
	viewShelters
	viewChat
)

type inputMode int

const (
	inputNone inputMode = iota
	inputChat
	inputName
)

const maxShownNotices = 3

type dashboardModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	copyToClipboard func(string) error

	region   models.Region
	online   bool
	lastSync string
	shelters []models.Shelter
	missions []models.Mission
	chat     []models.ChatMessage
	view     listView
	idx      int

	loading bool
	syncing bool
	spinner spinner.Model

	status  string
	errMsg  string
	notices []models.Notice

	picker        *regionPickerModel
	input         textinput.Model
	mode          inputMode
	confirmSOS    bool
	showBuildInfo bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	in := textinput.New()
	in.CharLimit = 280
	in.Width = 48

	return dashboardModel{
		ctx:             ctx,
		services:        services,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
		region:          models.RegionUndefined,
		loading:         true,
		spinner:         sp,
		input:           in,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.region = msg.region
		m.lastSync = msg.lastSync
		m.online = msg.online
		m.shelters = msg.shelters
		m.missions = msg.missions
		m.clampIdx()
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		m.online = msg.report.Online
		m.status = syncSummary(msg.report)
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case chatLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.chat = msg.messages
		m.clampIdx()
		return m, nil

	case regionPromptMsg:
		m.picker = newRegionPicker(msg.regions)
		return m, nil

	case regionDismissMsg:
		m.picker = nil
		return m, m.cmdLoad()

	case regionSelectedMsg:
		if m.picker != nil {
			m.picker.saving = false
			if msg.err != nil {
				m.picker.err = humanizeError(msg.err)
			}
		}
		return m, nil

	case regionChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.status = "Region set to " + regionLabel(msg.region)
		}
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())

	case noticeMsg:
		m.notices = append(m.notices, msg.notice)
		if len(m.notices) > maxShownNotices {
			m.notices = m.notices[len(m.notices)-maxShownNotices:]
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		cmds := []tea.Cmd{cmdClearStatus()}
		if msg.reload {
			cmds = append(cmds, m.cmdLoad())
		}
		if msg.reloadChat {
			cmds = append(cmds, m.cmdLoadChat())
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.mode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.picker != nil:
		return m.handlePickerKey(msg)
	case m.mode != inputNone:
		return m.handleInputKey(msg)
	case m.confirmSOS:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmSOS = false
			return m, m.cmdSendSOS()
		case key.Matches(msg, keys.no):
			m.confirmSOS = false
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(msg, keys.region):
		return m, m.cmdChangeRegion()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyToken()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.listLen()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.view = (m.view + 1) % 3
		m.idx = 0
		if m.view == viewChat {
			return m, m.cmdLoadChat()
		}
	case key.Matches(msg, keys.complete):
		if m.view == viewMissions && len(m.missions) > 0 {
			return m, m.cmdCompleteMission(m.missions[m.idx].ID)
		}
	case key.Matches(msg, keys.sos):
		m.confirmSOS = true
	case key.Matches(msg, keys.chat):
		return m.openInput(inputChat, "message")
	case key.Matches(msg, keys.name):
		return m.openInput(inputName, "your name")
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m dashboardModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.saving {
		return m, nil
	}
	switch {
	case key.Matches(msg, keys.up):
		m.picker.up()
	case key.Matches(msg, keys.down):
		m.picker.down()
	case key.Matches(msg, keys.enter):
		m.picker.saving = true
		m.picker.err = ""
		return m, m.cmdSelectRegion(m.picker.selected())
	}
	return m, nil
}

func (m dashboardModel) openInput(mode inputMode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m, m.input.Focus()
}

func (m dashboardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == inputChat {
			return m, m.cmdSendChat(value)
		}
		return m, m.cmdSetName(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *dashboardModel) listLen() int {
	switch m.view {
	case viewShelters:
		return len(m.shelters)
	case viewChat:
		return len(m.chat)
	}
	return len(m.missions)
}

func (m *dashboardModel) clampIdx() {
	if n := m.listLen(); m.idx >= n {
		m.idx = max(n-1, 0)
	}
}

func (m dashboardModel) View() string {
	switch {
	case m.picker != nil:
		return appStyle.Render(m.picker.View())
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())

	if m.mode != inputNone {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
	}
	if m.confirmSOS {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Send SOS to everyone in " + regionLabel(m.region) + "? (y/n)"))
	}
	if len(m.notices) > 0 {
		b.WriteString("\n")
		for _, n := range m.notices {
			b.WriteString(fmt.Sprintf("\n%s %s: %s", n.At.Format("15:04"), n.Title, n.Body))
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	hot := "tab: view  s: sync  r: region  c: copy token  d: complete  !: SOS  m: chat  u: name  v: about"
	return appStyle.Render(renderPage("RELIEF SYNC", b.String(), hot))
}

func (m dashboardModel) headerView() string {
	conn := offlineStyle.Render("offline")
	if m.online {
		conn = onlineStyle.Render("online")
	}

	state := ""
	switch {
	case m.loading:
		state = m.spinner.View() + " loading"
	case m.syncing:
		state = m.spinner.View() + " syncing"
	}

	region := string(m.region)
	if !m.region.Valid() {
		region = "not defined"
	} else {
		region += " " + regionLabel(m.region)
	}

	return fmt.Sprintf("Region: %s   Server: %s   Last sync: %s  %s",
		region, conn, valueOrDash(m.lastSync), state)
}

func (m dashboardModel) listView() string {
	var lines []string
	switch m.view {
	case viewShelters:
		lines = append(lines, titleStyle.Render(fmt.Sprintf("Shelters (%d)", len(m.shelters))))
		for _, s := range m.shelters {
			lines = append(lines, fitText(fmt.Sprintf("%-24s %s", s.Name, s.Address), 72))
		}
	case viewChat:
		lines = append(lines, titleStyle.Render("Chat "+string(m.region)))
		for _, c := range m.chat {
			lines = append(lines, fitText(fmt.Sprintf("%s: %s", valueOrDash(c.UserName), c.Message), 72))
		}
	default:
		lines = append(lines, titleStyle.Render(fmt.Sprintf("Missions (%d)", len(m.missions))))
		for _, ms := range m.missions {
			lines = append(lines, fitText(fmt.Sprintf("#%-4d %-32s %4d pts  %s", ms.ID, ms.Title, ms.Points, ms.Status), 72))
		}
	}

	if len(lines) == 1 {
		return lines[0] + "\n-"
	}
	for i := 1; i < len(lines); i++ {
		if i-1 == m.idx {
			lines[i] = selectedStyle.Render("> " + lines[i])
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func syncSummary(r models.SyncReport) string {
	if !r.Online {
		return "Offline, showing cached data"
	}
	parts := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.Accepted {
			parts = append(parts, fmt.Sprintf("%s: kept cache", res.Kind))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %d", res.Kind, res.Count))
	}
	return "Synced " + strings.Join(parts, ", ")
}
