package tui

import (
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 4 * time.Second

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		var msg dashboardLoadedMsg

		msg.region, msg.err = services.Regions.CurrentRegion(ctx)
		if msg.err != nil {
			return msg
		}
		if msg.lastSync, msg.err = services.SyncService.LastSyncTimestamp(ctx); msg.err != nil {
			return msg
		}
		if msg.shelters, msg.err = services.Shelters.All(ctx); msg.err != nil {
			return msg
		}
		if msg.missions, msg.err = services.Missions.Active(ctx); msg.err != nil {
			return msg
		}
		msg.online = services.Connectivity.LastKnown().Online
		return msg
	}
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return syncDoneMsg{report: services.SyncService.SyncAll(ctx)}
	}
}

func (m dashboardModel) cmdLoadChat() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		messages, err := services.Chat.Messages(ctx)
		return chatLoadedMsg{messages: messages, err: err}
	}
}

func (m dashboardModel) cmdSelectRegion(region models.Region) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return regionSelectedMsg{err: services.Regions.Select(ctx, region)}
	}
}

// cmdChangeRegion blocks in its own goroutine until the picker is answered.
func (m dashboardModel) cmdChangeRegion() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		region, err := services.Registration.ChangeRegion(ctx)
		return regionChangedMsg{region: region, err: err}
	}
}

func (m dashboardModel) cmdCopyToken() tea.Cmd {
	ctx, services, copyFn := m.ctx, m.services, m.copyToClipboard
	return func() tea.Msg {
		token, err := services.Registration.CurrentToken(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if token == "" {
			return actionDoneMsg{err: service.ErrDeviceTokenMissing}
		}
		if err = copyFn(token); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Device token copied"}
	}
}

func (m dashboardModel) cmdCompleteMission(id int64) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.Missions.Complete(ctx, id); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Mission completion sent", reload: true}
	}
}

func (m dashboardModel) cmdSendSOS() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.Alerts.SendSOS(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "SOS sent to your region"}
	}
}

func (m dashboardModel) cmdSendChat(text string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.Chat.Send(ctx, text); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Message sent", reloadChat: true}
	}
}

func (m dashboardModel) cmdSetName(name string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.Profile.SetUserName(ctx, name); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "Name saved"}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
