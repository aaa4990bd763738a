package service

import (
	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
)

type ClientServices struct {
	Connectivity ConnectivityService
	SyncService  ReferenceSyncService
	Regions      RegionFlow
	Registration RegistrationService
	Shelters     ShelterService
	Missions     MissionService
	Chat         ChatService
	Alerts       AlertService
	Profile      ProfileService
	Notices      *NoticeBus
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	tokens TokenSource,
	logger *logger.Logger,
) *ClientServices {
	notices := NewNoticeBus(logger.Component("notices"))
	prefs := storages.Preferences

	connectivity := NewConnectivityService(serverAdapter, logger.Component("connectivity"))
	shelterSync := NewShelterSync(serverAdapter, storages, logger.Component("sync"))
	missionSync := NewMissionSync(serverAdapter, storages, logger.Component("sync"))
	regions := NewRegionFlow(prefs, logger.Component("regions"))

	return &ClientServices{
		Connectivity: connectivity,
		SyncService:  NewReferenceSyncService(connectivity, prefs, logger.Component("sync"), shelterSync, missionSync),
		Regions:      regions,
		Registration: NewRegistrationService(serverAdapter, regions, tokens, prefs, notices, logger.Component("registration")),
		Shelters:     NewShelterService(storages.Shelters),
		Missions:     NewMissionService(serverAdapter, storages.Missions, missionSync, prefs, notices, logger.Component("missions")),
		Chat:         NewChatService(serverAdapter, regions, prefs, notices, logger.Component("chat")),
		Alerts:       NewAlertService(serverAdapter, regions, notices, logger.Component("alerts")),
		Profile:      NewProfileService(prefs),
		Notices:      notices,
	}
}
