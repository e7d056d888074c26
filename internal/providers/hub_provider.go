package providers

import (
	"vmd/internal/broadcast"
	"vmd/internal/structures"
)

func NewHubProvider(conf *structures.Config, logger Logger) broadcast.HubInterface {
	logger.Infof(TypeApp, "Broadcast hub initialized, per-subscriber queue size %d", conf.Broadcast.QueueSize)
	return broadcast.NewHub(conf.Broadcast.QueueSize)
}
