package iot

//go:generate mockgen -source=iot.go -destination=mocks/mock_iot.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/db"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

type IDevice interface {
	CreateDevice(ctx context.Context, input *models.Device) error
	GetDevice(ctx context.Context, serialNumber int) (*models.Device, error)
	ListDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error)
	UpdateDevice(ctx context.Context, serialNumber int, input *models.Device) (previous *models.Device, updated *models.Device, err error)
	DeleteDevice(ctx context.Context, serialNumber int) error
	ToggleDeviceStatus(ctx context.Context, serialNumber int) (*models.Device, error)
	GetDeviceComponents(ctx context.Context, serialNumber int) ([]models.Component, error)
}

type IStatus interface {
	IngestStatus(ctx context.Context, snapshot *models.Snapshot) (int, error)
}

type IAlert interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetDeviceAlerts(ctx context.Context, serialNumber int) ([]models.Alert, error)
	ListAlerts(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	DeleteAlert(ctx context.Context, id uint) error
}

type IMaintenance interface {
	CreateIntervention(ctx context.Context, input *models.Intervention) error
	ListInterventions(ctx context.Context) ([]models.Intervention, error)
	GetIntervention(ctx context.Context, id uint) (*models.Intervention, error)
	UpdateIntervention(ctx context.Context, id uint, input *models.Intervention) (*models.Intervention, error)
	DeleteIntervention(ctx context.Context, id uint) (*models.Intervention, error)

	CreateFailure(ctx context.Context, input *models.Failure) error
	ListFailures(ctx context.Context) ([]models.Failure, error)
	GetFailure(ctx context.Context, id uint) (*models.Failure, error)
	UpdateFailure(ctx context.Context, id uint, input *models.Failure) (*models.Failure, error)
	DeleteFailure(ctx context.Context, id uint) (*models.Failure, error)
}

// Broadcaster fans an ingested status out to live subscribers and reports how
// many received it.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg any) int
}

type IOT struct {
	Db          db.DB
	Device      IDevice
	Status      IStatus
	Alert       IAlert
	Maintenance IMaintenance
	Broadcaster Broadcaster

	// Now stamps generated alerts, defaults to time.Now in UTC.
	Now func() time.Time

	broadcastOnce sync.Once
	broadcasts    chan pendingBroadcast
}

type ServiceOpts struct {
	Device      IDevice
	Status      IStatus
	Alert       IAlert
	Maintenance IMaintenance
	Broadcaster Broadcaster
}

func (i *IOT) WithServices(opts ServiceOpts) *IOT {
	if opts.Device != nil {
		i.Device = opts.Device
	}
	if opts.Status != nil {
		i.Status = opts.Status
	}
	if opts.Alert != nil {
		i.Alert = opts.Alert
	}
	if opts.Maintenance != nil {
		i.Maintenance = opts.Maintenance
	}
	if opts.Broadcaster != nil {
		i.Broadcaster = opts.Broadcaster
	}
	return i
}

// WithDefaultServices wires the gorm backed implementations of every service.
func (i *IOT) WithDefaultServices() *IOT {
	return i.WithServices(ServiceOpts{
		Device:      i.GetIDevice(),
		Status:      i.GetIStatus(),
		Alert:       i.GetIAlert(),
		Maintenance: i.GetIMaintenance(),
	})
}

func (i *IOT) now() time.Time {
	if i.Now != nil {
		return i.Now()
	}
	return time.Now().UTC()
}
