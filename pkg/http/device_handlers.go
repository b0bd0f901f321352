package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

type ComponentRequest struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// DeviceRequest is the body of device creation and full update. Components
// replace the stored set on update only when present.
type DeviceRequest struct {
	SerialNumber      int                 `json:"serial_number"`
	Type              string              `json:"type"`
	SoftwareVersion   string              `json:"software_version"`
	Image             string              `json:"image"`
	InitialState      string              `json:"initial_state"`
	MacAddress        string              `json:"mac_address"`
	OperationalStatus string              `json:"operational_status"`
	Status            string              `json:"status"`
	BatteryLevel      int                 `json:"battery_level"`
	CreationDate      string              `json:"creation_date"`
	MalvoyantID       *int                `json:"malvoyant_id"`
	Components        *[]ComponentRequest `json:"components"`
}

func deviceShape() z.Shape {
	return z.Shape{
		"Type":              z.String().Required(),
		"SoftwareVersion":   z.String().Required(),
		"Image":             z.String().Required(),
		"InitialState":      z.String().Required(),
		"MacAddress":        z.String().Required(),
		"OperationalStatus": z.String().Required(),
		"Status":            z.String().Required(),
		"BatteryLevel":      z.Int().GTE(0).LTE(100),
	}
}

var deviceUpdateSchema = z.Struct(deviceShape())

var deviceCreateSchema = z.Struct(func() z.Shape {
	shape := deviceShape()
	shape["SerialNumber"] = z.Int().GT(0).Required()
	return shape
}())

func (req *DeviceRequest) toDevice() (*models.Device, error) {
	device := &models.Device{
		SerialNumber: req.SerialNumber,
		Image:        req.Image,
		MacAddress:   req.MacAddress,
		BatteryLevel: req.BatteryLevel,
		UserID:       req.MalvoyantID,
		Temperature:  models.DefaultTemperature,
	}

	var err error
	if device.Type, err = models.ParseDeviceType(req.Type); err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}
	if device.SoftwareVersion, err = models.ParseSoftwareVersion(req.SoftwareVersion); err != nil {
		return nil, fmt.Errorf("software_version: %w", err)
	}
	if device.InitialState, err = models.ParseInitialState(req.InitialState); err != nil {
		return nil, fmt.Errorf("initial_state: %w", err)
	}
	if device.OperationalStatus, err = models.ParseOperationalStatus(req.OperationalStatus); err != nil {
		return nil, fmt.Errorf("operational_status: %w", err)
	}
	if device.Status, err = models.ParseConnectivityStatus(req.Status); err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}
	if req.CreationDate != "" {
		if device.CreationDate, err = time.Parse(time.DateOnly, req.CreationDate); err != nil {
			return nil, fmt.Errorf("creation_date: %w", err)
		}
	}

	if req.Components != nil {
		device.Components = make([]models.Component, 0, len(*req.Components))
		for idx, c := range *req.Components {
			if c.Type == "" {
				return nil, fmt.Errorf("components[%d].type is required", idx)
			}
			component := models.Component{Type: c.Type}
			if c.Status != "" {
				if component.Status, err = models.ParseComponentStatus(c.Status); err != nil {
					return nil, fmt.Errorf("components[%d].status: %w", idx, err)
				}
			}
			device.Components = append(device.Components, component)
		}
	}

	return device, nil
}

func bindDevice(c *gin.Context, schema *z.StructSchema) (*models.Device, bool) {
	var req DeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return nil, false
	}
	if errs := schema.Validate(&req); errs != nil {
		badRequest(c, errs)
		return nil, false
	}

	device, err := req.toDevice()
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	return device, true
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	device, ok := bindDevice(c, deviceCreateSchema)
	if !ok {
		return
	}

	if err := rs.Iot.Device.CreateDevice(c.Request.Context(), device); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device created successfully", "serial_number": device.SerialNumber})
}

type ListDevicesQuery struct {
	Limit      int    `zog:"limit"`
	Offset     int    `zog:"offset"`
	DeviceType string `zog:"device_type"`
}

var listDevicesQuerySchema = z.Struct(z.Shape{
	"Limit":      z.Int().GTE(1).Default(models.DefaultPageLimit),
	"Offset":     z.Int().GTE(0).Default(0),
	"DeviceType": z.String(),
})

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	var query ListDevicesQuery
	if errs := listDevicesQuerySchema.Parse(zhttp.Request(c.Request), &query); errs != nil {
		badRequest(c, errs)
		return
	}

	filter := models.DeviceFilter{Limit: query.Limit, Offset: query.Offset}
	if query.DeviceType != "" {
		deviceType, err := models.ParseDeviceType(query.DeviceType)
		if err != nil {
			badRequest(c, err)
			return
		}
		filter.Type = deviceType
	}

	devices, err := rs.Iot.Device.ListDevices(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(devices))
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	device, err := rs.Iot.Device.GetDevice(c.Request.Context(), c.GetInt("serial_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, device)
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	device, ok := bindDevice(c, deviceUpdateSchema)
	if !ok {
		return
	}

	previous, updated, err := rs.Iot.Device.UpdateDevice(c.Request.Context(), c.GetInt("serial_number"), device)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Device updated successfully",
		"previous_values": previous,
		"updated_values":  updated,
	})
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	serialNumber := c.GetInt("serial_number")
	if err := rs.Iot.Device.DeleteDevice(c.Request.Context(), serialNumber); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Device with serial number %d and its related records have been deleted successfully.", serialNumber),
	})
}

func (rs *RestfulServer) ToggleDeviceStatus(c *gin.Context) {
	device, err := rs.Iot.Device.ToggleDeviceStatus(c.Request.Context(), c.GetInt("serial_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Device status changed to %s", device.Status),
		"serial_number": device.SerialNumber,
		"new_status":    device.Status,
	})
}

func (rs *RestfulServer) GetDeviceComponents(c *gin.Context) {
	components, err := rs.Iot.Device.GetDeviceComponents(c.Request.Context(), c.GetInt("serial_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(components))
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
