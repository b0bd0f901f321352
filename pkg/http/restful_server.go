package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/hub"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/iot"
)

type RestfulServer struct {
	Server           *gin.Engine
	Iot              *iot.IOT
	Hub              *hub.Hub
	RateLimiterStore *iot.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(serialNumber int) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(serialNumber)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(serialNumber int) bool {
	limiter := rs.GetLimiter(serialNumber)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(serialNumber int, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(serialNumber, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/", rs.Root)
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/ws", rs.ServeWebsocket)

	rs.Server.POST("/devices/status", rs.PostStatus)
	rs.Server.GET("/devices", rs.ListDevices)
	rs.Server.POST("/devices", rs.CreateDevice)
	rs.Server.POST("/devices/:serial_number/limiter", rs.PostLimiter)

	devices := rs.Server.Group("/devices/:serial_number", rs.deviceLimiter)
	{
		devices.GET("", rs.GetDevice)
		devices.PUT("", rs.UpdateDevice)
		devices.DELETE("", rs.DeleteDevice)
		devices.PATCH("", rs.ToggleDeviceStatus)
		devices.GET("/components", rs.GetDeviceComponents)
		devices.GET("/alerts", rs.GetDeviceAlerts)
	}

	alerts := rs.Server.Group("/alerts")
	{
		alerts.GET("", rs.ListAlerts)
		alerts.POST("", rs.CreateAlert)
		alerts.DELETE("/:alert_id", rs.DeleteAlert)
	}

	interventions := rs.Server.Group("/interventions")
	{
		interventions.POST("", rs.CreateIntervention)
		interventions.GET("", rs.ListInterventions)
		interventions.GET("/:intervention_id", rs.GetIntervention)
		interventions.PUT("/:intervention_id", rs.UpdateIntervention)
		interventions.DELETE("/:intervention_id", rs.DeleteIntervention)
	}

	failures := rs.Server.Group("/failures")
	{
		failures.POST("", rs.CreateFailure)
		failures.GET("", rs.ListFailures)
		failures.GET("/:failure_id", rs.GetFailure)
		failures.PUT("/:failure_id", rs.UpdateFailure)
		failures.DELETE("/:failure_id", rs.DeleteFailure)
	}
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameRestfulServer)
}

// deviceLimiter rejects malformed serial numbers and applies the per-device
// rate limit to every route under /devices/:serial_number.
func (rs *RestfulServer) deviceLimiter(c *gin.Context) {
	serialNumber, ok := serialNumberParam(c)
	if !ok {
		c.Abort()
		return
	}

	if !rs.CheckDeviceLimiter(serialNumber) {
		c.AbortWithStatus(http.StatusTooManyRequests)
		return
	}

	c.Set("serial_number", serialNumber)
	c.Next()
}

func serialNumberParam(c *gin.Context) (int, bool) {
	serialNumber, err := strconv.Atoi(c.Param("serial_number"))
	if err != nil || serialNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serial number"})
		return 0, false
	}
	return serialNumber, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// writeError maps core error kinds onto status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, iot.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, iot.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, iot.ErrInvalid):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		logger().Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err any) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("validation error: %v", err)})
}
