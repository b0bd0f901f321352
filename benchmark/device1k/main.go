package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	iotGrpc "github.com/AbderraoufSelidja/Irchad-device-management/pkg/grpc"
	iotHttp "github.com/AbderraoufSelidja/Irchad-device-management/pkg/http"
	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/models"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *iotGrpc.StatusServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var componentTypes = []string{"camera", "vibration motor", "gps"}

func main() {
	serialNumbers := make([]int, maxDevices)
	for i := range maxDevices {
		serialNumbers[i] = int(uuid.New().ID() >> 1)
	}
	fmt.Printf("generated %v serial numbers\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.Dial(grpcHostPort, grpc.WithInsecure())
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = iotGrpc.NewStatusServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			registerDevice(serialNumbers[i])
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxDevices {
		wg.Add(1)
		go func() {
			doAction(serialNumbers[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func rndInt(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func flipCoin() bool {
	return rndInt(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func pick[T any](items []T) T {
	return items[rndInt(len(items))]
}

func registerDevice(serialNumber int) {
	components := make([]iotHttp.ComponentRequest, len(componentTypes))
	for i, ct := range componentTypes {
		components[i] = iotHttp.ComponentRequest{Type: ct}
	}

	payload := iotHttp.DeviceRequest{
		SerialNumber:      serialNumber,
		Type:              string(pick(models.DeviceTypes)),
		SoftwareVersion:   string(models.SoftwareVersion1_0),
		Image:             "device.png",
		InitialState:      string(models.InitialStateNew),
		MacAddress:        uuid.NewString(),
		OperationalStatus: string(models.OperationalStatusInService),
		Status:            string(models.ConnectivityActive),
		BatteryLevel:      100,
		Components:        &components,
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/devices", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("register device %v: status %v", serialNumber, resp.StatusCode))
	}
}

func doAction(serialNumber int) {
	actions := []func(){
		genPostStatusAction(serialNumber),
		genGetAlertsAction(serialNumber),
		genPostStatusAction(serialNumber),
	}
	actionNames := []string{
		"PostStatus",
		"GetAlerts",
		"PostStatus",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], serialNumber)
		time.Sleep(time.Duration(100+rndInt(1000)) * time.Millisecond)
	}
}

func randomStatus(serialNumber int) *models.StatusUpdate {
	update := models.NewStatusUpdate()
	update.SerialNumber = serialNumber
	update.OperationalStatus = string(pick(models.OperationalStatuses))
	update.Status = string(pick(models.ConnectivityStatuses))
	batteryLevel := rndInt(101)
	update.BatteryLevel = &batteryLevel
	update.MemoryUsage = rndFloat64(0.0, 100.0, 1)
	update.CPUUsage = rndFloat64(0.0, 100.0, 1)
	update.Temperature = rndFloat64(20.0, 90.0, 1)
	for _, ct := range componentTypes {
		update.Components = append(update.Components, models.ComponentStatusUpdate{
			Type:   ct,
			Status: string(pick(models.ComponentStatuses)),
		})
	}
	return update
}

func genPostStatusAction(serialNumber int) func() {
	return func() {
		useHttp := flipCoin()
		update := randomStatus(serialNumber)
		jsonData, _ := json.Marshal(update)

		if useHttp {
			resp, err := http.Post(fmt.Sprintf("http://%s/devices/status", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else {
			var fields map[string]any
			_ = json.Unmarshal(jsonData, &fields)
			req, err := structpb.NewStruct(fields)
			if err != nil {
				panic(err)
			}
			if _, err := grpcClient.IngestStatus(context.Background(), req); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		}
	}
}

func genGetAlertsAction(serialNumber int) func() {
	return func() {
		useHttp := flipCoin()

		if useHttp {
			resp, err := http.Get(fmt.Sprintf("http://%s/devices/%d/alerts", httpHostPort, serialNumber))
			if err != nil {
				fmt.Printf("\nerror: %v\n", err)
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
			}
		} else {
			req, _ := structpb.NewStruct(map[string]any{"serial_number": serialNumber})
			if _, err := grpcClient.GetAlerts(context.Background(), req); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		}
	}
}
