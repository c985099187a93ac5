/*
* Copyright 2022-present Open Networking Foundation
* Licensed under the Apache License, Version 2.0 (the "License");
* you may not use this file except in compliance with the License.
* You may obtain a copy of the License at
*
* http://www.apache.org/licenses/LICENSE-2.0
*
* Unless required by applicable law or agreed to in writing, software
* distributed under the License is distributed on an "AS IS" BASIS,
* WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
* See the License for the specific language governing permissions and
* limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pc "meter-go-controller/infra/pprofcontroller"

	db "meter-go-controller/database"
	"meter-go-controller/internal/pkg/meter"
	"meter-go-controller/internal/pkg/metrics"
	"meter-go-controller/internal/pkg/settings"
	"meter-go-controller/internal/pkg/vpagent"
	"meter-go-controller/meter-go-controller/nbi"

	"meter-go-controller/log"

	"github.com/opencord/voltha-lib-go/v7/pkg/db/kvstore"
	"github.com/opencord/voltha-lib-go/v7/pkg/probe"
	"github.com/prometheus/client_golang/prometheus"
)

var logger log.CLogger
var ctx = context.TODO()

// version is set at link time
var version = "dev"

// MgcInfo structure
type MgcInfo struct {
	kvClient   kvstore.Client
	Name       string
	Version    string
	InstanceID string
}

var mgcInfo = MgcInfo{Name: "MGC", Version: version}
var dbHandler *db.Database

func init() {
	// Setup this package so that it's log level can be modified at run time
	var err error
	logger, err = log.AddPackageWithDefaultParam()
	if err != nil {
		panic(err)
	}
}

func printBanner() {
	fmt.Println("##     ##  ######    ######  ")
	fmt.Println("###   ### ##    ##  ##    ## ")
	fmt.Println("#### #### ##        ##       ")
	fmt.Println("## ### ## ##   #### ##       ")
	fmt.Println("##     ## ##    ##  ##       ")
	fmt.Println("##     ## ##    ##  ##    ## ")
	fmt.Println("##     ##  ######    ######  ")
}

func stop(ctx context.Context, kvClient kvstore.Client, vpa *vpagent.VPAgent) {
	// Stop serving meter mods before the KV store goes away
	if vpa != nil {
		vpa.Stop(ctx)
	}
	// Cleanup - applies only if we had a kvClient
	if kvClient != nil {
		// Release all reservations
		if err := kvClient.ReleaseAllReservations(ctx); err != nil {
			logger.Infow(ctx, "fail-to-release-all-reservations", log.Fields{"error": err})
		}
		// Close the DB connection
		kvClient.Close(ctx)
	}
}

// waitUntilKVStoreReachableOrMaxTries will wait until it can connect to a KV store or until maxtries has been reached
func waitUntilKVStoreReachableOrMaxTries(ctx context.Context, config *MGCFlags) error {
	count := 0
	for {
		if !mgcInfo.kvClient.IsConnectionUp(ctx) {
			logger.Infow(ctx, "KV-store-unreachable", log.Fields{"KVStoreType": config.KVStoreType, "Address": config.KVStoreEndPoint})
			if config.ConnectionMaxRetries != -1 {
				if count >= config.ConnectionMaxRetries {
					logger.Errorw(ctx, "kv store unreachable", log.Fields{})
					return errors.New("kv store unreachable")
				}
			}
			count++
			//	Take a nap before retrying
			time.Sleep(time.Duration(config.ConnectionRetryDelay) * time.Second)
			logger.Infow(ctx, "retry-KV-store-connectivity", log.Fields{"retryCount": count,
				"maxRetries": config.ConnectionMaxRetries, "retryInterval": config.ConnectionRetryDelay})
		} else {
			break
		}
	}
	return nil
}

// applyStoredLogLevel applies the log level kept in the KV store. When none
// is stored yet the level in effect is written so the shell can read it.
func applyStoredLogLevel(ctx context.Context, dbIntf db.DBIntf, current log.LevelLog) {
	dblogLevel, err := dbIntf.GetLogLevel(ctx)
	if err == nil {
		storedLogLevel, err := log.StringToLogLevel(dblogLevel)
		if err != nil {
			logger.Warnw(ctx, "Ignoring stored log-level", log.Fields{"logLevel": dblogLevel})
			return
		}
		logger.Infow(ctx, "Read log-level from db", log.Fields{"logLevel": dblogLevel})
		log.SetAllLogLevel(int(storedLogLevel))
		log.SetDefaultLogLevel(int(storedLogLevel))
		return
	}
	levelStr, err := log.LogLevelToString(current)
	if err != nil {
		return
	}
	if err = dbIntf.PutLogLevel(ctx, levelStr); err != nil {
		logger.Warnw(ctx, "Write log-level to db failed", log.Fields{"Reason": err.Error()})
	}
}

func setupSettings(ctx context.Context, config *MGCFlags, dbIntf db.DBIntf) (*settings.Registry, error) {
	reg := settings.NewRegistry()
	if err := settings.RegisterDefaults(reg); err != nil {
		return nil, err
	}
	if config.SettingsFile != "" {
		if err := reg.LoadFile(config.SettingsFile); err != nil {
			logger.Errorw(ctx, "Failed to load settings file", log.Fields{"File": config.SettingsFile, "Reason": err.Error()})
			return nil, err
		}
	}
	if err := reg.Sync(ctx, dbIntf); err != nil {
		return nil, err
	}
	return reg, nil
}

func main() {
	// Environment variables processing
	config := newMGCFlags()
	config.parseEnvironmentVariables()
	mgcInfo.InstanceID = config.InstanceID

	if config.DisplayVersion {
		fmt.Println(mgcInfo.Name, mgcInfo.Version)
		return
	}
	if config.Banner {
		printBanner()
	}
	// Create a context adding the status update channel
	p := &probe.Probe{}
	ctx = context.WithValue(context.Background(), probe.ProbeContextKey, p)

	// Setup logging for the program
	// Read the loglevel configured first
	// Setup default logger - applies for packages that do not have specific logger set
	var logLevel log.LevelLog
	var err error
	if logLevel, err = log.StringToLogLevel(config.LogLevel); err != nil {
		logLevel = log.DebugLevel
	}
	if err = log.SetDefaultLogger(ctx, int(logLevel), log.Fields{"instanceId": config.InstanceID}); err != nil {
		logger.With(ctx, log.Fields{"error": err}, "Cannot setup logging")
	}

	// Update all loggers (provisionned via init) with a common field
	if err = log.UpdateAllLoggers(log.Fields{"instanceId": config.InstanceID}); err != nil {
		logger.With(ctx, log.Fields{"error": err}, "Cannot setup logging")
	}
	log.SetAllLogLevel(int(logLevel))

	defer func() {
		err = log.CleanUp()
		if err != nil {
			logger.Errorw(ctx, "unable-to-flush-any-buffered-log-entries", log.Fields{"error": err})
		}
	}()

	if dbHandler, err = db.Initialize(ctx, config.KVStoreType, config.KVStoreEndPoint, config.KVStoreTimeout); err != nil {
		logger.Errorw(ctx, "unable-to-connect-to-db", log.Fields{"error": err})
		return
	}
	mgcInfo.kvClient = dbHandler.Client()
	db.SetDatabase(dbHandler)
	logger.Infow(ctx, "verifying-KV-store-connectivity", log.Fields{"host": config.KVStoreHost,
		"port": config.KVStorePort, "retries": config.ConnectionMaxRetries,
		"retryInterval": config.ConnectionRetryDelay})

	err = waitUntilKVStoreReachableOrMaxTries(ctx, config)
	if err != nil {
		logger.Fatalw(ctx, "Unable-to-connect-to-KV-store", log.Fields{"KVStoreType": config.KVStoreType, "Address": config.KVStoreEndPoint})
	}

	logger.Info(ctx, "KV-store-reachable")
	applyStoredLogLevel(ctx, db.GetDatabase(), logLevel)

	reg, err := setupSettings(ctx, config, db.GetDatabase())
	if err != nil {
		logger.Fatalw(ctx, "settings-setup-failed", log.Fields{"error": err})
	}

	if err = metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatalw(ctx, "metrics-registration-failed", log.Fields{"error": err})
	}

	pprofAddr, _ := reg.Lookup(settings.PprofAddress)
	pc.Init(pprofAddr)

	/*
	 * Create and start the liveness and readiness container management probes. This
	 * is done in the main function so just in case the main starts multiple other
	 * objects there can be a single probe end point for the process.
	 */
	if enabled, perr := reg.GetBool(settings.ProbeEnabled); perr == nil && enabled {
		go p.ListenAndServe(ctx, config.ProbeEndPoint)
	}

	mm := meter.NewManager()

	restAddr, _ := reg.Lookup(settings.RestAddress)
	go nbi.RestStart(restAddr, nbi.NewRouter(mm, reg))

	grpcAddr, _ := reg.Lookup(settings.GrpcAddress)
	maxMsgSize, err := reg.GetInt(settings.GrpcMaxMsgSize)
	if err != nil {
		logger.Warnw(ctx, "invalid-grpc-max-msg-size", log.Fields{"error": err})
	}
	vpa, err := vpagent.NewVPAgent(&vpagent.VPAgent{
		MeterManager: mm,
		GrpcAddress:  grpcAddr,
		MaxMsgSize:   maxMsgSize,
	})
	if err != nil {
		logger.Fatalw(ctx, "failed-to-create-vpagent", log.Fields{"error": err})
	}
	runCtx, cancel := context.WithCancel(ctx)
	go vpa.Run(runCtx)

	interval, err := reg.GetDuration(settings.HealthInterval)
	if err != nil || interval <= 0 {
		interval = 30 * time.Second
	}
	go reportHealth(runCtx, db.GetDatabase(), mm, interval)

	waitForExit()
	cancel()
	stop(ctx, mgcInfo.kvClient, vpa)
}

func waitForExit() int {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)

	exitChannel := make(chan int)

	go func() {
		s := <-signalChannel
		switch s {
		case syscall.SIGHUP,
			syscall.SIGINT,
			syscall.SIGTERM,
			syscall.SIGQUIT:
			logger.Infow(ctx, "closing-signal-received", log.Fields{"signal": s})
			exitChannel <- 0
		default:
			logger.Infow(ctx, "unexpected-signal-received", log.Fields{"signal": s})
			exitChannel <- 1
		}
	}()

	code := <-exitChannel
	return code
}
