// Command tapwriter decodes single-switch morse taps into text and streams
// it to an MQTT broker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sweeney/tapwriter/internal/config"
	"github.com/sweeney/tapwriter/internal/decode"
	"github.com/sweeney/tapwriter/internal/indicator"
	"github.com/sweeney/tapwriter/internal/input"
	"github.com/sweeney/tapwriter/internal/mqtt"
	"github.com/sweeney/tapwriter/internal/status"
	"github.com/sweeney/tapwriter/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.DurationVar(&cfg.Poll, "poll", cfg.Poll, "input polling interval")
	flag.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "debounce settle window")
	flag.DurationVar(&cfg.DashThreshold, "dash-threshold", cfg.DashThreshold, "press duration at which a tap becomes a dash")
	flag.DurationVar(&cfg.CharGap, "char-gap", cfg.CharGap, "release silence before flushing a character")
	flag.DurationVar(&cfg.WordGap, "word-gap", cfg.WordGap, "release silence before a word boundary")
	flag.StringVar(&cfg.Broker, "broker", cfg.Broker, "MQTT broker address")
	flag.DurationVar(&cfg.Heartbeat, "heartbeat", cfg.Heartbeat, "heartbeat interval (0 to disable)")
	flag.IntVar(&cfg.PinSwitch, "pin-switch", cfg.PinSwitch, "BCM pin number for the key switch")
	flag.IntVar(&cfg.PinLight, "pin-light", cfg.PinLight, "BCM pin number for the light-sensor comparator")
	flag.IntVar(&cfg.PinTone, "pin-tone", cfg.PinTone, "BCM pin number for the sidetone buzzer")
	flag.IntVar(&cfg.ToneHz, "tone-hz", cfg.ToneHz, "sidetone frequency passthrough")
	ledPins := flag.String("led-pins", joinPins(cfg.LEDPins), "comma-separated BCM pin numbers for the pattern LEDs")
	printState := flag.Bool("print-state", false, "Print current key state and exit")
	flag.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "HTTP status address (empty to disable)")
	flag.StringVar(&cfg.WSBroker, "ws-broker", cfg.WSBroker, `MQTT websocket URL for live UI ("=broker" derives from --broker, "off" disables)`)

	flag.Parse()

	pins, err := parsePins(*ledPins)
	if err != nil {
		log.Fatalf("led-pins: %v", err)
	}
	cfg.LEDPins = pins
	cfg.WSBroker = resolveWSBroker(cfg.WSBroker, cfg.Broker)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg, *printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(cfg *config.Config, printState bool) error {
	// Initialize the key input
	reader, err := input.NewRealReader(cfg.PinSwitch, cfg.PinLight)
	if err != nil {
		return fmt.Errorf("init input: %w", err)
	}
	defer reader.Close()

	// Print state mode
	if printState {
		down, err := reader.Read()
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if down {
			fmt.Println("key: DOWN")
		} else {
			fmt.Println("key: UP")
		}
		return nil
	}

	// Initialize the indicator hardware
	ind, err := indicator.NewRealDriver(cfg.LEDPins, cfg.PinTone, cfg.ToneHz)
	if err != nil {
		return fmt.Errorf("init indicator: %w", err)
	}
	defer ind.Close()

	// Initialize MQTT
	publisher := mqtt.NewRealPublisher(cfg.Broker)
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:      cfg.Poll.Milliseconds(),
		DebounceMs:  cfg.Debounce.Milliseconds(),
		DashMs:      cfg.DashThreshold.Milliseconds(),
		CharGapMs:   cfg.CharGap.Milliseconds(),
		WordGapMs:   cfg.WordGap.Milliseconds(),
		HeartbeatMs: cfg.Heartbeat.Milliseconds(),
		ToneHz:      cfg.ToneHz,
		Broker:      cfg.Broker,
		HTTPAddr:    cfg.HTTPAddr,
		WSBroker:    cfg.WSBroker,
	})
	if net := config.ReadNetwork(); net != nil {
		tracker.SetNetwork(networkInfo(net))
	}

	// Publish startup event with full status snapshot
	snap := tracker.Snapshot()
	startupEvent := mqtt.SystemEvent{
		Timestamp:  snap.Now,
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(snap, "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Start HTTP status server
	if cfg.HTTPAddr != "" {
		srv := web.New(cfg.HTTPAddr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", cfg.HTTPAddr)
	}

	log.Printf("started: poll=%v debounce=%v dash=%v char=%v word=%v broker=%s",
		cfg.Poll, cfg.Debounce, cfg.DashThreshold, cfg.CharGap, cfg.WordGap, cfg.Broker)

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(reader, ind, publisher, publisher, tracker, cfg, time.Now, ticker.C, sigCh)
}

func runLoop(reader input.Reader, ind indicator.Driver, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, cfg *config.Config, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	engine := decode.NewEngine(decode.Config{
		Debounce:      cfg.Debounce,
		DashThreshold: cfg.DashThreshold,
		CharGap:       cfg.CharGap,
		WordGap:       cfg.WordGap,
	}, startTime)

	toneOn := false

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				snap := tracker.Snapshot()
				event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", signalName)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Printf("failed to publish shutdown event: %v", err)
			} else {
				log.Printf("published shutdown event")
			}
			return nil

		case <-tick:
			t := now()
			pressed, err := reader.Read()
			if err != nil {
				log.Printf("input read error: %v", err)
				continue
			}

			events := engine.Tick(decode.Input{Pressed: pressed, Time: t})

			for _, ev := range events {
				if ev.Type == decode.EventWordBoundary {
					log.Printf("event: %s", ev.Type)
				} else {
					log.Printf("event: %s %q (pattern %s)", ev.Type, ev.Text, ev.Pattern)
				}

				if ind != nil && ev.Type != decode.EventWordBoundary {
					if err := ind.ShowPattern(ev.Indicators[:]); err != nil {
						log.Printf("indicator error: %v", err)
					}
				}

				if err := publisher.Publish(ev); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}

				if tracker != nil {
					tracker.AppendText(ev.Text)
				}
			}

			// Sidetone follows the debounced key state
			if ind != nil && engine.Pressed() != toneOn {
				toneOn = engine.Pressed()
				if err := ind.SetTone(toneOn); err != nil {
					log.Printf("sidetone error: %v", err)
				}
			}

			// Check for heartbeat
			if hbData := engine.CheckHeartbeat(t, cfg.Heartbeat); hbData != nil {
				log.Printf("heartbeat: uptime=%v chars=%d unknown=%d words=%d presses=%d",
					hbData.Uptime, hbData.Counts.Characters, hbData.Counts.Unknown, hbData.Counts.Words, hbData.Counts.Presses)

				hbEvent := mqtt.SystemEvent{
					Timestamp: hbData.Timestamp,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					if mqttStatus != nil {
						tracker.SetMQTTConnected(mqttStatus.IsConnected())
					}
					// Refresh network info for heartbeat
					if net := config.ReadNetwork(); net != nil {
						tracker.SetNetwork(networkInfo(net))
					}
					tracker.Update(engine.Pressed(), engine.CurrentPattern(), engine.CountsSnapshot())
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}

			// Update status tracker for HTTP consumers
			if tracker != nil {
				tracker.Update(engine.Pressed(), engine.CurrentPattern(), engine.CountsSnapshot())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}
		}
	}
}

func networkInfo(n *config.NetworkInfo) *status.NetworkInfo {
	return &status.NetworkInfo{
		Type:       n.Type,
		IP:         n.IP,
		Status:     n.Status,
		Gateway:    n.Gateway,
		WifiStatus: n.WifiStatus,
		SSID:       n.SSID,
	}
}

func joinPins(pins []int) string {
	parts := make([]string, len(pins))
	for i, p := range pins {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func parsePins(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var pins []int
	for _, part := range strings.Split(s, ",") {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad pin %q: %w", part, err)
		}
		pins = append(pins, p)
	}
	return pins, nil
}

// resolveWSBroker converts the --ws-broker flag value into a concrete URL.
// "=broker" derives ws://host:9001 from the TCP broker address; empty disables.
func resolveWSBroker(ws, broker string) string {
	if ws == "off" {
		return ""
	}
	if ws != "=broker" {
		return ws
	}
	u, err := url.Parse(broker)
	if err != nil {
		log.Printf("ws-broker: cannot parse --broker %q: %v", broker, err)
		return ""
	}
	u.Scheme = "ws"
	u.Host = u.Hostname() + ":9001"
	return u.String()
}
