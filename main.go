package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledreel/api"
	"github.com/matt-g-everett/ledreel/console"
	"github.com/matt-g-everett/ledreel/movie"
	"github.com/matt-g-everett/ledreel/sound"
	"github.com/matt-g-everett/ledreel/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Bank       *sound.Bank
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Control    *stream.ControlHandler
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if a.Config.Mqtt.Topics.Control == "" {
		return
	}
	// Subscriptions do not survive a reconnect with a clean session.
	go func() {
		if err := a.Control.Subscribe(client, a.Config.Mqtt.Topics.Control); err != nil {
			log.Println(err)
		}
	}()
}

func (a *app) loadSounds() map[string]movie.Sound {
	if !a.Config.Audio.Enabled {
		log.Println("Audio disabled")
		return nil
	}

	a.Bank = sound.NewBank(a.Config.Audio.SampleRate)
	sounds := make(map[string]movie.Sound, len(a.Config.Sounds))
	for _, s := range a.Config.Sounds {
		c, err := a.Bank.Load(s.Name, s.Path)
		if err != nil {
			log.Fatalf("Loading sound %s: %v", s.Name, err)
		}
		log.Printf("Loaded sound %s (%v)", c.Name(), c.Duration())
		sounds[s.Name] = c
	}

	if err := a.Bank.Start(a.Config.Audio.Buffer); err != nil {
		log.Printf("Audio unavailable, cues will be silent: %v", err)
	}
	return sounds
}

func (a *app) newClient() {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
}

func (a *app) connect() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Connecting to %s: %v", a.Config.Mqtt.URL, token.Error())
	}
}

func (a *app) runConsole(ctx context.Context, cancel context.CancelFunc) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       "reel> ",
		AutoComplete: console.NewCompleter(a.Controller.Library()),
	})
	if err != nil {
		log.Printf("Console unavailable: %v", err)
		return
	}
	defer rl.Close()

	exec := func(cmd stream.Command) (stream.Status, error) {
		return a.Streamer.Do(ctx, cmd)
	}
	if err := console.Run(rl, a.Controller.Library(), exec, rl.Stdout()); err != nil {
		log.Printf("Console: %v", err)
	}
	cancel()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	interactive := flag.Bool("console", false, "Read control commands from the terminal.")
	flag.Parse()

	// Read the config
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Reading config: %v", err)
	}
	log.Printf("Config: strip %+v, clip fps %v, %d frame groups", config.Strip, config.Clip.FPS, len(config.Clip.Frames))

	a := newApp(config)
	sounds := a.loadSounds()
	if a.Bank != nil {
		defer a.Bank.Close()
	}

	strip := stream.NewStrip(config.Strip.Pixels, config.Strip.Fade)
	a.Controller, err = stream.BuildClip(config, strip, sounds)
	if err != nil {
		log.Fatalf("Building clip: %v", err)
	}
	log.Printf("Clip: %d frames, %v", a.Controller.Player().NumFrames(), a.Controller.Player().TotalDuration())

	var publisher stream.Publisher
	if config.Mqtt.URL != "" {
		a.newClient()
		publisher = stream.NewMQTTPublisher(a.Client, config.Mqtt.Topics.Stream, config.Mqtt.QoS)
	} else {
		log.Println("No MQTT broker configured, frames will not be sent")
	}

	a.Streamer = stream.NewStreamer(a.Controller, strip, publisher, config.Strip.FrameRate)
	a.Control = stream.NewControlHandler(a.Streamer, config.Mqtt.Topics.Status, config.Mqtt.QoS)

	if a.Client != nil {
		a.connect()
		defer a.Client.Disconnect(250)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if config.HTTP.Addr != "" {
		server := api.NewApi(a.Streamer, config.HTTP.Static)
		go func() {
			if err := server.Serve(ctx, config.HTTP.Addr); err != nil {
				log.Printf("HTTP: %v", err)
			}
		}()
	}

	if *interactive {
		go a.runConsole(ctx, cancel)
	}

	if err := a.Streamer.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Streaming: %v", err)
	}
	log.Println("Stopped")
}
