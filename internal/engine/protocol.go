package engine

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// Wire kinds for the {kind, payload} envelope spoken with external hosts
// (the classifier bridge). The in-process host uses the typed commands
// directly; this codec only translates, it holds no game logic.
const (
	KindInit      = "INIT"
	KindSettings  = "SETTINGS"
	KindInput     = "INPUT"
	KindResize    = "RESIZE"
	KindStop      = "STOP"
	KindScore     = "SCORE_UPDATE"
	KindHighScore = "HIGHSCORE_UPDATE"
	KindGameOver  = "GAME_OVER"
	KindInitErr   = "INIT_FAILED"
)

// Envelope is the wire message shape in both directions.
type Envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// wirePalette carries host theme colors as hex strings. Empty fields fall
// back to the built-in palette.
type wirePalette struct {
	SkyDay      string `json:"skyDay,omitempty"`
	SkyNight    string `json:"skyNight,omitempty"`
	GroundDay   string `json:"groundDay,omitempty"`
	GroundNight string `json:"groundNight,omitempty"`
	PlayerDay   string `json:"playerDay,omitempty"`
	PlayerNight string `json:"playerNight,omitempty"`
}

func (wp wirePalette) palette() core.Palette {
	p := core.DefaultPalette()
	assign := func(dst *core.RGB, hex string) {
		if hex == "" {
			return
		}
		if c, err := core.ParseHex(hex); err == nil {
			*dst = c
		}
	}
	assign(&p.SkyDay, wp.SkyDay)
	assign(&p.SkyNight, wp.SkyNight)
	assign(&p.GroundDay, wp.GroundDay)
	assign(&p.GroundNight, wp.GroundNight)
	assign(&p.PlayerDay, wp.PlayerDay)
	assign(&p.PlayerNight, wp.PlayerNight)
	return p
}

type wireInit struct {
	Settings  Patch       `json:"settings"`
	Palette   wirePalette `json:"palette"`
	HighScore float64     `json:"highScore"`
	Width     int         `json:"width"`  // Surface width in cells
	Height    int         `json:"height"` // Surface height in cells
	Seed      int64       `json:"seed,omitempty"`
}

type wireSettings struct {
	Settings  Patch    `json:"settings"`
	HighScore *float64 `json:"highScore,omitempty"`
}

type wireInput struct {
	Action string `json:"action"`
}

type wireResize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DecodeCommand parses one wire envelope into a typed command. Unknown
// kinds decode to (nil, nil): the router ignores them rather than failing
// the loop. A wire INIT has no surface to transfer, so the engine
// allocates one from the requested cell dimensions.
func DecodeCommand(data []byte) (Command, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("engine: malformed envelope: %w", err)
	}

	switch env.Kind {
	case KindInit:
		var p wireInit
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("engine: malformed INIT payload: %w", err)
		}
		settings := DefaultSettings()
		settings.Apply(p.Settings)
		var surface *core.Screen
		if p.Width > 0 && p.Height > 0 {
			surface = core.NewScreen(p.Width, p.Height)
		}
		return InitCmd{
			Surface:   surface,
			Settings:  settings,
			Palette:   p.Palette.palette(),
			HighScore: p.HighScore,
			Seed:      p.Seed,
		}, nil

	case KindSettings:
		var p wireSettings
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("engine: malformed SETTINGS payload: %w", err)
		}
		return SettingsCmd{Patch: p.Settings, HighScore: p.HighScore}, nil

	case KindInput:
		var p wireInput
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("engine: malformed INPUT payload: %w", err)
		}
		switch p.Action {
		case "jump":
			return InputCmd{Action: ActionJump}, nil
		case "pause":
			return InputCmd{Action: ActionPause}, nil
		}
		return nil, nil

	case KindResize:
		var p wireResize
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("engine: malformed RESIZE payload: %w", err)
		}
		return ResizeCmd{Width: p.Width, Height: p.Height}, nil

	case KindStop:
		return StopCmd{}, nil
	}

	return nil, nil
}

// EncodeEvent serializes an outbound event to a wire envelope. Frame
// events are host-local and have no wire form; they encode to (nil, nil).
func EncodeEvent(ev Event) ([]byte, error) {
	var env Envelope
	var payload any

	switch e := ev.(type) {
	case ScoreEvent:
		env.Kind = KindScore
		payload = map[string]float64{"score": e.Score}
	case HighScoreEvent:
		env.Kind = KindHighScore
		payload = map[string]float64{"highScore": e.HighScore}
	case GameOverEvent:
		env.Kind = KindGameOver
		payload = map[string]float64{"score": e.Score}
	case InitFailedEvent:
		env.Kind = KindInitErr
		payload = map[string]string{"reason": e.Reason}
	case FrameEvent:
		return nil, nil
	default:
		return nil, fmt.Errorf("engine: no wire form for event %T", ev)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	env.Payload = raw
	return json.Marshal(env)
}
