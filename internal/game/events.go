package game

type EventType int

const (
	EventStats EventType = iota
	EventGameOver
	EventShoot
	EventExplosion
	EventHit
	EventPowerup
)

// StatsPayload is the throttled per-tick HUD snapshot.
type StatsPayload struct {
	Health float64
	Score  int
	Kills  int
}

// GameOverPayload is emitted exactly once per death, before the score resets.
type GameOverPayload struct {
	Score   int
	Kills   int
	Seconds int // whole seconds survived
}

// SoundPayload parameterizes fire-and-forget audio triggers.
type SoundPayload struct {
	Weapon WeaponKind // EventShoot only
	Size   float64    // EventExplosion: blast size factor
	Volume float64
}

type Event struct {
	Type EventType
	Data any
}

type EventHandler func(Event)

// EventBus delivers one-way notifications to external collaborators (HUD,
// audio, recording). Dispatch is synchronous on the tick goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
