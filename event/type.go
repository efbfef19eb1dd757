package event

// EventType represents the type of side-effect request emitted by the game core
type EventType int

const (
	// EventSoundRequest requests audio playback
	// Trigger: fire, hit, kill, collect, upgrade, god drop
	// Consumer: audio.Player | Payload: core.SoundType
	EventSoundRequest EventType = iota + 1

	// EventExplosionRequest requests a burst visual at a point
	// Trigger: enemy death, death bomb, god drop
	// Consumer: render.Effects | Payload: *ExplosionPayload
	EventExplosionRequest

	// EventLightningRequest requests a chain lightning arc
	// Trigger: chain proc
	// Consumer: render.Effects | Payload: *LightningPayload
	EventLightningRequest

	// EventPulseRequest requests an expanding ring (nova, death bomb)
	// Consumer: render.Effects | Payload: *PulsePayload
	EventPulseRequest

	// EventShakeRequest requests screen shake
	// Trigger: kill, player hit, god drop
	// Consumer: render.Effects | Payload: *ShakePayload
	EventShakeRequest

	// EventFlashRequest requests a full-screen tint
	// Trigger: player hit (red), god drop (white)
	// Consumer: render.Effects | Payload: *FlashPayload
	EventFlashRequest
)

func (t EventType) String() string {
	switch t {
	case EventSoundRequest:
		return "EventSoundRequest"
	case EventExplosionRequest:
		return "EventExplosionRequest"
	case EventLightningRequest:
		return "EventLightningRequest"
	case EventPulseRequest:
		return "EventPulseRequest"
	case EventShakeRequest:
		return "EventShakeRequest"
	case EventFlashRequest:
		return "EventFlashRequest"
	}
	return "EventUnknown"
}

// GameEvent is one queued request
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
