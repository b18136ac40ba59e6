package component

// Status is the phase of the game. A round exists in Playing and Success.
type Status uint8

const (
	StatusStart Status = iota
	StatusPlaying
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}
