package core

// Mood is decorative feedback for the presentation layer: it picks which
// Manager-chan face accompanies a status message. It carries no other
// semantics.
type Mood int

const (
	MoodIdle Mood = iota
	MoodThinking
	MoodHappy
	MoodSad
)

func (m Mood) String() string {
	switch m {
	case MoodThinking:
		return "thinking"
	case MoodHappy:
		return "happy"
	case MoodSad:
		return "sad"
	default:
		return "idle"
	}
}
