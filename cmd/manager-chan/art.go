package main

import "github.com/DevlopRishi/manager-chan/pkg/core"

// Manager-chan herself. One face per mood; the mood is picked by the core,
// the face is strictly this layer's business.
const (
	artIdle = `       /\_/\
      ( o.o )   Hi! I'm Manager-chan!
       > ^ <    I'll *try* my best! Ehehe...`

	artThinking = `       /\_/\
      ( o.o )   Hmmmm...
       > ? <    Where did I put that...?`

	artHappy = `       /\_/\
      ( ^.^ )   Yay! Task done!
       > w <    Good job!`

	artSad = `       /\_/\
      ( T_T )   Gomen! I forgot...
       > _ <    Or maybe I lost the file?!`
)

func art(mood core.Mood) string {
	switch mood {
	case core.MoodThinking:
		return artThinking
	case core.MoodHappy:
		return artHappy
	case core.MoodSad:
		return artSad
	default:
		return artIdle
	}
}
