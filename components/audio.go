package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SoundData is one entity's voice. Clip runs for the length of the token
// and is nil while nothing plays.
type SoundData struct {
	Bank  string
	Token string
	Loop  bool
	Clip  *gween.Tween
}

// Playing reports whether the voice still has a clip running.
func (s *SoundData) Playing() bool {
	return s.Clip != nil
}

var Sound = donburi.NewComponentType[SoundData]()
