package systems

import (
	"log"

	"github.com/automoto/gridfire/components"
	cfg "github.com/automoto/gridfire/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HasSound reports whether the entity's bank has a clip for token.
func HasSound(e *donburi.Entry, token string) bool {
	_, ok := cfg.ClipLength(components.Sound.Get(e).Bank, token)
	return ok
}

// PlaySound starts token on the entity's voice, cutting off whatever was
// playing. Banks without the token leave the voice alone and return false.
func PlaySound(w donburi.World, e *donburi.Entry, token string, loop bool) bool {
	s := components.Sound.Get(e)
	length, ok := cfg.ClipLength(s.Bank, token)
	if !ok {
		return false
	}
	if length <= 0 {
		log.Printf("Warning: clip %s/%s has no length", s.Bank, token)
		return false
	}
	s.Token = token
	s.Loop = loop
	s.Clip = gween.New(0, 1, float32(length), ease.Linear)
	listener(w).SoundStarted(s.Bank, token)
	return true
}

func StopSound(e *donburi.Entry) {
	s := components.Sound.Get(e)
	s.Token = ""
	s.Loop = false
	s.Clip = nil
}

func SoundPlaying(e *donburi.Entry) bool {
	return components.Sound.Get(e).Playing()
}

// UpdateAudio advances every voice. Finished loops start over, finished
// one-shots free the voice.
func UpdateAudio(ecs *ecs.ECS) {
	w, dt := ecs.World, frameTime(ecs.World)
	for e := range components.Sound.Iter(w) {
		s := components.Sound.Get(e)
		if s.Clip == nil {
			continue
		}
		if _, done := s.Clip.Update(float32(dt)); !done {
			continue
		}
		if s.Loop {
			s.Clip.Reset()
			continue
		}
		s.Token = ""
		s.Clip = nil
	}
}
