package viewer

import (
	"slices"

	"github.com/automoto/gridfire/shared/direction"
	"github.com/automoto/gridfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUseWeapon
	ActionSwapWeapon
	ActionRestart
	ActionTogglePilot
	ActionCount // Must be last - used for array sizing
)

// Bindings maps actions to the keys that trigger them.
var Bindings = map[ActionID][]ebiten.Key{
	ActionUseWeapon:   {ebiten.KeySpace},
	ActionSwapWeapon:  {ebiten.KeyTab},
	ActionRestart:     {ebiten.KeyR},
	ActionTogglePilot: {ebiten.KeyP},
}

var moveKeys = map[ebiten.Key]direction.Direction{
	ebiten.KeyUp:    direction.Up,
	ebiten.KeyDown:  direction.Down,
	ebiten.KeyLeft:  direction.Left,
	ebiten.KeyRight: direction.Right,
}

var slotKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8,
}

// Input is the keyboard state polled once per frame.
type Input struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	// Arrow keys in the order they went down, latest last
	held []direction.Direction
}

func (in *Input) Pressed(a ActionID) bool {
	return in.Current[a]
}

func (in *Input) JustPressed(a ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

// Poll reads the keyboard.
func (in *Input) Poll() {
	in.Previous = in.Current
	in.Current = [ActionCount]bool{}
	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[action] = true
			}
		}
	}

	for key, d := range moveKeys {
		if !ebiten.IsKeyPressed(key) {
			in.held = slices.DeleteFunc(in.held, func(h direction.Direction) bool { return h == d })
		} else if inpututil.IsKeyJustPressed(key) || !slices.Contains(in.held, d) {
			in.held = slices.DeleteFunc(in.held, func(h direction.Direction) bool { return h == d })
			in.held = append(in.held, d)
		}
	}
}

// Steering returns the newest arrow as the primary direction and the newest
// arrow on the other axis as the secondary one.
func (in *Input) Steering() (direction.Direction, direction.Direction) {
	if len(in.held) == 0 {
		return direction.None, direction.None
	}
	primary := in.held[len(in.held)-1]
	for i := len(in.held) - 2; i >= 0; i-- {
		if in.held[i].IsVertical() != primary.IsVertical() {
			return primary, in.held[i]
		}
	}
	return primary, direction.None
}

// Slot returns the weapon slot picked with the number keys this frame.
func (in *Input) Slot() (int, bool) {
	for i, key := range slotKeys {
		if inpututil.IsKeyJustPressed(key) {
			return i, true
		}
	}
	return 0, false
}

// apply drives the player entity from the keyboard.
func (in *Input) apply(w donburi.World, player *donburi.Entry) {
	primary, secondary := in.Steering()
	systems.SteerPlayer(player, primary, secondary)
	systems.SetUsingWeapon(w, player, in.Pressed(ActionUseWeapon))
	if in.JustPressed(ActionSwapWeapon) {
		systems.SwapWeapon(w, player)
	}
	if slot, ok := in.Slot(); ok {
		systems.EquipWeapon(w, player, slot)
	}
}
