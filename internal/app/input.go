//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/session"
)

var keyMap = map[ebiten.Key]session.Key{
	ebiten.KeyDigit0:         session.KeyDigit0,
	ebiten.KeyDigit1:         session.KeyDigit1,
	ebiten.KeyDigit2:         session.KeyDigit2,
	ebiten.KeyDigit3:         session.KeyDigit3,
	ebiten.KeyDigit4:         session.KeyDigit4,
	ebiten.KeyDigit5:         session.KeyDigit5,
	ebiten.KeyDigit6:         session.KeyDigit6,
	ebiten.KeyDigit7:         session.KeyDigit7,
	ebiten.KeyDigit8:         session.KeyDigit8,
	ebiten.KeyDigit9:         session.KeyDigit9,
	ebiten.KeyNumpad0:        session.KeyDigit0,
	ebiten.KeyNumpad1:        session.KeyDigit1,
	ebiten.KeyNumpad2:        session.KeyDigit2,
	ebiten.KeyNumpad3:        session.KeyDigit3,
	ebiten.KeyNumpad4:        session.KeyDigit4,
	ebiten.KeyNumpad5:        session.KeyDigit5,
	ebiten.KeyNumpad6:        session.KeyDigit6,
	ebiten.KeyNumpad7:        session.KeyDigit7,
	ebiten.KeyNumpad8:        session.KeyDigit8,
	ebiten.KeyNumpad9:        session.KeyDigit9,
	ebiten.KeyMinus:          session.KeyMinus,
	ebiten.KeyNumpadSubtract: session.KeyMinus,
	ebiten.KeyBackspace:      session.KeyMinus,
	ebiten.KeyArrowLeft:      session.KeyLeft,
	ebiten.KeyArrowRight:     session.KeyRight,
	ebiten.KeyEnter:          session.KeyEnter,
	ebiten.KeyNumpadEnter:    session.KeyEnter,
	ebiten.KeySpace:          session.KeySpace,
	ebiten.KeyN:              session.KeyStep,
	ebiten.KeyC:              session.KeyClear,
	ebiten.KeyR:              session.KeyRandomize,
	ebiten.KeyM:              session.KeyMenu,
}

// justPressed appends the session keys pressed this frame to dst.
func justPressed(raw []ebiten.Key, dst []session.Key) ([]ebiten.Key, []session.Key) {
	raw = inpututil.AppendJustPressedKeys(raw[:0])
	dst = dst[:0]
	for _, k := range raw {
		if sk, ok := keyMap[k]; ok {
			dst = append(dst, sk)
		}
	}
	return raw, dst
}
