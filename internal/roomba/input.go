package roomba

import (
	"strings"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Keys maps key tokens to game actions. Arrow names are matched
// case-insensitively; letters are matched as typed, except that restart
// accepts both r and R.
var Keys = map[string]core.Action{
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"left":  core.ActionLeft,
	"right": core.ActionRight,
	"w":     core.ActionUp,
	"s":     core.ActionDown,
	"a":     core.ActionLeft,
	"d":     core.ActionRight,
	"r":     core.ActionRestart,
	"R":     core.ActionRestart,
}

// MapKey translates a key token to an action. Unknown tokens give ActionNone.
func MapKey(token string) core.Action {
	if a, ok := Keys[token]; ok {
		return a
	}
	// Platform arrow names ("Up", "LEFT")
	if len(token) > 1 {
		if a, ok := Keys[strings.ToLower(token)]; ok {
			return a
		}
	}
	return core.ActionNone
}

// KeysFor lists the tokens bound to an action, arrows first.
func KeysFor(a core.Action) []string {
	order := []string{"up", "down", "left", "right", "w", "s", "a", "d", "r", "R"}
	var out []string
	for _, k := range order {
		if Keys[k] == a {
			out = append(out, k)
		}
	}
	return out
}
