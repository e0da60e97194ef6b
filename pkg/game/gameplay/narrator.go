package gameplay

import (
	log "github.com/sirupsen/logrus"

	"mazearena/pkg/game/combat"
	"mazearena/pkg/game/messages"
)

// Notifier receives every player-facing message as it happens
type Notifier func(text string)

// narrator writes catalogue messages to the log and to an optional notifier
type narrator struct {
	log    log.FieldLogger
	notify Notifier
}

func (n *narrator) say(fields log.Fields, key string, args ...any) {
	text := messages.Get(key, args...)
	n.log.WithFields(fields).Info(text)
	if n.notify != nil {
		n.notify(text)
	}
}

func (n *narrator) warn(fields log.Fields, key string, args ...any) {
	n.log.WithFields(fields).Warn(messages.Get(key, args...))
}

func (n *narrator) reportHits(hits []combat.Hit) {
	for _, h := range hits {
		fields := log.Fields{"player": h.Target.Name, "row": h.Cell.Row, "col": h.Cell.Col}
		if h.Absorbed {
			n.say(fields, "HIT_ABSORBED", h.Target.Name)
			continue
		}
		n.say(fields, "HIT", h.Target.Name, h.Damage)
		if h.Killed {
			n.say(fields, "PLAYER_DIED", h.Target.Name)
		}
	}
}
