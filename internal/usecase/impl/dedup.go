package impl

import (
	"time"

	"harvest/internal/domain/entity"
)

type mergeResult int

const (
	mergeAppended mergeResult = iota
	mergeReplaced
	mergeDuplicate
)

// defaultEchoLag is how far a pushed copy's client timestamp may trail the
// server timestamp of the canonical message it echoes.
const defaultEchoLag = 2 * time.Second

// deduper reconciles messages arriving from REST and the push channel.
// Canonical messages match by id only. An id-less pushed copy matches a
// canonical message on conversation, sender and text, and each canonical
// message stands for at most one pushed copy. Two id-less messages never match.
type deduper struct {
	window time.Duration
	lag    time.Duration
}

// pushedCopyOf reports whether pushed may be the push channel copy of canonical.
// The push is emitted after the REST write, so it may trail canonical by at most
// lag; a canonical message fetched later may trail the push by up to window.
func (d deduper) pushedCopyOf(pushed, canonical *entity.Message) bool {
	if pushed.ConversationID != canonical.ConversationID ||
		pushed.SenderID != canonical.SenderID ||
		pushed.Text != canonical.Text {
		return false
	}

	delta := pushed.CreatedAt.Sub(canonical.CreatedAt)

	return delta >= -d.window && delta <= d.lag
}

// merge adds msg to list. absorbed holds the ids of canonical messages that
// already stand for a pushed copy and is updated in place.
func (d deduper) merge(list []*entity.Message, absorbed map[string]bool, msg *entity.Message) ([]*entity.Message, mergeResult) {
	if msg.IsCanonical() {
		for _, existing := range list {
			if existing.ID == msg.ID {
				return list, mergeDuplicate
			}
		}

		for i, existing := range list {
			if !existing.IsCanonical() && d.pushedCopyOf(existing, msg) {
				list[i] = msg
				absorbed[msg.ID] = true

				return list, mergeReplaced
			}
		}

		return append(list, msg), mergeAppended
	}

	for _, existing := range list {
		if existing.IsCanonical() && !absorbed[existing.ID] && d.pushedCopyOf(msg, existing) {
			absorbed[existing.ID] = true

			return list, mergeDuplicate
		}
	}

	return append(list, msg), mergeAppended
}

// reconcile rebuilds a view from a freshly fetched history. Only pending
// messages that history cannot already contain survive: pushed copies and
// canonical messages added while the fetch was in flight.
func (d deduper) reconcile(history, pending []*entity.Message) ([]*entity.Message, map[string]bool) {
	merged := make([]*entity.Message, 0, len(history)+len(pending))
	absorbed := make(map[string]bool)
	for _, m := range history {
		merged, _ = d.merge(merged, absorbed, m)
	}

	for _, m := range pending {
		merged, _ = d.merge(merged, absorbed, m)
	}

	return merged, absorbed
}
