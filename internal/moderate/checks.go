// /internal/moderate/checks.go
package moderate

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"exobot/internal/track"
)

// Check names, used in audit rows, metrics labels and user-facing replies.
const (
	CheckSpam     = "spam"
	CheckDenylist = "denylist"
	CheckCaps     = "caps"
	CheckMentions = "mentions"
	CheckOffTopic = "off_topic"
)

// violation is a tripped check plus the reply shown to the offender.
type violation struct {
	Check  string
	Reason string
}

// runChecks evaluates the synchronous checks in fixed order and returns the
// first one that trips. The spam window records the message before deciding,
// so a message that itself crosses the threshold trips immediately.
func (p *Pipeline) runChecks(msg Message, now time.Time) *violation {
	key := track.Key(msg.AuthorID, msg.ChannelID)

	if count := p.spam.RecordAndCount(key, now); count > p.cfg.SpamThreshold {
		return &violation{
			Check:  CheckSpam,
			Reason: fmt.Sprintf("sending messages too quickly (%d in %s)", count, p.cfg.SpamWindow),
		}
	}

	if word := p.matchForbidden(msg.Content); word != "" {
		return &violation{
			Check:  CheckDenylist,
			Reason: fmt.Sprintf("use of a forbidden word (%s)", word),
		}
	}

	if tripsCaps(msg.Content, p.cfg.CapsRatio, p.cfg.CapsMinLength) {
		return &violation{Check: CheckCaps, Reason: "excessive use of capital letters"}
	}

	if n := distinctMentions(msg.Mentions); n > p.cfg.MentionLimit {
		return &violation{
			Check:  CheckMentions,
			Reason: fmt.Sprintf("mentioning too many users (%d)", n),
		}
	}

	return nil
}

// matchForbidden returns the first configured word found in content,
// case-insensitive, or "".
func (p *Pipeline) matchForbidden(content string) string {
	if len(p.cfg.ForbiddenWords) == 0 {
		return ""
	}
	lowered := strings.ToLower(content)
	for _, word := range p.cfg.ForbiddenWords {
		if word == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(word)) {
			return word
		}
	}
	return ""
}

// tripsCaps reports whether content is longer than minLength runes and more
// than ratio of its total length is uppercase letters. Digits and punctuation
// dilute the ratio rather than being skipped.
func tripsCaps(content string, ratio float64, minLength int) bool {
	runes := []rune(content)
	if len(runes) <= minLength {
		return false
	}

	uppers := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			uppers++
		}
	}
	return float64(uppers)/float64(len(runes)) > ratio
}

// distinctMentions counts unique mentioned user IDs.
func distinctMentions(mentions []string) int {
	if len(mentions) < 2 {
		return len(mentions)
	}
	seen := make(map[string]struct{}, len(mentions))
	for _, id := range mentions {
		seen[id] = struct{}{}
	}
	return len(seen)
}
