package repository

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"glutivia/internal/domain"
)

const anonymousAuthor = "Anonymous"

// legacyRecord запись из старых ключей доски в произвольной форме
type legacyRecord map[string]any

func (r legacyRecord) str(key string) string {
	v, ok := r[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// decodeLegacy разбирает JSON-массив старых записей; элементы, не являющиеся объектами, отбрасываются
func decodeLegacy(raw []byte) ([]legacyRecord, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]legacyRecord, 0, len(items))
	for _, it := range items {
		var rec legacyRecord
		if err := json.Unmarshal(it, &rec); err != nil || rec == nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// normalizeLegacy приводит запись к каноническому сообщению. acceptUserName разрешает
// старое поле userName формы "discussion". Возвращает false, если текст пуст.
func normalizeLegacy(rec legacyRecord, acceptUserName bool, now time.Time, newID func() string) (domain.CommunityMessage, bool) {
	text := rec.str("text")
	if text == "" {
		return domain.CommunityMessage{}, false
	}

	author := rec.str("author")
	if author == "" && acceptUserName {
		author = rec.str("userName")
	}
	if author == "" {
		author = anonymousAuthor
	}

	id := rec.str("id")
	if id == "" {
		id = newID()
	}

	initials := rec.str("initials")
	if initials == "" {
		r, _ := utf8.DecodeRuneInString(author)
		initials = string(unicode.ToUpper(r))
	}

	return domain.CommunityMessage{
		ID:        id,
		Author:    author,
		Text:      text,
		Timestamp: legacyTimestamp(rec["timestamp"], now),
		Initials:  initials,
	}, true
}

func legacyTimestamp(v any, now time.Time) time.Time {
	switch ts := v.(type) {
	case string:
		if ts == "" {
			return now
		}
		t, err := dateparse.ParseIn(ts, time.UTC)
		if err != nil {
			return now
		}
		return t.UTC()
	case float64:
		// epoch milliseconds, as produced by Date.now()
		return time.UnixMilli(int64(ts)).UTC()
	default:
		return now
	}
}

// Initials первые буквы первых двух слов имени в верхнем регистре
func Initials(author string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(author) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}
