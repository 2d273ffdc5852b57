package pipeline

import (
	"regexp"
	"strings"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

const (
	courseName         = "Data Analytics with Python"
	rollNoPrefix       = "Roll No:"
	creditsRecommended = "credits recommended"
)

// PDF text often separates words with no-break spaces, so \p{Zs} counts as space.
var studentNameRe = regexp.MustCompile(regexp.QuoteMeta(courseName) + `[\s\p{Zs}]+([A-Za-z\s\p{Zs}]+)`)

// window is the fragment being evaluated and the one after it.
// next is nil for the last fragment.
type window struct {
	current string
	next    *string
}

type rule struct {
	match func(w window) bool
	apply func(w window, r *domain.Record)
}

// rules are evaluated in order, the first match wins for a fragment.
var rules = []rule{
	{
		match: func(w window) bool { return strings.Contains(w.current, courseName) },
		apply: applyCourse,
	},
	{
		match: func(w window) bool { return strings.HasPrefix(w.current, rollNoPrefix) },
		apply: func(w window, r *domain.Record) {
			r.RollNo = afterColon(w.current)
		},
	},
	// A credits fragment without a colon leaves credits unset instead of
	// failing the whole file.
	{
		match: func(w window) bool { return strings.Contains(w.current, creditsRecommended) },
		apply: func(w window, r *domain.Record) {
			if credits := afterColon(w.current); credits != nil {
				r.Credits = credits
			}
		},
	},
}

// ExtractRecord scans the text fragments of a transcript and builds a record from them.
// Roll number and credits take the segment between the first and the second
// colon. Credits stay unset when their fragment has no colon at all.
func ExtractRecord(fragments []string) *domain.Record {
	record := &domain.Record{}

	for i, fragment := range fragments {
		w := window{current: fragment}
		if i+1 < len(fragments) {
			w.next = &fragments[i+1]
		}

		for _, rl := range rules {
			if rl.match(w) {
				rl.apply(w, record)
				break
			}
		}
	}

	return record
}

func applyCourse(w window, r *domain.Record) {
	r.Heading = ptr(courseName)

	if m := studentNameRe.FindStringSubmatch(w.current); m != nil {
		r.Name = ptr(strings.TrimSpace(m[1]))
	}

	if w.next != nil && *w.next != "" {
		r.Score = ptr(strings.TrimSpace(*w.next))
	}
}

// afterColon returns the trimmed text between the first colon and the next one,
// or nil if s has no colon.
func afterColon(s string) *string {
	_, after, ok := strings.Cut(s, ":")
	if !ok {
		return nil
	}

	segment, _, _ := strings.Cut(after, ":")

	return ptr(strings.TrimSpace(segment))
}

func ptr(s string) *string {
	return &s
}
