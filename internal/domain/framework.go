package domain

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

const untitledFramework = "Untitled Framework"

// SavedFramework is a framework document accepted by the persistence gateway.
type SavedFramework struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Draft     FrameworkDraft
	Document  string
}

// Ref returns the lightweight listing entry for f.
func (f SavedFramework) Ref() FrameworkRef {
	return FrameworkRef{ID: f.ID, Title: f.Title, CreatedAt: f.CreatedAt}
}

// FrameworkRef is a lightweight reference to a saved framework.
type FrameworkRef struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

// FrameworkTitle is the display title of a draft.
func FrameworkTitle(d FrameworkDraft) string {
	t := strings.TrimSpace(d.TentativeTitle)
	if t == "" {
		return untitledFramework
	}
	return t
}

var reFrameworkID = regexp.MustCompile(`^framework_[0-9]{8}_[0-9]{6}(_[0-9a-f]{8})?$`)

// NewFrameworkID builds "framework_YYYYMMDD_HHMMSS_<suffix>" from t (UTC).
// suffix is lowercased and cut to 8 characters; an empty suffix is omitted.
func NewFrameworkID(t time.Time, suffix string) string {
	id := "framework_" + t.UTC().Format("20060102_150405")
	suffix = strings.ToLower(strings.ReplaceAll(suffix, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	if suffix != "" {
		id += "_" + suffix
	}
	return id
}

// ValidFrameworkID reports whether id has the shape produced by NewFrameworkID.
// Stores use it before turning ids into file names or object keys.
func ValidFrameworkID(id string) bool {
	return reFrameworkID.MatchString(id)
}

// SortNewestFirst orders refs by creation time, newest first; ties break on id.
func SortNewestFirst(refs []FrameworkRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].CreatedAt.Equal(refs[j].CreatedAt) {
			return refs[i].ID > refs[j].ID
		}
		return refs[i].CreatedAt.After(refs[j].CreatedAt)
	})
}
