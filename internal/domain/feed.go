package domain

// Cursor is an opaque pagination token. The empty cursor addresses the first page.
type Cursor string

type Page[T any] struct {
	Items []T
	Next  Cursor
}

func (p Page[T]) HasNext() bool {
	return p.Next != ""
}

type NotificationKind string

const (
	NotificationMentioned NotificationKind = "MENTIONED"
	NotificationCommented NotificationKind = "COMMENTED"
)

type NotificationFilter struct {
	Kinds                []NotificationKind
	IncludeLowScore      bool
	TimeBasedAggregation bool
}

// MentionFilter selects the notifications the agent reacts to.
func MentionFilter() NotificationFilter {
	return NotificationFilter{
		Kinds:                []NotificationKind{NotificationMentioned, NotificationCommented},
		IncludeLowScore:      true,
		TimeBasedAggregation: false,
	}
}

type Notification struct {
	Kind NotificationKind
	Post Post
}
