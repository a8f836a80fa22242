package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/nbx/internal/formatter"
	"github.com/desertthunder/nbx/internal/studio"
)

var _ list.Item = savedItem{}

// savedItem wraps [studio.SavedItem] to implement [list.Item].
type savedItem struct {
	item studio.SavedItem
}

func (i savedItem) FilterValue() string { return i.item.Title }
func (i savedItem) Title() string       { return i.item.Title }
func (i savedItem) Description() string {
	return fmt.Sprintf("%s • %s • %s",
		i.item.Kind.String(),
		i.item.Detail,
		formatter.TimeAgo(i.item.Timestamp, time.Now()),
	)
}
