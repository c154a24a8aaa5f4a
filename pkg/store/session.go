package store

import (
	"time"

	"afrimigrate-be/pkg/helpdesk"
)

// AssistantSession is one live assistant conversation held in memory.
type AssistantSession struct {
	ID        string            `json:"id"`
	Desk      string            `json:"desk"`
	CreatedAt time.Time         `json:"created_at"`
	Session   *helpdesk.Session `json:"-"`
}
