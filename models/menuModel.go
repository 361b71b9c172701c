package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuRevision is an audit row written on every menu publish. The published
// file remains the source of truth for readers; revisions only record what
// was pushed and when.
type MenuRevision struct {
	gorm.Model
	Payload datatypes.JSON `json:"payload"`
}
