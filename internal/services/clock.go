package services

import (
	"time"

	"github.com/dmitrijs2005/eventhub/internal/common"
	"github.com/google/uuid"
)

// Seams for tests.
var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

func timestamp() string {
	return now().Format(common.TimestampLayout)
}
