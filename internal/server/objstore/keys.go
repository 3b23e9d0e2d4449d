package objstore

import (
	"fmt"
	"time"

	"github.com/ledgerline/taxintake/internal/filex"
)

// nowMillis is a seam for testing key generation.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// BuildKey returns the object key for an upload. Keys are grouped by owner,
// draft and category so bucket listings stay navigable, and prefixed with a
// millisecond timestamp so repeated uploads of the same file never collide.
func BuildKey(userID, draftID, category, name string) string {
	return fmt.Sprintf("%s/%s/%s/%d_%s", userID, draftID, category, nowMillis(), filex.SanitizeName(name))
}
