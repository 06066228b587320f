package weberror

import (
	"fmt"

	"golang.org/x/text/message"
)

type stubLocalizer struct{}

func (stubLocalizer) Sprintf(key message.Reference, _ ...any) string {
	return fmt.Sprintf("localized:%v", key)
}
