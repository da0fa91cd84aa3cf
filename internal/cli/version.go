package cli

import (
	"context"
	"fmt"

	"github.com/cruciblehq/hyrun/internal"
)

// Represents the 'hyrun version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.Name, internal.VersionString())
	return nil
}
