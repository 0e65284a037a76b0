package session

import (
	"fmt"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// faultError wraps a panic recovered from a game.
type faultError struct {
	value any
}

func (e *faultError) Error() string {
	return fmt.Sprintf("simulation fault: %v", e.value)
}

func (c *Controller) safeAdvance() (res core.StepResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &faultError{value: r}
		}
	}()
	return c.game.Advance(), nil
}

func (c *Controller) safeApply(cmd core.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &faultError{value: r}
		}
	}()
	c.game.Apply(cmd)
	return nil
}
