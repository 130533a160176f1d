package main

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// sketchCopier writes maze sketches to the system clipboard. The clipboard
// is initialised on first use; hosts without one report the init error on
// every copy.
type sketchCopier struct {
	once sync.Once
	err  error
}

func (c *sketchCopier) Copy(sketch string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return fmt.Errorf("clipboard: init: %w", c.err)
	}
	clipboard.Write(clipboard.FmtText, []byte(sketch))
	return nil
}
