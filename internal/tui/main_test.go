package tui

import (
	"io"
	"log"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	// Drag logging goes to a file only under DRAGSORT_DEBUG.
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}
