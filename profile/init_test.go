package profile

import "testing"

func TestConfigOptions(t *testing.T) {
	var c Config = func() (string, string, bool) { return "", "", false }

	c = WithMode("cpu")(c)
	c = WithPath("/tmp/prof")(c)
	c = WithQuiet(true)(c)

	mode, path, quiet := c()

	if mode != "cpu" || path != "/tmp/prof" || !quiet {
		t.Errorf("config = (%q, %q, %v), want (cpu, /tmp/prof, true)",
			mode, path, quiet)
	}
}

func TestStartWithoutMode(t *testing.T) {
	var c Config = func() (string, string, bool) { return "", "", false }

	// Must not panic, and Stop must be callable.
	c.Start().Stop()
}
