package exec

import "time"

// settings is one resolved set of run parameters. A Command keeps a base
// value for its lifetime and derives a throwaway copy for runs that carry
// one-shot overrides.
type settings struct {
	env           map[string]string
	dir           string
	timeout       time.Duration
	inheritEnv    bool
	disableColors bool
}

func newSettings() *settings {
	return &settings{env: make(map[string]string)}
}

// copy returns an independent settings value sharing no state with s.
func (s *settings) copy() *settings {
	dup := &settings{
		env:           make(map[string]string, len(s.env)),
		dir:           s.dir,
		timeout:       s.timeout,
		inheritEnv:    s.inheritEnv,
		disableColors: s.disableColors,
	}
	for k, v := range s.env {
		dup.env[k] = v
	}
	return dup
}

// environ flattens the settings into the variables passed to the child
// process. Color suppression overrides anything set explicitly.
func (s *settings) environ() map[string]string {
	env := make(map[string]string, len(s.env)+5)
	for k, v := range s.env {
		env[k] = v
	}
	if s.disableColors {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
	}
	return env
}
