package main

import "testing"

func TestEffectiveTimeout(t *testing.T) {
    cases := []struct {
        name        string
        flagTimeout int
        cfgTimeout  int
        want        int
    }{
        {"flag unset keeps config value", 0, 30, 30},
        {"flag set overrides config", 5, 30, 5},
        {"negative flag ignored", -1, 30, 30},
    }
    for _, c := range cases {
        if got := effectiveTimeout(c.flagTimeout, c.cfgTimeout); got != c.want {
            t.Fatalf("%s: effectiveTimeout(%d, %d) = %d, want %d", c.name, c.flagTimeout, c.cfgTimeout, got, c.want)
        }
    }
}
