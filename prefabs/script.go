package prefabs

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// RunCoinScript runs a tengo script that lays out coins. Params are exposed as
// globals. The script must define `coins`, an array of {x, y, z} maps, in the
// same surface-height convention as CoinSpec.
func RunCoinScript(src []byte, params map[string]float64) ([]CoinSpec, error) {
	script := tengo.NewScript(src)
	for name, v := range params {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}
	if !compiled.IsDefined("coins") {
		return nil, fmt.Errorf("script does not define coins")
	}

	raw := compiled.Get("coins").Array()
	coins := make([]CoinSpec, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("coins[%d]: expected map, got %T", i, item)
		}
		var v Vec3Spec
		for _, axis := range []struct {
			key string
			dst *float64
		}{{"x", &v.X}, {"y", &v.Y}, {"z", &v.Z}} {
			f, err := number(m[axis.key])
			if err != nil {
				return nil, fmt.Errorf("coins[%d].%s: %w", i, axis.key, err)
			}
			*axis.dst = f
		}
		coins = append(coins, CoinSpec{Position: v})
	}
	return coins, nil
}

func loadCoinScript(s CoinScriptSpec) ([]CoinSpec, error) {
	if strings.TrimSpace(s.Path) == "" {
		return nil, fmt.Errorf("prefabs: coin script without path")
	}
	src, err := LoadScript(s.Path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", s.Path, err)
	}
	coins, err := RunCoinScript(src, s.Params)
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", s.Path, err)
	}
	return coins, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
