package display

import (
	"sync"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestBiomeLabel(t *testing.T) {
	tests := map[string]struct {
		id  string
		exp string
	}{
		"single word":        {id: "plains", exp: "Plains"},
		"two words":          {id: "frozen_river", exp: "Frozen River"},
		"three words":        {id: "old_growth_pine_taiga", exp: "Old Growth Pine Taiga"},
		"namespaced":         {id: "minecraft:dark_forest", exp: "Dark Forest"},
		"upper case input":   {id: "DEEP_OCEAN", exp: "Deep Ocean"},
		"doubled underscore": {id: "ice__spikes", exp: "Ice Spikes"},
		"empty":              {id: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "label", BiomeLabel(tt.id), tt.exp)
		})
	}
}

func TestBiomeLabel_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				if got := BiomeLabel("frozen_river"); got != "Frozen River" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("unexpected label %q", got)
	}
}
