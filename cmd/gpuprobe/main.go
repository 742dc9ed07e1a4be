// Command gpuprobe brings up a native GPU and prints what was selected.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/nativegpu"
	"github.com/gogpu/nativegpu/backend"
	"github.com/gogpu/nativegpu/backend/halplatform"
	"github.com/gogpu/nativegpu/handoff"

	_ "github.com/gogpu/nativegpu/backend/noop"
	_ "github.com/gogpu/nativegpu/backend/vulkan"
)

func main() {
	var (
		name    = flag.String("backend", "", "platform backend (default: best available)")
		list    = flag.Bool("list", false, "list registered backends and exit")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(backend.Available(), "\n"))
		return
	}

	if *verbose {
		nativegpu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p, err := openPlatform(*name)
	if err != nil {
		log.Fatalf("Failed to open platform: %v", err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("close %s: %v", p.Name(), err)
		}
	}()

	res, err := nativegpu.BringUp(p)
	if err != nil {
		log.Fatalf("Bring-up failed on %s: %v", p.Name(), err)
	}

	fmt.Printf("backend: %s\n", p.Name())
	fmt.Printf("adapter: %s (%s)\n", res.Adapter.Name, res.Adapter.Power)
	fmt.Printf("adapter handle: %s\n", res.AdapterHandle)
	fmt.Printf("queue handle:   %s\n", res.QueueHandle)

	if hp, ok := p.(*halplatform.Platform); ok {
		provider, err := handoff.New(hp, res)
		if err != nil {
			log.Fatalf("Handoff failed: %v", err)
		}
		fmt.Printf("adapter type:   %s\n", provider.AdapterInfo().Type)
	}
}

func openPlatform(name string) (backend.Platform, error) {
	if name == "" {
		return backend.Default()
	}
	return backend.Get(name)
}
