// Package service exposes the render pipeline to remote callers over tcp rpc.
// It is a thin adapter: every numeric decision lives in the fractal package
// so the pipeline can be exercised without any of this plumbing.
package service

import (
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/malinduGamage/FRACTALIS/fractal"
	"github.com/malinduGamage/FRACTALIS/misc"
	"github.com/malinduGamage/FRACTALIS/rpc"
)

type Renderer struct {
	framesServed uint
	logger       bslogger.Logger
	mutex        sync.Mutex
	settings     settings

	Server rpc.TcpServer
}

func NewRenderer(settingsFile string) *Renderer {
	renderer := &Renderer{
		logger:   bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		settings: newSettings(settingsFile),
	}
	renderer.Server = rpc.NewTcpServer(renderer, renderer.settings.Address, "RendererServer")
	return renderer
}

func (r *Renderer) Address() string {
	return r.settings.Address
}

func (r *Renderer) FramesServed() uint {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.framesServed
}

func (r *Renderer) Run() error {
	return r.Server.Run()
}

func (r *Renderer) Stop() error {
	return r.Server.Stop()
}

// Render
// Renders one frame for a remote caller. The request is verified first so a
// sparse parameter set falls back to sane defaults instead of failing; the
// reply is the finished row-major RGBA buffer.
func (r *Renderer) Render(request fractal.Settings, reply *[]byte) error {
	if err := request.Verify(); err != nil {
		return err
	}
	*reply = fractal.Render(request)

	r.mutex.Lock()
	r.framesServed++
	count := r.framesServed
	r.mutex.Unlock()
	r.logger.Infof("Rendered frame %d [%dx%d %s]", count, request.Width, request.Height, request.Variant)
	return nil
}

func (r *Renderer) Ping(request misc.Nothing, alive *bool) error {
	*alive = true
	return nil
}
