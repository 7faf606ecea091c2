package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lao-tseu-is-alive/go-cursor-flock/internal/pointer"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ErrNoSource is reported for a category without a configured location.
var ErrNoSource = errors.New("no sprite source configured")

// Sprite is the outcome of loading one category's image.
type Sprite struct {
	Category pointer.Category
	Image    image.Image
	Fallback bool  // Image is the built-in glyph
	Err      error // why the fallback was used
}

// Set holds one sprite per category.
type Set [3]Sprite

// Get returns the sprite for c.
func (s *Set) Get(c pointer.Category) Sprite {
	return s[c]
}

// spriteLoader is an actor that reads one image, from a file or an http(s) URL.
// It answers a StringValue location with BytesValue data, or with a StringValue error.
type spriteLoader struct {
	client *http.Client
}

var _ actor.Actor = (*spriteLoader)(nil)

func (l *spriteLoader) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Debugf("sprite loader %s ready", ctx.ActorName())
	return nil
}

func (l *spriteLoader) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
	case *wrapperspb.StringValue:
		data, err := l.fetch(ctx.Context(), msg.GetValue())
		if err != nil {
			ctx.Response(wrapperspb.String(err.Error()))
			return
		}
		ctx.Response(wrapperspb.Bytes(data))
	default:
		ctx.Unhandled()
	}
}

func (l *spriteLoader) PostStop(ctx *actor.Context) error {
	return nil
}

func (l *spriteLoader) fetch(ctx context.Context, location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		return os.ReadFile(location)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", location, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// LoadAll loads the three sprites concurrently, one loader actor each, and
// returns once every one of them has either loaded or failed. A sprite that
// fails, or takes longer than timeout, is replaced by its built-in glyph.
func LoadAll(ctx context.Context, system actor.ActorSystem, sources map[pointer.Category]string, timeout time.Duration) *Set {
	logger := system.Logger()
	set := &Set{}

	var wg sync.WaitGroup
	for _, c := range pointer.Categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := loadOne(ctx, system, c, sources[c], timeout)
			if err != nil {
				set[c] = Sprite{Category: c, Image: Fallback(c), Fallback: true, Err: err}
				logWarn(logger, c, err)
				return
			}
			set[c] = Sprite{Category: c, Image: img}
			logger.Infof("sprite %s loaded from %s (%dx%d)", c, sources[c], img.Bounds().Dx(), img.Bounds().Dy())
		}()
	}
	wg.Wait()

	return set
}

func loadOne(ctx context.Context, system actor.ActorSystem, c pointer.Category, location string, timeout time.Duration) (image.Image, error) {
	if location == "" {
		return nil, ErrNoSource
	}

	pid, err := system.Spawn(ctx, "sprite-"+c.String(), &spriteLoader{
		client: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to spawn loader: %w", err)
	}
	defer func() { _ = pid.Shutdown(ctx) }()

	reply, err := actor.Ask(ctx, pid, wrapperspb.String(location), timeout)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}

	switch msg := reply.(type) {
	case *wrapperspb.BytesValue:
		img, _, err := image.Decode(bytes.NewReader(msg.GetValue()))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", location, err)
		}
		return img, nil
	case *wrapperspb.StringValue:
		return nil, fmt.Errorf("loading %s: %s", location, msg.GetValue())
	default:
		return nil, fmt.Errorf("loading %s: unexpected reply %T", location, reply)
	}
}

func logWarn(logger golog.Logger, c pointer.Category, err error) {
	if errors.Is(err, ErrNoSource) {
		logger.Infof("sprite %s: using built-in glyph", c)
		return
	}
	logger.Warnf("sprite %s: %v, using built-in glyph", c, err)
}
