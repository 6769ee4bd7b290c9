package wire

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/auroranest/markbridge/internal/config"
	"github.com/auroranest/markbridge/internal/convert"
	"github.com/auroranest/markbridge/internal/fetch"
	"github.com/auroranest/markbridge/internal/kind"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg      *viper.Viper
	Log      *log.Logger
	Conv     *convert.Service
	Detector *kind.Detector
	Fetch    fetch.Limits
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger := log.New(os.Stderr, "markbridge ", log.LstdFlags)
	conv := convert.New(
		v.GetString("slides.title_fallback"),
		v.GetString("slides.default_title"),
	)
	detector := kind.NewDetector(config.ChannelExtensions(v))
	limits := fetch.Limits{
		Timeout:  time.Duration(v.GetInt("fetch.timeout_seconds")) * time.Second,
		MaxBytes: v.GetInt64("fetch.max_bytes"),
	}
	return &App{
		Cfg:      v,
		Log:      logger,
		Conv:     conv,
		Detector: detector,
		Fetch:    limits,
	}, nil
}
