package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute carrying the tag used for filtering

// filteringHandler drops records by tag, package or file before handing
// them to the wrapped handler.
type filteringHandler struct {
	base    slog.Handler
	filters *filters
}

func newFilteringHandler(base slog.Handler, f *filters) *filteringHandler {
	return &filteringHandler{base: base, filters: f}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// allowed applies the enable/disable pair for one key. Disabled wins.
func allowed(key string, enabled, disabled map[string]struct{}) bool {
	if _, found := disabled[key]; found {
		return false
	}
	if enabled == nil {
		return true
	}
	_, found := enabled[key]
	return found
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.filters == nil {
		return h.base.Handle(ctx, r)
	}

	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			pkg := strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
			file := strings.ToLower(filepath.Base(frame.File))
			if !allowed(pkg, h.filters.enabledPackages, h.filters.disabledPackages) {
				return nil
			}
			if !allowed(file, h.filters.enabledFiles, h.filters.disabledFiles) {
				return nil
			}
		}
	}

	tag := ""
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if tag == "" {
		// Untagged records only pass when no tag allow-list is set.
		if h.filters.enabledTags != nil {
			return nil
		}
	} else if !allowed(tag, h.filters.enabledTags, h.filters.disabledTags) {
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.filters)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.filters)
}
